package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/config"
	"github.com/mfarrow/cyclecast/internal/domain"
)

// logrusEngineLogger adapts a logrus logger to the engine's Logger
// interface.
type logrusEngineLogger struct {
	logger *logrus.Logger
}

func (l logrusEngineLogger) Debugf(format string, args ...any) { l.logger.Debugf(format, args...) }
func (l logrusEngineLogger) Infof(format string, args ...any)  { l.logger.Infof(format, args...) }
func (l logrusEngineLogger) Warnf(format string, args ...any)  { l.logger.Warnf(format, args...) }
func (l logrusEngineLogger) Errorf(format string, args ...any) { l.logger.Errorf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cyclecast",
	Short: "Pay cycle forecaster CLI",
	Long:  "Projects household pay cycles, income, savings pots and repayments",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "cyclecast %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := loadPlan(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Plan file %s is valid\n", args[0])
	},
}

// loadPlan parses and validates a plan file.
func loadPlan(path string) (*domain.Plan, error) {
	return config.NewParser().LoadFromFile(path)
}

// resolveDate reads the global --date flag, defaulting to the system
// clock. An explicit date makes every projection deterministic.
func resolveDate(cmd *cobra.Command) (domain.Date, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return domain.Today(), nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid --date: %w", err)
	}
	return d, nil
}

// newEngine builds the calculation engine, wiring a logrus-backed logger
// when --debug is set.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		engine.SetLogger(logrusEngineLogger{logger: logger})
		engine.Debug = true
	}
	return engine
}

func newServiceLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func init() {
	rootCmd.PersistentFlags().String("date", "", "Freeze today's date (YYYY-MM-DD) for deterministic output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	forecastCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cyclesCmd.Flags().IntP("count", "n", 3, "Number of upcoming cycles to show")
	compareCmd.Flags().String("pot", "", "Pot name to compare candidate amounts for")
	compareCmd.Flags().String("repayment", "", "Repayment name to compare candidate amounts for")
	compareCmd.Flags().String("amounts", "", "Comma-separated candidate per-cycle amounts (required)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rolloverCmd.Flags().String("schedule", "", "Cron schedule for rollover scans (default nightly at 02:00)")
	rolloverCmd.Flags().Bool("once", false, "Run a single rollover scan and exit")

	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(incomeCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rolloverCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
