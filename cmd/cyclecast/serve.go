package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/rollover"
	"github.com/mfarrow/cyclecast/internal/server"
	"github.com/mfarrow/cyclecast/internal/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		logger := newServiceLogger()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.NewServer(newEngine(cmd), logger)
		if err := srv.ListenAndServe(ctx, addr); err != nil && err != context.Canceled {
			logger.Fatal(err)
		}
	},
}

var rolloverCmd = &cobra.Command{
	Use:   "rollover [plan-file]",
	Short: "Run the cycle rollover daemon",
	Long: `Track the plan's household in an in-memory store and advance it into
the current pay cycle on a nightly schedule. With --once a single scan
runs and the process exits.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlan(args[0])
		if err != nil {
			log.Fatal(err)
		}
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}

		logger := newServiceLogger()
		store := rollover.NewMemoryStore()
		cfg := plan.Household.Cycle
		state := rollover.HouseholdState{
			ID:           args[0],
			Cycle:        cfg,
			CurrentCycle: calculation.CurrentCycle(cfg, today),
		}
		if err := store.Save(cmd.Context(), state); err != nil {
			logger.Fatal(err)
		}

		schedule, _ := cmd.Flags().GetString("schedule")
		runner := rollover.NewRunner(store, logger, schedule)

		once, _ := cmd.Flags().GetBool("once")
		if once {
			if err := runner.RollOver(cmd.Context()); err != nil {
				logger.Fatal(err)
			}
			return
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := runner.Run(ctx); err != nil && err != context.Canceled {
			logger.Fatal(err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [plan-file]",
	Short: "Browse the forecast interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}
		if err := tui.Run(args[0], today); err != nil {
			log.Fatal(err)
		}
	},
}
