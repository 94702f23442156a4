package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mfarrow/cyclecast/internal/calculation"
	"github.com/mfarrow/cyclecast/internal/output"
)

func printSuggestion(kind, name string, amount *decimal.Decimal) {
	switch {
	case amount == nil:
		fmt.Printf("%-9s %-20s no target date set\n", kind, name)
	case amount.IsZero():
		fmt.Printf("%-9s %-20s target already met\n", kind, name)
	default:
		fmt.Printf("%-9s %-20s %s per cycle\n", kind, name, amount.StringFixed(2))
	}
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [plan-file]",
	Short: "Run a full forecast over a plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlan(args[0])
		if err != nil {
			log.Fatal(err)
		}
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		report := engine.RunForecast(plan, today)

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unknown format %q (known: %v)", format, output.FormatterNames())
		}
		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles [plan-file]",
	Short: "Show current and upcoming pay cycle boundaries",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlan(args[0])
		if err != nil {
			log.Fatal(err)
		}
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}

		cfg := plan.Household.Cycle
		current := calculation.CurrentCycle(cfg, today)
		fmt.Printf("Current cycle: %s (%d days)\n", current, current.Days())

		count, _ := cmd.Flags().GetInt("count")
		prev := current
		for i := 0; i < count; i++ {
			prev = calculation.NextCycleDates(cfg, prev.End)
			fmt.Printf("Next cycle %d:  %s (%d days)\n", i+1, prev, prev.Days())
		}
	},
}

var incomeCmd = &cobra.Command{
	Use:   "income [plan-file]",
	Short: "Project income for the current pay cycle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlan(args[0])
		if err != nil {
			log.Fatal(err)
		}
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		cycle := calculation.CurrentCycle(plan.Household.Cycle, today)
		summary := engine.ProjectIncomeForCycle(cycle, plan.IncomeSources, plan.Household.JointRatio)
		events := engine.IncomeEventsForRange(plan.IncomeSources, cycle.Start, cycle.End)

		fmt.Printf("Cycle %s\n", cycle)
		for _, ev := range events {
			fmt.Printf("  %s  %-20s %10s (%s)\n", ev.Date, ev.SourceName, ev.Amount.StringFixed(2), ev.Source)
		}
		fmt.Printf("Total:   %s\n", summary.Total.StringFixed(2))
		fmt.Printf("Me:      %s\n", summary.Me.StringFixed(2))
		fmt.Printf("Partner: %s\n", summary.Partner.StringFixed(2))
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [plan-file]",
	Short: "Suggest per-cycle amounts to hit each target date",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlan(args[0])
		if err != nil {
			log.Fatal(err)
		}
		today, err := resolveDate(cmd)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		cfg := plan.Household.Cycle
		ct := cfg.Type
		cycleStart := calculation.CycleStartDate(cfg, today)

		for _, pot := range plan.Pots {
			amount := engine.SuggestedSavingsAmount(pot.CurrentAmount, pot.TargetAmount, cycleStart, pot.TargetDate, ct, today)
			printSuggestion("pot", pot.Name, amount)
		}
		for _, rp := range plan.Repayments {
			if rp.IncludeInterest && rp.InterestRate.IsPositive() && rp.TargetDate != nil {
				amount, err := engine.SolveRepaymentAmount(rp.CurrentBalance, cycleStart, *rp.TargetDate, cfg, rp.InterestRate, today, calculation.DefaultSolveOptions())
				if err != nil {
					fmt.Printf("repayment %-20s could not solve: %v\n", rp.Name, err)
					continue
				}
				printSuggestion("repayment", rp.Name, &amount)
				continue
			}
			amount := engine.SuggestedRepaymentAmount(rp.CurrentBalance, cycleStart, rp.TargetDate, ct, today)
			printSuggestion("repayment", rp.Name, amount)
		}
	},
}
