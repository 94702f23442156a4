package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mfarrow/cyclecast/internal/compare"
	"github.com/mfarrow/cyclecast/internal/domain"
)

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare candidate per-cycle amounts for a pot or repayment",
	Long: `Compare the locked-in per-cycle amount of a pot or repayment against
candidate amounts.

Examples:
  cyclecast compare plan.yaml --pot Holiday --amounts 100,150,200
  cyclecast compare plan.yaml --repayment Card --amounts 150,300 --format csv
`,
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

		potName, _ := cmd.Flags().GetString("pot")
		repaymentName, _ := cmd.Flags().GetString("repayment")
		if (potName == "") == (repaymentName == "") {
			log.Fatal("exactly one of --pot or --repayment is required")
		}

		amountsStr, _ := cmd.Flags().GetString("amounts")
		amounts, err := parseAmounts(amountsStr)
		if err != nil {
			log.Fatal(err)
		}

		ce := compare.NewCompareEngine(newEngine(cmd))
		cfg := plan.Household.Cycle

		var compSet *compare.ComparisonSet
		if potName != "" {
			pot, ok := findPot(plan, potName)
			if !ok {
				log.Fatalf("pot %q not found in plan", potName)
			}
			compSet, err = ce.ComparePot(pot, cfg, today, amounts)
		} else {
			rp, ok := findRepayment(plan, repaymentName)
			if !ok {
				log.Fatalf("repayment %q not found in plan", repaymentName)
			}
			compSet, err = ce.CompareRepayment(rp, cfg, today, amounts)
		}
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table":
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(compSet))
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unknown format %q (known: table, csv, json)", format)
		}
	},
}

// parseAmounts splits a comma-separated list of candidate amounts.
func parseAmounts(s string) ([]decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("--amounts is required (comma-separated, e.g. 100,150,200)")
	}
	parts := strings.Split(s, ",")
	amounts := make([]decimal.Decimal, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		amount, err := decimal.NewFromString(part)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", part, err)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("amount %s cannot be negative", part)
		}
		amounts = append(amounts, amount)
	}
	if len(amounts) == 0 {
		return nil, fmt.Errorf("no valid amounts in %q", s)
	}
	return amounts, nil
}

func findPot(plan *domain.Plan, name string) (domain.Pot, bool) {
	for _, pot := range plan.Pots {
		if pot.Name == name {
			return pot, true
		}
	}
	return domain.Pot{}, false
}

func findRepayment(plan *domain.Plan, name string) (domain.Repayment, bool) {
	for _, rp := range plan.Repayments {
		if rp.Name == name {
			return rp, true
		}
	}
	return domain.Repayment{}, false
}
