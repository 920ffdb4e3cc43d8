package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/internal/calc"
)

func CalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run the site's calculators from the command line",
	}

	cmd.AddCommand(calcBillCmd())
	cmd.AddCommand(calcBMICmd())
	cmd.AddCommand(calcConvertCmd())
	return cmd
}

// number parses like a form field: anything unparseable is NaN.
func number(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func calcBillCmd() *cobra.Command {
	var total, tip string
	var people int

	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Split a bill, tip included",
		RunE: func(cmd *cobra.Command, args []string) error {
			split, err := calc.SplitBill(number(total), people, number(tip))
			if err != nil {
				return err
			}

			fmt.Printf("Per person:  %s\n", calc.FormatMoney(split.PerPerson))
			fmt.Printf("Tip:         %s\n", calc.FormatMoney(split.TipAmount))
			fmt.Printf("Grand total: %s\n", calc.FormatMoney(split.GrandTotal))
			return nil
		},
	}

	cmd.Flags().StringVar(&total, "total", "", "bill amount")
	cmd.Flags().IntVar(&people, "people", 1, "number of people")
	cmd.Flags().StringVar(&tip, "tip", "0", "tip percent")
	return cmd
}

func calcBMICmd() *cobra.Command {
	var weight, height string

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Calculate body mass index",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc.BMI(number(weight), number(height))
			if err != nil {
				return err
			}

			fmt.Printf("BMI %s: %s\n", result.Display, result.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&height, "height", "", "height in cm")
	return cmd
}

func calcConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <category> <value> <from> <to>",
		Short: "Convert a value between units",
		Long: "Convert a value between units of one category.\n\nCategories: " +
			strings.Join(calc.Categories(), ", ") +
			"\nQuote unit names with spaces, e.g. \"US gallon\".",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := number(args[1])
			result, err := calc.Convert(args[0], value, args[2], args[3])
			if err != nil {
				return err
			}

			fmt.Printf("%s %s = %s %s\n", calc.FormatResult(value), unitLabel(args[2]), calc.FormatResult(result), unitLabel(args[3]))
			return nil
		},
	}
}

// unitLabel capitalises the first letter for display.
func unitLabel(unit string) string {
	if unit == "" {
		return unit
	}
	return strings.ToUpper(unit[:1]) + unit[1:]
}
