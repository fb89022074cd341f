package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/primer/internal/app"
	"github.com/rail44/primer/internal/log"
)

func newFtoCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ftoc",
		Short: "Convert a Fahrenheit value to Celsius",
		Long: `Ftoc reads a whole number of degrees Fahrenheit from standard input and prints
it in Celsius, truncating toward zero. Invalid input is rejected and asked for again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.NewFtoCApp(cmd.InOrStdin(), cmd.OutOrStdout(), log.Default()).Run(cmd.Context())
		},
	}
}

func newFibonacciCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fibonacci",
		Short: "Print the Nth Fibonacci number",
		Long: `Fibonacci reads a sequence index from standard input and prints its Fibonacci
number, computed by plain recursion. Large indices take exponentially long.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.NewFibonacciApp(cmd.InOrStdin(), cmd.OutOrStdout(), log.Default()).Run(cmd.Context())
		},
	}
}

func newRectanglesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rectangles",
		Short: "Print a 30x50 rectangle and its area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.NewRectanglesApp(cmd.OutOrStdout(), log.Default()).Run(cmd.Context())
		},
	}
}

func newTwelveDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "twelvedays",
		Short: "Print the verses of The Twelve Days of Christmas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			return app.NewTwelveDaysApp(cmd.OutOrStdout(), log.Default(), cfg.TwelveDays.CorrectSpelling).Run(cmd.Context())
		},
	}
}
