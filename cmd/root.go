package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ridedemo/internal/demo"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ridedemo",
	Short: "Ride-sharing fare demonstration",
	Long: `ridedemo is a console demonstration of a small ride-sharing domain:
two fare variants (standard and premium), a driver and a rider that own
append-only ride histories, and uniform fare dispatch over a mixed list.

Run with no arguments to execute the fixed demonstration scenario, or use
the simulate subcommand to generate a random fleet.`,
	Run: func(cmd *cobra.Command, args []string) {
		demo.Run(os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; defaults reproduce the reference fare schedule)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
