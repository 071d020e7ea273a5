package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ridedemo/internal/config"
	"ridedemo/internal/simulation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate a random fleet and print every ride and fare",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		sim := simulation.New(cfg)
		return sim.Run(cmd.Context(), os.Stdout)
	},
}

func init() {
	simulateCmd.Flags().Int("drivers", 3, "number of drivers to generate")
	simulateCmd.Flags().Int("riders", 4, "number of riders to generate")
	simulateCmd.Flags().Int("rides", 10, "number of rides to generate")
	simulateCmd.Flags().Int64("seed", 42, "random seed for the generated fleet")

	viper.BindPFlag("simulation.drivers", simulateCmd.Flags().Lookup("drivers"))
	viper.BindPFlag("simulation.riders", simulateCmd.Flags().Lookup("riders"))
	viper.BindPFlag("simulation.rides", simulateCmd.Flags().Lookup("rides"))
	viper.BindPFlag("simulation.seed", simulateCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(simulateCmd)
}
