// Package config centralizes application configuration into typed structs.
// Defaults reproduce the reference fare schedule exactly; a config file or
// RIDEDEMO_* environment variables can override them for simulation runs.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"

	"ridedemo/pkg/fare"
)

// Config is the top-level configuration container.
type Config struct {
	Pricing    PricingConfig    `mapstructure:"pricing"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// PricingConfig defines the per-variant fare parameters.
// Standard fare = distance × StandardPerMileRate.
// Premium fare = distance × PremiumPerMileRate + PremiumSurcharge.
type PricingConfig struct {
	StandardPerMileRate float64 `mapstructure:"standard_per_mile_rate"`
	PremiumPerMileRate  float64 `mapstructure:"premium_per_mile_rate"`
	PremiumSurcharge    float64 `mapstructure:"premium_surcharge"`
}

// SimulationConfig controls the random fleet generated by the simulate
// command. The fixed demonstration ignores all of this.
type SimulationConfig struct {
	Drivers          int     `mapstructure:"drivers"`
	Riders           int     `mapstructure:"riders"`
	Rides            int     `mapstructure:"rides"`
	Seed             int64   `mapstructure:"seed"`
	MinDistanceMiles float64 `mapstructure:"min_distance_miles"`
	MaxDistanceMiles float64 `mapstructure:"max_distance_miles"`
}

// NewDefaultConfig returns a Config populated with the reference rates
// and a small default fleet.
func NewDefaultConfig() *Config {
	return &Config{
		Pricing: PricingConfig{
			StandardPerMileRate: fare.StandardPerMileRate,
			PremiumPerMileRate:  fare.PremiumPerMileRate,
			PremiumSurcharge:    fare.PremiumSurcharge,
		},
		Simulation: SimulationConfig{
			Drivers:          3,
			Riders:           4,
			Rides:            10,
			Seed:             42,
			MinDistanceMiles: 1.0,
			MaxDistanceMiles: 25.0,
		},
	}
}

// Load builds the effective configuration. Precedence, highest first:
// changed command-line flags (bound by the cmd package), environment,
// config file (only when one is named), defaults. Running with no file
// and no overrides yields NewDefaultConfig exactly.
func Load(cfgFile string) (*Config, error) {
	setDefaults(NewDefaultConfig())

	viper.SetEnvPrefix("RIDEDEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(d *Config) {
	viper.SetDefault("pricing.standard_per_mile_rate", d.Pricing.StandardPerMileRate)
	viper.SetDefault("pricing.premium_per_mile_rate", d.Pricing.PremiumPerMileRate)
	viper.SetDefault("pricing.premium_surcharge", d.Pricing.PremiumSurcharge)
	viper.SetDefault("simulation.drivers", d.Simulation.Drivers)
	viper.SetDefault("simulation.riders", d.Simulation.Riders)
	viper.SetDefault("simulation.rides", d.Simulation.Rides)
	viper.SetDefault("simulation.seed", d.Simulation.Seed)
	viper.SetDefault("simulation.min_distance_miles", d.Simulation.MinDistanceMiles)
	viper.SetDefault("simulation.max_distance_miles", d.Simulation.MaxDistanceMiles)
}
