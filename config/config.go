package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a package-level singleton, mirroring the validator-v10
// idiom of constructing one Validate and reusing it across calls.
var validate = validator.New()

// Config is reliefgrid's full run configuration: spec §6's enumerated
// options plus the World Graph source and logging sections a deployable
// binary needs.
type Config struct {
	NumCycles             int             `yaml:"num_cycles" validate:"min=1"`
	SpawnProbEvent         float64         `yaml:"spawn_prob_event" validate:"min=0,max=1"`
	WeatherTickPeriod      int             `yaml:"weather_tick_period" validate:"min=1"`
	RefuelTriggerFraction  float64         `yaml:"refuel_trigger_fraction" validate:"min=0,max=1"`
	RefuelSafetyFraction   float64         `yaml:"refuel_safety_fraction" validate:"min=0,max=1"`
	FuelSafetyMargin       float64         `yaml:"fuel_safety_margin" validate:"min=1"`
	EventFailureProb       float64         `yaml:"event_failure_prob" validate:"min=0,max=1"`
	MaxDistanceKM          float64         `yaml:"max_distance_km" validate:"gt=0"`
	SelectorTrials         int             `yaml:"selector_trials" validate:"min=1"`
	SelectorWeights        [3]float64      `yaml:"selector_weights"`
	RNGSeed                int64           `yaml:"rng_seed"`
	WorldGraph             WorldGraphConfig `yaml:"world_graph" validate:"required"`
	Logging                LoggingConfig    `yaml:"logging"`
}

// WorldGraphConfig locates the pre-built graph snapshot the simulator is
// handed at construction (spec §1: graph construction is an external
// collaborator, never invented by the simulator itself).
type WorldGraphConfig struct {
	SnapshotPath string `yaml:"snapshot_path" validate:"required"`
}

// LoggingConfig configures telemetry.Logger's level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns the documented defaults of spec §6. WorldGraph.SnapshotPath
// is left empty: callers (the CLI) must supply one, so Default alone never
// passes Validate.
func Default() *Config {
	return &Config{
		NumCycles:             1,
		SpawnProbEvent:        0.3,
		WeatherTickPeriod:     5,
		RefuelTriggerFraction: 0.6,
		RefuelSafetyFraction:  0.9,
		FuelSafetyMargin:      1.1,
		EventFailureProb:      0.1,
		MaxDistanceKM:         300,
		SelectorTrials:        5,
		SelectorWeights:       [3]float64{0.2, 0.4, 0.4},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path as YAML over Default()'s values, so an omitted field
// keeps its documented default.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate runs struct-tag validation; a non-nil return is the "malformed
// configuration" fatal error of spec §6/§7.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
