package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larkspur-ops/reliefgrid/config"
	"github.com/larkspur-ops/reliefgrid/cycle"
	"github.com/larkspur-ops/reliefgrid/telemetry"
	"github.com/larkspur-ops/reliefgrid/worldgraph"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a simulation and print the resulting statistics ledger",
	Long:  `Loads a World Graph snapshot plus a vehicle and zone roster, then drives the Cycle Driver for the configured number of ticks.`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().String("config", "", "path to a YAML config file (defaults to built-in defaults)")
	runCmd.Flags().String("graph", "", "path to a World Graph YAML snapshot (overrides config world_graph.snapshot_path)")
	runCmd.Flags().String("fleet", "", "path to the vehicle roster YAML file")
	runCmd.Flags().String("zones", "", "path to the delivery-zone roster YAML file")
	runCmd.Flags().Int64("seed", 0, "override the configured RNG seed")
	runCmd.Flags().Int("cycles", 0, "override the configured number of ticks")
	runCmd.Flags().String("log-level", "", "override logging.level (debug|info|warn|error)")
	runCmd.Flags().String("log-format", "", "override logging.format (text|json)")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fleetPath, _ := cmd.Flags().GetString("fleet")
	zonesPath, _ := cmd.Flags().GetString("zones")
	if fleetPath == "" {
		return fmt.Errorf("--fleet flag is required")
	}
	if zonesPath == "" {
		return fmt.Errorf("--zones flag is required")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := telemetry.NewLogger(telemetry.LoggerConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stdout,
	})
	metrics := telemetry.NewRegistry()

	graph, err := worldgraph.DecodeYAML(cfg.WorldGraph.SnapshotPath)
	if err != nil {
		return fmt.Errorf("loading world graph snapshot: %w", err)
	}

	vehicles, err := loadVehicles(fleetPath)
	if err != nil {
		return err
	}
	zones, err := loadZones(zonesPath)
	if err != nil {
		return err
	}

	logger.WithFields(map[string]interface{}{
		"vehicles": len(vehicles), "zones": len(zones), "cycles": cfg.NumCycles,
	}).Info("starting simulation")

	driver := cycle.NewDriver(graph, vehicles, zones, cfg, logger, metrics)
	stats := driver.Run(cfg.NumCycles)

	printSummary(driver.RunID, stats)

	return nil
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if graphPath, _ := cmd.Flags().GetString("graph"); graphPath != "" {
		cfg.WorldGraph.SnapshotPath = graphPath
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.RNGSeed = seed
	}
	if cmd.Flags().Changed("cycles") {
		cycles, _ := cmd.Flags().GetInt("cycles")
		cfg.NumCycles = cycles
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}

	return cfg, nil
}

func printSummary(runID string, s *cycle.Statistics) {
	fmt.Printf("run %s complete\n", runID)
	fmt.Printf("  deliveries:            %d\n", s.DeliveriesTotal)
	fmt.Printf("  mean delivery time:    %.2f\n", s.MeanDeliveryTime())
	fmt.Printf("  avg window remaining:  %.2f\n", s.AverageRemainingWindowTime())
	fmt.Printf("  critical window hits:  %d\n", s.CriticalWindowEvents)
	fmt.Printf("  fuel replenished:      %.2f\n", s.FuelReplenished)
	fmt.Println("  failures by cause:")
	for cause, count := range s.FailuresByCause {
		fmt.Printf("    %-20s %d\n", cause.String(), count)
	}
	fmt.Println("  successes by vehicle kind:")
	for kind, count := range s.SuccessByVehicleKind {
		fmt.Printf("    %-20s %d\n", kind.String(), count)
	}
}
