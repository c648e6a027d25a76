package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "reliefgrid",
	Short:   "Discrete-event simulator for disaster-relief fleet dispatch",
	Long:    `Reliefgrid simulates dispatching a heterogeneous vehicle fleet from bases to affected zones under degrading weather, hazards, fuel, and time-window pressure.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
