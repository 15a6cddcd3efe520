package main

import (
	"log"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "sortedmap",
		Short:   "Sorted map driver",
		Long:    "Drives the AVL based sorted map: runs the reference scenario or measures throughput.",
		Version: version,
	}
	rootCmd.AddCommand(newDemoCommand(), newBenchCommand())
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
