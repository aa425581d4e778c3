// Package main is the entry point for the railforge CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "railforge",
	Short: "Railforge progression engine",
	Long:  `Railforge drives the survival-RPG progression core: crafting, enhancement, sublimation, decomposition, quests, skills, and the day/night clock.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
