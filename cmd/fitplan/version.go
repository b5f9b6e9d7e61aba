// ABOUTME: CLI version command.
// ABOUTME: Prints the fitplan version string.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitplan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitplan %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
