// ABOUTME: CLI command for running the MCP server over stdio.
// ABOUTME: Lets AI assistants read plans and log tracking data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/mcp"
	"github.com/corefit/fitplan/internal/tracker"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, tracker.Goals{
			Steps:   cfg.StepGoal,
			WaterML: cfg.WaterGoalML,
		}, cfg.GetDefaultUser())
		if err != nil {
			return fmt.Errorf("create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
