// ABOUTME: Root Cobra command for fitplan CLI.
// ABOUTME: Handles config load and storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/cloud"
	"github.com/corefit/fitplan/internal/config"
	"github.com/corefit/fitplan/internal/plan"
	"github.com/corefit/fitplan/internal/profile"
	"github.com/corefit/fitplan/internal/storage"
	"github.com/corefit/fitplan/internal/tracker"
)

var (
	cfg      *config.Config
	repo     storage.Repository
	profiles *profile.Service
	gen      *plan.Generator
	trk      *tracker.Tracker
	mirror   *cloud.Mirror

	flagUser string
)

var rootCmd = &cobra.Command{
	Use:   "fitplan",
	Short: "Personalized nutrition and exercise planner",
	Long: `Fitplan derives health metrics from your profile, generates a
deterministic nutrition/exercise plan, and tracks daily progress.

QUICK START:

  $ fitplan profile create --age 30 --gender male --height 180 --weight 80 \
      --goal lose --activity moderate
  $ fitplan plan                        # Show your generated plan
  $ fitplan track steps 8500            # Log today's steps
  $ fitplan track water                 # Add a glass of water (250 ml)
  $ fitplan track meal breakfast        # Mark breakfast done
  $ fitplan stats                       # Today's progress
  $ fitplan week                        # 7-day summary

DATA STORAGE:

  Profiles and daily records are stored locally (SQLite by default, Badger
  via config). Enable cloud_sync in the config to mirror writes to Charm
  Cloud. Config lives at ~/.config/fitplan/config.json; FITPLAN_* env vars
  and a local .env file override it.

MCP INTEGRATION:

  Run 'fitplan mcp' to start the Model Context Protocol server so an AI
  assistant can read your plan and log progress:

  {
    "mcpServers": {
      "fitplan": { "command": "fitplan", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		profiles = profile.NewService(repo)
		gen = plan.NewGenerator(repo)
		trk = tracker.NewTracker(repo, gen, tracker.Goals{
			Steps:   cfg.StepGoal,
			WaterML: cfg.WaterGoalML,
		})

		if cfg.CloudSync {
			mirror, err = cloud.NewMirror()
			if err != nil {
				// Cloud is best-effort, local operation continues.
				fmt.Fprintf(os.Stderr, "warning: cloud sync unavailable: %v\n", err)
				mirror = nil
			}
		}

		if flagUser == "" {
			flagUser = cfg.GetDefaultUser()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if mirror != nil {
			_ = mirror.Close()
		}
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "user ID (defaults to configured user)")
}
