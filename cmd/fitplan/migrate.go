// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies all profiles and daily records from one store to another.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	migrateFrom string
	migrateTo   string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy all data from one storage backend to another",
	Long: `Copy every profile and daily record between backends, e.g. when
switching from Badger to SQLite. The source is left untouched.

Example:
  fitplan migrate --from badger --to sqlite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination backends are both %q", migrateFrom)
		}

		src, err := cfg.OpenBackend(migrateFrom)
		if err != nil {
			return fmt.Errorf("open source: %w", err)
		}
		defer func() { _ = src.Close() }()

		dst, err := cfg.OpenBackend(migrateTo)
		if err != nil {
			return fmt.Errorf("open destination: %w", err)
		}
		defer func() { _ = dst.Close() }()

		profiles, err := src.ListProfiles()
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}

		migratedProfiles, migratedRecords := 0, 0
		for _, p := range profiles {
			if err := dst.PutProfile(p); err != nil {
				return fmt.Errorf("migrate profile %s: %w", p.UserID, err)
			}
			migratedProfiles++

			records, err := src.ListDailyRecords(p.UserID, 0)
			if err != nil {
				return fmt.Errorf("list records for %s: %w", p.UserID, err)
			}
			for _, r := range records {
				if err := dst.PutDailyRecord(r); err != nil {
					return fmt.Errorf("migrate record %s/%s: %w", r.UserID, r.Date, err)
				}
				migratedRecords++
			}
		}

		color.Green("✓ Migrated %d profiles and %d records from %s to %s",
			migratedProfiles, migratedRecords, migrateFrom, migrateTo)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "badger", "source backend (sqlite, badger)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "sqlite", "destination backend (sqlite, badger)")
	rootCmd.AddCommand(migrateCmd)
}
