// ABOUTME: CLI command for the weekly summary.
// ABOUTME: Renders the 7-day window ending today as a table.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the 7-day tracking summary ending today",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := trk.GetWeeklySummary(flagUser, time.Now())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("Week %s to %s\n\n", summary.StartDate, summary.EndDate)
		fmt.Println("  date        steps   water  sleep  meals  exercise")
		for _, day := range summary.Days {
			r := day.Record
			fmt.Printf("  %s %6d %6dml %5.1fh %5.0f%% %6.0f%%\n",
				day.Date, r.Steps, r.WaterML, r.SleepHours,
				day.MealRatio*100, day.ExerciseRatio*100)
		}
		fmt.Println()
		fmt.Printf("  totals: %d steps, %d ml water, %.1f h avg sleep\n",
			summary.TotalSteps, summary.TotalWater, summary.AvgSleep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
