// ABOUTME: CLI command for today's progress stats.
// ABOUTME: Shared printStats helper used after every tracking mutation.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStats()
	},
}

// todayWeekday is the lowercase weekday key for the current date.
func todayWeekday() string {
	return strings.ToLower(time.Now().Weekday().String())
}

func printStats() error {
	stats, err := trk.GetProgressStats(flagUser)
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	fmt.Printf("%s %s\n", faint.Sprint("progress"), stats.Date)
	fmt.Printf("  steps     %6d  %s\n", stats.Steps, bar(stats.StepProgress))
	fmt.Printf("  water     %4d ml %s\n", stats.WaterML, bar(stats.WaterProgress))
	fmt.Printf("  sleep     %5.1f h %s\n", stats.SleepHours, bar(stats.SleepProgress))
	fmt.Printf("  meals     %s\n", bar(stats.MealRatio))
	fmt.Printf("  exercise  %s\n", bar(stats.ExerciseRatio))
	return nil
}

// bar renders a ratio as a 10-slot progress bar with a percentage.
func bar(ratio float64) string {
	filled := int(ratio * 10)
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", 10-filled),
		ratio*100)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
