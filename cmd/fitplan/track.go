// ABOUTME: CLI commands for daily tracking mutations.
// ABOUTME: Steps, water, sleep, meal/exercise completion, and food swaps.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/models"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track daily progress",
}

var trackStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Set today's step count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step count: %s", args[0])
		}
		r, err := trk.UpdateSteps(flagUser, steps)
		if err != nil {
			return err
		}
		syncRecord(r)
		color.Green("✓ Steps set to %d", r.Steps)
		return printStats()
	},
}

var trackWaterCmd = &cobra.Command{
	Use:   "water [ml]",
	Short: "Add water intake (default glass is 250 ml)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ml := 0
		if len(args) == 1 {
			var err error
			ml, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid water amount: %s", args[0])
			}
		}
		r, err := trk.AddWater(flagUser, ml)
		if err != nil {
			return err
		}
		syncRecord(r)
		color.Green("✓ Water at %d ml", r.WaterML)
		return printStats()
	},
}

var trackSleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Set today's sleep hours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid sleep hours: %s", args[0])
		}
		r, err := trk.UpdateSleep(flagUser, hours)
		if err != nil {
			return err
		}
		syncRecord(r)
		color.Green("✓ Sleep set to %.1f h", r.SleepHours)
		return printStats()
	},
}

var trackUndo bool

var trackMealCmd = &cobra.Command{
	Use:   "meal <type>",
	Short: "Mark a meal completed (--undo to return it to pending)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mealType := args[0]
		var r *models.DailyRecord
		var err error
		if trackUndo {
			r, err = trk.UncompleteMeal(flagUser, mealType)
		} else {
			r, err = trk.CompleteMeal(flagUser, mealType)
		}
		if err != nil {
			return err
		}
		syncRecord(r)
		if trackUndo {
			color.Green("✓ %s back to pending", mealType)
		} else {
			color.Green("✓ %s completed", mealType)
		}
		return printStats()
	},
}

var trackExerciseDay string

var trackExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Mark an exercise completed (--day for another weekday, --undo to revert)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		day := trackExerciseDay
		if day == "" {
			day = todayWeekday()
		}
		var r *models.DailyRecord
		var err error
		if trackUndo {
			r, err = trk.UncompleteExercise(flagUser, day, name)
		} else {
			r, err = trk.CompleteExercise(flagUser, day, name)
		}
		if err != nil {
			return err
		}
		syncRecord(r)
		if trackUndo {
			color.Green("✓ %s (%s) back to pending", name, day)
		} else {
			color.Green("✓ %s (%s) completed", name, day)
		}
		return printStats()
	},
}

var trackFoodCmd = &cobra.Command{
	Use:   "food <meal-type> <original> <replacement>",
	Short: "Substitute a planned food item for today",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := trk.ReplaceFood(flagUser, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		syncRecord(r)
		color.Green("✓ Replaced %q with %q for %s", args[1], args[2], args[0])
		return nil
	},
}

func init() {
	trackMealCmd.Flags().BoolVar(&trackUndo, "undo", false, "return to pending instead of completing")
	trackExerciseCmd.Flags().BoolVar(&trackUndo, "undo", false, "return to pending instead of completing")
	trackExerciseCmd.Flags().StringVar(&trackExerciseDay, "day", "", "weekday key (monday..sunday), defaults to today")

	trackCmd.AddCommand(trackStepsCmd)
	trackCmd.AddCommand(trackWaterCmd)
	trackCmd.AddCommand(trackSleepCmd)
	trackCmd.AddCommand(trackMealCmd)
	trackCmd.AddCommand(trackExerciseCmd)
	trackCmd.AddCommand(trackFoodCmd)
	rootCmd.AddCommand(trackCmd)
}
