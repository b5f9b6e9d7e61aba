// ABOUTME: CLI command for showing the generated plan.
// ABOUTME: Attaches advice through the resolver; plan math never waits on it.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/advice"
	"github.com/corefit/fitplan/internal/models"
)

var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and show the nutrition/exercise plan",
	Long: `Generate the plan for the current profile. Generation is
deterministic: the same profile always produces the same plan, so this is
safe to run on every view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := gen.Generate(flagUser)
		if err != nil {
			if models.IsNotFound(err) {
				return fmt.Errorf("no profile for %s - run 'fitplan profile create' first", flagUser)
			}
			return err
		}

		if planJSON {
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("Plan for %s (%s)\n\n", p.UserID, p.Goal)
		fmt.Printf("  Daily calories:   %d kcal\n", p.DailyCalories)
		fmt.Printf("  Macros:           %d%% protein / %d%% carbs / %d%% fat\n",
			p.Macros.ProteinPct, p.Macros.CarbPct, p.Macros.FatPct)
		fmt.Printf("  Workouts:         %d sessions/week\n", p.WorkoutFrequency)
		fmt.Printf("  Dietary focus:    %s\n\n", p.DietaryFocus)

		bold.Println("Meals")
		for _, mt := range models.AllMealTypes {
			items := p.Meals[mt]
			if len(items) == 0 {
				continue
			}
			fmt.Printf("  %-10s", mt)
			for i, item := range items {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(item)
			}
			fmt.Println()
		}
		fmt.Println()

		bold.Println("Weekly exercises")
		for _, day := range models.Weekdays {
			exercises := p.Exercises[day]
			if len(exercises) == 0 {
				fmt.Printf("  %-10s %s\n", day, color.New(color.Faint).Sprint("rest"))
				continue
			}
			fmt.Printf("  %-10s", day)
			for i, e := range exercises {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(e)
			}
			fmt.Println()
		}
		fmt.Println()

		// Advice is attached after the plan is complete; a missing provider
		// degrades to the placeholder without affecting the plan.
		prof, err := gen.Profile(flagUser)
		if err != nil {
			return err
		}
		a := advice.Resolve(cmd.Context(), nil, prof, p)
		color.New(color.Faint).Printf("Advice: %s\n", a.Text)

		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planJSON, "json", false, "output plan as JSON")
	rootCmd.AddCommand(planCmd)
}
