// ABOUTME: CLI commands for profile management.
// ABOUTME: Create/show/update with derived metrics printed on each change.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/profile"
)

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileGoal     string
	profileActivity string
	profileSleep    float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage user profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create (or replace) a profile",
	Long: `Create a profile. BMI, BMR, and TDEE are computed from the base
fields; they can never be supplied directly.

Example:
  fitplan profile create --age 30 --gender male --height 180 --weight 80 \
      --goal lose --activity moderate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profiles.Create(profile.Params{
			UserID:        flagUser,
			Name:          profileName,
			Age:           profileAge,
			Gender:        models.Gender(profileGender),
			HeightCm:      profileHeight,
			WeightKg:      profileWeight,
			Goal:          models.Goal(profileGoal),
			ActivityLevel: models.ActivityLevel(profileActivity),
			SleepTarget:   profileSleep,
		})
		if err != nil {
			return err
		}
		syncProfile(p)

		color.Green("✓ Profile saved for %s", p.UserID)
		printProfile(p)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and derived metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profiles.Get(flagUser)
		if err != nil {
			if models.IsNotFound(err) {
				return fmt.Errorf("no profile for %s - run 'fitplan profile create' first", flagUser)
			}
			return err
		}
		printProfile(p)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields; metrics are recomputed when needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		u := profile.Updates{}
		if cmd.Flags().Changed("name") {
			u.Name = &profileName
		}
		if cmd.Flags().Changed("age") {
			u.Age = &profileAge
		}
		if cmd.Flags().Changed("gender") {
			g := models.Gender(profileGender)
			u.Gender = &g
		}
		if cmd.Flags().Changed("height") {
			u.HeightCm = &profileHeight
		}
		if cmd.Flags().Changed("weight") {
			u.WeightKg = &profileWeight
		}
		if cmd.Flags().Changed("goal") {
			g := models.Goal(profileGoal)
			u.Goal = &g
		}
		if cmd.Flags().Changed("activity") {
			a := models.ActivityLevel(profileActivity)
			u.ActivityLevel = &a
		}
		if cmd.Flags().Changed("sleep-target") {
			u.SleepTarget = &profileSleep
		}

		p, err := profiles.Update(flagUser, u)
		if err != nil {
			return err
		}
		syncProfile(p)

		color.Green("✓ Profile updated for %s", p.UserID)
		printProfile(p)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := profiles.List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No profiles stored.")
			return nil
		}
		for _, p := range all {
			fmt.Printf("%-20s %3dy %-7s goal=%-8s activity=%-11s BMI %.1f\n",
				p.UserID, p.Age, p.Gender, p.Goal, p.ActivityLevel, p.BMI)
		}
		return nil
	},
}

func printProfile(p *models.UserProfile) {
	faint := color.New(color.Faint)
	fmt.Printf("  %s %s, %d y, %.0f cm, %.1f kg\n",
		faint.Sprint("base:   "), p.Gender, p.Age, p.HeightCm, p.WeightKg)
	fmt.Printf("  %s goal=%s activity=%s sleep target=%.1fh\n",
		faint.Sprint("plan:   "), p.Goal, p.ActivityLevel, p.SleepTarget)
	fmt.Printf("  %s BMI %.1f · BMR %.0f kcal · TDEE %.0f kcal\n",
		faint.Sprint("derived:"), p.BMI, p.BMR, p.TDEE)
}

func init() {
	for _, c := range []*cobra.Command{profileCreateCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileName, "name", "", "display name")
		c.Flags().IntVar(&profileAge, "age", 0, "age in years")
		c.Flags().StringVar(&profileGender, "gender", "", "gender (male, female, other)")
		c.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
		c.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
		c.Flags().StringVar(&profileGoal, "goal", "", "fitness goal (lose, maintain, gain)")
		c.Flags().StringVar(&profileActivity, "activity", "", "activity level (sedentary, light, moderate, active, very_active)")
		c.Flags().Float64Var(&profileSleep, "sleep-target", 0, "target sleep hours (default 7)")
	}

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileListCmd)
	rootCmd.AddCommand(profileCmd)
}
