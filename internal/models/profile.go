// ABOUTME: UserProfile model with gender, goal, and activity level enums.
// ABOUTME: Derived BMI/BMR/TDEE fields are computed, never user-supplied.
package models

import (
	"fmt"
	"time"
)

// Gender is the profile gender used by the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goal is the fitness goal driving plan generation.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// AllGenders lists valid genders.
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// AllGoals lists valid fitness goals.
var AllGoals = []Goal{GoalLose, GoalMaintain, GoalGain}

// AllActivityLevels lists valid activity levels, least to most active.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate,
	ActivityActive, ActivityVeryActive,
}

// IsValidGender checks if a string is a valid gender.
func IsValidGender(s string) bool {
	for _, g := range AllGenders {
		if string(g) == s {
			return true
		}
	}
	return false
}

// IsValidGoal checks if a string is a valid fitness goal.
func IsValidGoal(s string) bool {
	for _, g := range AllGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// IsValidActivityLevel checks if a string is a valid activity level.
func IsValidActivityLevel(s string) bool {
	for _, a := range AllActivityLevels {
		if string(a) == s {
			return true
		}
	}
	return false
}

// DefaultSleepTarget is the target sleep hours used when a profile
// does not specify one.
const DefaultSleepTarget = 7.0

// UserProfile is the stored profile for one user. BMI, BMR, and TDEE are
// derived fields: they are recomputed whenever height, weight, age, gender,
// or activity level changes and are never taken from caller input.
type UserProfile struct {
	UserID        string        `json:"user_id"`
	Name          string        `json:"name,omitempty"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	Goal          Goal          `json:"fitness_goal"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	SleepTarget   float64       `json:"sleep_target_hours"`

	// Derived, see internal/metrics.
	BMI  float64 `json:"bmi"`
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks every base field against its domain. Derived fields are
// not inspected; they are overwritten on compute.
func (p *UserProfile) Validate() error {
	if p.UserID == "" {
		return NewValidationError("user_id", "must not be empty")
	}
	if p.Age <= 0 {
		return NewValidationError("age", fmt.Sprintf("must be positive, got %d", p.Age))
	}
	if !IsValidGender(string(p.Gender)) {
		return NewValidationError("gender", fmt.Sprintf("unknown value %q", p.Gender))
	}
	if p.HeightCm <= 0 {
		return NewValidationError("height_cm", fmt.Sprintf("must be positive, got %g", p.HeightCm))
	}
	if p.WeightKg <= 0 {
		return NewValidationError("weight_kg", fmt.Sprintf("must be positive, got %g", p.WeightKg))
	}
	if !IsValidGoal(string(p.Goal)) {
		return NewValidationError("fitness_goal", fmt.Sprintf("unknown value %q", p.Goal))
	}
	if !IsValidActivityLevel(string(p.ActivityLevel)) {
		return NewValidationError("activity_level", fmt.Sprintf("unknown value %q", p.ActivityLevel))
	}
	if p.SleepTarget < 0 || p.SleepTarget > 24 {
		return NewValidationError("sleep_target_hours", fmt.Sprintf("must be within [0,24], got %g", p.SleepTarget))
	}
	return nil
}
