// ABOUTME: Plan model: calorie target, macro split, and weekly templates.
// ABOUTME: Plans are pure derivations of a profile; they carry no identity.
package models

// MealType identifies a slot in the daily meal template.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// AllMealTypes lists meal slots in daily order.
var AllMealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValidMealType checks if a string is a valid meal type.
func IsValidMealType(s string) bool {
	for _, mt := range AllMealTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Weekday keys the 7-day exercise template. Lowercase names keep the keys
// stable across serialization.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday",
}

// MacroSplit is the target protein/carb/fat percentage distribution.
// The three parts always sum to 100.
type MacroSplit struct {
	ProteinPct int `json:"protein_pct"`
	CarbPct    int `json:"carb_pct"`
	FatPct     int `json:"fat_pct"`
}

// Plan is the generated nutrition and exercise plan for a profile.
// Generation is deterministic: the same profile always yields the same plan.
type Plan struct {
	UserID           string                `json:"user_id"`
	Goal             Goal                  `json:"goal"`
	DailyCalories    int                   `json:"daily_calories"`
	Macros           MacroSplit            `json:"macros"`
	WorkoutFrequency int                   `json:"workout_frequency"`
	DietaryFocus     string                `json:"dietary_focus"`
	Exercises        map[string][]string   `json:"weekly_exercises"` // weekday -> ordered exercise names
	Meals            map[MealType][]string `json:"meal_plan"`        // meal type -> food items
}

// ExercisesFor returns the ordered exercise list for a weekday key,
// or nil when the day is a rest day.
func (p *Plan) ExercisesFor(day string) []string {
	return p.Exercises[day]
}
