// ABOUTME: Fixed rule tables for plan generation.
// ABOUTME: Calorie offsets, macro splits, workout frequency, and weekly templates.
package plan

import "github.com/corefit/fitplan/internal/models"

// Calorie adjustment applied to TDEE per goal. Policy constants, not
// computed values.
var goalOffsets = map[models.Goal]int{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     300,
}

// macroRule pairs a macro split with its dietary focus tag.
type macroRule struct {
	split models.MacroSplit
	focus string
}

// Macro split and dietary focus keyed by goal, with a carb-forward
// adjustment for the two highest activity levels. Splits always sum to 100.
var macroRules = map[models.Goal]macroRule{
	models.GoalLose: {
		split: models.MacroSplit{ProteinPct: 40, CarbPct: 30, FatPct: 30},
		focus: "high-protein deficit",
	},
	models.GoalMaintain: {
		split: models.MacroSplit{ProteinPct: 30, CarbPct: 40, FatPct: 30},
		focus: "balanced",
	},
	models.GoalGain: {
		split: models.MacroSplit{ProteinPct: 30, CarbPct: 45, FatPct: 25},
		focus: "calorie surplus",
	},
}

// highActivity reports whether a level gets the carb-forward macro shift.
func highActivity(a models.ActivityLevel) bool {
	return a == models.ActivityActive || a == models.ActivityVeryActive
}

// Workout sessions per week keyed by activity level then goal.
var workoutFrequency = map[models.ActivityLevel]map[models.Goal]int{
	models.ActivitySedentary: {
		models.GoalLose: 5, models.GoalMaintain: 3, models.GoalGain: 3,
	},
	models.ActivityLight: {
		models.GoalLose: 5, models.GoalMaintain: 3, models.GoalGain: 4,
	},
	models.ActivityModerate: {
		models.GoalLose: 4, models.GoalMaintain: 4, models.GoalGain: 4,
	},
	models.ActivityActive: {
		models.GoalLose: 4, models.GoalMaintain: 5, models.GoalGain: 5,
	},
	models.ActivityVeryActive: {
		models.GoalLose: 5, models.GoalMaintain: 5, models.GoalGain: 6,
	},
}

// Ordered session templates per goal. A plan takes the first N sessions,
// where N is the workout frequency, and lays them out across the week.
var sessionTemplates = map[models.Goal][][]string{
	models.GoalLose: {
		{"brisk walk 30min", "jumping jacks 3x30"},
		{"cycling 40min", "plank 3x45s"},
		{"interval run 25min", "mountain climbers 3x20"},
		{"swimming 30min", "crunches 3x20"},
		{"rowing 30min", "burpees 3x12"},
		{"hike 60min"},
	},
	models.GoalMaintain: {
		{"jog 30min", "push-ups 3x12"},
		{"yoga 40min"},
		{"cycling 30min", "squats 3x15"},
		{"swimming 30min"},
		{"full-body circuit 30min"},
		{"brisk walk 45min"},
	},
	models.GoalGain: {
		{"bench press 4x8", "overhead press 3x10", "triceps dips 3x12"},
		{"deadlift 4x6", "barbell row 3x10", "biceps curls 3x12"},
		{"squats 4x8", "leg press 3x10", "calf raises 3x15"},
		{"pull-ups 4x6", "lat pulldown 3x10", "face pulls 3x15"},
		{"incline press 4x8", "lateral raises 3x12", "core circuit"},
		{"front squat 4x6", "lunges 3x12", "farmer carry 3x40m"},
	},
}

// Session layout across weekday indexes for each frequency. Training days
// are spread so rest days separate sessions where possible.
var sessionDays = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 2, 4},
	4: {0, 1, 3, 4},
	5: {0, 1, 2, 4, 5},
	6: {0, 1, 2, 3, 4, 5},
	7: {0, 1, 2, 3, 4, 5, 6},
}

// Meal templates keyed by goal. Items are stable and ordered so plan
// regeneration is byte-identical for an unchanged profile.
var mealTemplates = map[models.Goal]map[models.MealType][]string{
	models.GoalLose: {
		models.MealBreakfast: {"oatmeal with berries", "boiled eggs", "green tea"},
		models.MealLunch:     {"grilled chicken salad", "quinoa", "olive oil dressing"},
		models.MealDinner:    {"baked salmon", "steamed broccoli", "brown rice"},
		models.MealSnack:     {"greek yogurt", "almonds"},
	},
	models.GoalMaintain: {
		models.MealBreakfast: {"whole grain toast", "scrambled eggs", "orange juice"},
		models.MealLunch:     {"turkey sandwich", "mixed greens", "apple"},
		models.MealDinner:    {"stir-fried tofu", "vegetables", "jasmine rice"},
		models.MealSnack:     {"hummus with carrots", "banana"},
	},
	models.GoalGain: {
		models.MealBreakfast: {"protein pancakes", "peanut butter", "whole milk"},
		models.MealLunch:     {"beef burrito bowl", "avocado", "black beans"},
		models.MealDinner:    {"chicken thighs", "sweet potato", "pasta"},
		models.MealSnack:     {"protein shake", "trail mix", "cottage cheese"},
	},
}
