// ABOUTME: DailyRecord model: one mutable tracking record per user per date.
// ABOUTME: Includes completion maps, food substitutions, and weekly summary.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-date key format for daily records.
const DateFormat = "2006-01-02"

// FoodSwap records a substitution of one planned food item for another
// within a single meal on a single day.
type FoodSwap struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// DailyRecord is the tracking state for one user on one calendar date.
// Exactly one record exists per (user, date); it is created lazily on
// first access.
type DailyRecord struct {
	ID         uuid.UUID                  `json:"id"`
	UserID     string                     `json:"user_id"`
	Date       string                     `json:"date"` // DateFormat
	Steps      int                        `json:"steps"`
	WaterML    int                        `json:"water_ml"`
	SleepHours float64                    `json:"sleep_hours"`
	Meals      map[MealType]bool          `json:"meals_completed"`
	Exercises  map[string]map[string]bool `json:"exercises_completed"` // weekday -> exercise name -> done
	FoodSwaps  map[MealType]FoodSwap      `json:"food_swaps"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

// NewDailyRecord creates a zero-valued record for a user and date.
func NewDailyRecord(userID, date string) *DailyRecord {
	now := time.Now()
	return &DailyRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Meals:     make(map[MealType]bool),
		Exercises: make(map[string]map[string]bool),
		FoodSwaps: make(map[MealType]FoodSwap),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EnsureMaps initializes nil maps after deserialization so mutation
// operations never write to a nil map.
func (r *DailyRecord) EnsureMaps() {
	if r.Meals == nil {
		r.Meals = make(map[MealType]bool)
	}
	if r.Exercises == nil {
		r.Exercises = make(map[string]map[string]bool)
	}
	if r.FoodSwaps == nil {
		r.FoodSwaps = make(map[MealType]FoodSwap)
	}
}

// CompletedMeals counts meals marked done.
func (r *DailyRecord) CompletedMeals() int {
	n := 0
	for _, done := range r.Meals {
		if done {
			n++
		}
	}
	return n
}

// CompletedExercises counts exercises marked done for a weekday.
func (r *DailyRecord) CompletedExercises(day string) int {
	n := 0
	for _, done := range r.Exercises[day] {
		if done {
			n++
		}
	}
	return n
}

// ProgressStats is the tracker snapshot for a single day. Ratios are in
// [0,1] relative to the day's plan; a day with nothing defined yields 0.
type ProgressStats struct {
	Date          string  `json:"date"`
	MealRatio     float64 `json:"meal_ratio"`
	ExerciseRatio float64 `json:"exercise_ratio"`
	StepProgress  float64 `json:"step_progress"`
	WaterProgress float64 `json:"water_progress"`
	SleepProgress float64 `json:"sleep_progress"`
	Steps         int     `json:"steps"`
	WaterML       int     `json:"water_ml"`
	SleepHours    float64 `json:"sleep_hours"`
}

// DaySummary pairs a record with its completion ratios inside a
// weekly summary.
type DaySummary struct {
	Date          string       `json:"date"`
	Record        *DailyRecord `json:"record"`
	MealRatio     float64      `json:"meal_ratio"`
	ExerciseRatio float64      `json:"exercise_ratio"`
}

// WeeklySummary is a derived, read-only view over a 7-day window ending at
// a reference date. Days without a stored record appear as zero-valued
// defaults; the aggregator never persists them.
type WeeklySummary struct {
	UserID     string       `json:"user_id"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	Days       []DaySummary `json:"days"`
	TotalSteps int          `json:"total_steps"`
	TotalWater int          `json:"total_water_ml"`
	AvgSleep   float64      `json:"avg_sleep_hours"`
}
