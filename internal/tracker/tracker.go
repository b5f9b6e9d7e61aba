// ABOUTME: Daily tracker: per-(user, date) record mutations and progress stats.
// ABOUTME: Serializes mutations per user so concurrent updates are never lost.
package tracker

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/plan"
	"github.com/corefit/fitplan/internal/storage"
)

// DefaultWaterML is the water increment used when none is given.
const DefaultWaterML = 250

// Goals are the externally supplied daily targets used for progress
// ratios. Sleep target comes from the profile, not from here.
type Goals struct {
	Steps   int
	WaterML int
}

// DefaultGoals are the fallback daily targets.
var DefaultGoals = Goals{Steps: 10000, WaterML: 2000}

// Tracker owns daily record mutations for all users. Each user has a
// dedicated lock so read-modify-write operations on the same record are
// serialized; different users never contend.
type Tracker struct {
	repo  storage.Repository
	gen   *plan.Generator
	goals Goals

	// Now is the clock used to resolve "today"; overridable in tests.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTracker creates a Tracker over a repository and plan generator.
func NewTracker(repo storage.Repository, gen *plan.Generator, goals Goals) *Tracker {
	if goals.Steps <= 0 {
		goals.Steps = DefaultGoals.Steps
	}
	if goals.WaterML <= 0 {
		goals.WaterML = DefaultGoals.WaterML
	}
	return &Tracker{
		repo:  repo,
		gen:   gen,
		goals: goals,
		Now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the serialization point for a user.
func (t *Tracker) userLock(userID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	return l
}

// today returns the current calendar date key.
func (t *Tracker) today() string {
	return t.Now().Format(models.DateFormat)
}

// todayWeekday returns the lowercase weekday key for the current date.
func (t *Tracker) todayWeekday() string {
	return strings.ToLower(t.Now().Weekday().String())
}

// GetOrCreateToday returns today's record for a user, creating a
// zero-valued one on first access. Exactly one record ever exists per
// (user, date).
func (t *Tracker) GetOrCreateToday(userID string) (*models.DailyRecord, error) {
	l := t.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return t.getOrCreate(userID, t.today())
}

// getOrCreate loads or lazily creates the record for a date. Caller holds
// the user lock.
func (t *Tracker) getOrCreate(userID, date string) (*models.DailyRecord, error) {
	r, err := t.repo.GetDailyRecord(userID, date)
	if err == nil {
		r.EnsureMaps()
		return r, nil
	}
	if !models.IsNotFound(err) {
		return nil, err
	}
	r = models.NewDailyRecord(userID, date)
	if err := t.repo.PutDailyRecord(r); err != nil {
		return nil, err
	}
	return r, nil
}

// mutate runs fn on today's record under the user lock and persists the
// result. fn returning an error aborts before anything is written, leaving
// the stored record unchanged.
func (t *Tracker) mutate(userID string, fn func(r *models.DailyRecord) error) (*models.DailyRecord, error) {
	l := t.userLock(userID)
	l.Lock()
	defer l.Unlock()

	r, err := t.getOrCreate(userID, t.today())
	if err != nil {
		return nil, err
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	r.UpdatedAt = t.Now()
	if err := t.repo.PutDailyRecord(r); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateSteps sets today's step count to an absolute value.
func (t *Tracker) UpdateSteps(userID string, steps int) (*models.DailyRecord, error) {
	if steps < 0 {
		return nil, models.NewValidationError("steps", fmt.Sprintf("must not be negative, got %d", steps))
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		r.Steps = steps
		return nil
	})
}

// AddWater adds ml to today's cumulative water intake. Zero means the
// default glass size.
func (t *Tracker) AddWater(userID string, ml int) (*models.DailyRecord, error) {
	if ml < 0 {
		return nil, models.NewValidationError("water_ml", fmt.Sprintf("must not be negative, got %d", ml))
	}
	if ml == 0 {
		ml = DefaultWaterML
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		r.WaterML += ml
		return nil
	})
}

// UpdateSleep sets today's sleep hours.
func (t *Tracker) UpdateSleep(userID string, hours float64) (*models.DailyRecord, error) {
	if hours < 0 || hours > 24 {
		return nil, models.NewValidationError("sleep_hours", fmt.Sprintf("must be within [0,24], got %g", hours))
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		r.SleepHours = hours
		return nil
	})
}

// CompleteMeal marks a meal done for today. Repeating the call is a no-op,
// not an error.
func (t *Tracker) CompleteMeal(userID, mealType string) (*models.DailyRecord, error) {
	return t.setMeal(userID, mealType, true)
}

// UncompleteMeal returns a meal to pending for today. Idempotent.
func (t *Tracker) UncompleteMeal(userID, mealType string) (*models.DailyRecord, error) {
	return t.setMeal(userID, mealType, false)
}

func (t *Tracker) setMeal(userID, mealType string, done bool) (*models.DailyRecord, error) {
	if !models.IsValidMealType(mealType) {
		return nil, models.NewValidationError("meal_type", fmt.Sprintf("unknown value %q", mealType))
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		r.Meals[models.MealType(mealType)] = done
		return nil
	})
}

// CompleteExercise marks an exercise done. The day key may address any
// weekday of the active template, not just today.
func (t *Tracker) CompleteExercise(userID, day, name string) (*models.DailyRecord, error) {
	return t.setExercise(userID, day, name, true)
}

// UncompleteExercise returns an exercise to pending. Idempotent.
func (t *Tracker) UncompleteExercise(userID, day, name string) (*models.DailyRecord, error) {
	return t.setExercise(userID, day, name, false)
}

func (t *Tracker) setExercise(userID, day, name string, done bool) (*models.DailyRecord, error) {
	day = strings.ToLower(day)
	if !validWeekday(day) {
		return nil, models.NewValidationError("day", fmt.Sprintf("unknown weekday %q", day))
	}
	if name == "" {
		return nil, models.NewValidationError("exercise", "name must not be empty")
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		if r.Exercises[day] == nil {
			r.Exercises[day] = make(map[string]bool)
		}
		r.Exercises[day][name] = done
		return nil
	})
}

// ReplaceFood records a substitution overriding the plan's listed item for
// a meal type on the current day. The plan template itself is untouched.
func (t *Tracker) ReplaceFood(userID, mealType, original, replacement string) (*models.DailyRecord, error) {
	if !models.IsValidMealType(mealType) {
		return nil, models.NewValidationError("meal_type", fmt.Sprintf("unknown value %q", mealType))
	}
	if original == "" || replacement == "" {
		return nil, models.NewValidationError("food", "original and replacement must not be empty")
	}
	return t.mutate(userID, func(r *models.DailyRecord) error {
		r.FoodSwaps[models.MealType(mealType)] = models.FoodSwap{
			Original:    original,
			Replacement: replacement,
		}
		return nil
	})
}

// GetProgressStats returns today's completion ratios and counter progress.
// Ratios against an empty denominator (no meals or exercises defined, no
// profile) are 0, never an error.
func (t *Tracker) GetProgressStats(userID string) (*models.ProgressStats, error) {
	l := t.userLock(userID)
	l.Lock()
	defer l.Unlock()

	r, err := t.getOrCreate(userID, t.today())
	if err != nil {
		return nil, err
	}

	stats := &models.ProgressStats{
		Date:       r.Date,
		Steps:      r.Steps,
		WaterML:    r.WaterML,
		SleepHours: r.SleepHours,
	}

	stats.StepProgress = ratio(float64(r.Steps), float64(t.goals.Steps))
	stats.WaterProgress = ratio(float64(r.WaterML), float64(t.goals.WaterML))

	sleepTarget := models.DefaultSleepTarget
	var dayPlan *models.Plan
	if p, err := t.gen.Generate(userID); err == nil {
		dayPlan = p
	} else if !models.IsNotFound(err) {
		return nil, err
	}
	if prof, err := t.repo.GetProfile(userID); err == nil && prof.SleepTarget > 0 {
		sleepTarget = prof.SleepTarget
	}
	stats.SleepProgress = ratio(r.SleepHours, sleepTarget)

	if dayPlan != nil {
		stats.MealRatio = ratio(float64(r.CompletedMeals()), float64(len(dayPlan.Meals)))
		day := t.todayWeekday()
		stats.ExerciseRatio = ratio(float64(r.CompletedExercises(day)), float64(len(dayPlan.ExercisesFor(day))))
	}

	return stats, nil
}

// ratio divides done by total, returning 0 for an empty total and capping
// at 1 so over-achievement reads as complete.
func ratio(done, total float64) float64 {
	if total <= 0 {
		return 0
	}
	r := done / total
	if r > 1 {
		return 1
	}
	return r
}

func validWeekday(day string) bool {
	for _, d := range models.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
