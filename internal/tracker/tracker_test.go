// ABOUTME: Tests for daily tracking mutations and progress stats.
// ABOUTME: Uses a SQLite store in a temp dir and a fixed clock.
package tracker

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/corefit/fitplan/internal/metrics"
	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/plan"
	"github.com/corefit/fitplan/internal/storage"
)

// fixedDate is a Monday, so todayWeekday() is a training day for every
// generated plan layout.
var fixedDate = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, storage.Repository) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	trk := NewTracker(db, plan.NewGenerator(db), DefaultGoals)
	trk.Now = func() time.Time { return fixedDate }
	return trk, db
}

func storeProfile(t *testing.T, repo storage.Repository) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{
		UserID:        "u1",
		Age:           30,
		Gender:        models.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		Goal:          models.GoalMaintain,
		ActivityLevel: models.ActivityModerate,
		SleepTarget:   8,
	}
	if err := metrics.Refresh(p); err != nil {
		t.Fatalf("refresh metrics: %v", err)
	}
	if err := repo.PutProfile(p); err != nil {
		t.Fatalf("put profile: %v", err)
	}
	return p
}

func TestGetOrCreateTodayIsLazySingleton(t *testing.T) {
	trk, repo := newTestTracker(t)

	first, err := trk.GetOrCreateToday("u1")
	if err != nil {
		t.Fatalf("GetOrCreateToday: %v", err)
	}
	if first.Date != fixedDate.Format(models.DateFormat) {
		t.Errorf("Date = %q, want %q", first.Date, fixedDate.Format(models.DateFormat))
	}

	second, err := trk.GetOrCreateToday("u1")
	if err != nil {
		t.Fatalf("GetOrCreateToday (second): %v", err)
	}
	if first.ID != second.ID {
		t.Error("second access created a new record for the same date")
	}

	records, err := repo.ListDailyRecords("u1", 0)
	if err != nil {
		t.Fatalf("ListDailyRecords: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("stored records = %d, want 1", len(records))
	}
}

func TestUpdateSteps(t *testing.T) {
	trk, _ := newTestTracker(t)

	r, err := trk.UpdateSteps("u1", 8000)
	if err != nil {
		t.Fatalf("UpdateSteps: %v", err)
	}
	if r.Steps != 8000 {
		t.Errorf("Steps = %d, want 8000", r.Steps)
	}

	// Absolute set, not increment.
	r, err = trk.UpdateSteps("u1", 500)
	if err != nil {
		t.Fatalf("UpdateSteps (second): %v", err)
	}
	if r.Steps != 500 {
		t.Errorf("Steps = %d, want 500", r.Steps)
	}
}

func TestUpdateStepsRejectsNegativeLeavingRecordUnchanged(t *testing.T) {
	trk, repo := newTestTracker(t)

	if _, err := trk.UpdateSteps("u1", 4000); err != nil {
		t.Fatalf("UpdateSteps: %v", err)
	}
	_, err := trk.UpdateSteps("u1", -1)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !models.IsValidation(err) {
		t.Errorf("error %v is not a ValidationError", err)
	}

	stored, err := repo.GetDailyRecord("u1", fixedDate.Format(models.DateFormat))
	if err != nil {
		t.Fatalf("GetDailyRecord: %v", err)
	}
	if stored.Steps != 4000 {
		t.Errorf("stored Steps = %d, want unchanged 4000", stored.Steps)
	}
}

func TestAddWaterAccumulatesWithDefaultGlass(t *testing.T) {
	trk, _ := newTestTracker(t)

	r, err := trk.AddWater("u1", 0)
	if err != nil {
		t.Fatalf("AddWater(0): %v", err)
	}
	if r.WaterML != DefaultWaterML {
		t.Errorf("WaterML = %d, want default %d", r.WaterML, DefaultWaterML)
	}

	r, err = trk.AddWater("u1", 500)
	if err != nil {
		t.Fatalf("AddWater(500): %v", err)
	}
	if want := DefaultWaterML + 500; r.WaterML != want {
		t.Errorf("WaterML = %d, want %d", r.WaterML, want)
	}

	if _, err := trk.AddWater("u1", -10); !models.IsValidation(err) {
		t.Errorf("AddWater(-10) error = %v, want ValidationError", err)
	}
}

func TestUpdateSleepBounds(t *testing.T) {
	trk, repo := newTestTracker(t)

	r, err := trk.UpdateSleep("u1", 7.5)
	if err != nil {
		t.Fatalf("UpdateSleep: %v", err)
	}
	if r.SleepHours != 7.5 {
		t.Errorf("SleepHours = %g, want 7.5", r.SleepHours)
	}

	for _, bad := range []float64{-0.5, 25} {
		_, err := trk.UpdateSleep("u1", bad)
		if !models.IsValidation(err) {
			t.Errorf("UpdateSleep(%g) error = %v, want ValidationError", bad, err)
		}
	}

	stored, err := repo.GetDailyRecord("u1", fixedDate.Format(models.DateFormat))
	if err != nil {
		t.Fatalf("GetDailyRecord: %v", err)
	}
	if stored.SleepHours != 7.5 {
		t.Errorf("stored SleepHours = %g, want unchanged 7.5", stored.SleepHours)
	}
}

func TestMealCompletionIdempotentAndReversible(t *testing.T) {
	trk, _ := newTestTracker(t)

	r, err := trk.CompleteMeal("u1", "breakfast")
	if err != nil {
		t.Fatalf("CompleteMeal: %v", err)
	}
	if !r.Meals[models.MealBreakfast] {
		t.Error("breakfast not marked done")
	}

	// Completing again is a no-op, not an error.
	again, err := trk.CompleteMeal("u1", "breakfast")
	if err != nil {
		t.Fatalf("CompleteMeal (repeat): %v", err)
	}
	if !again.Meals[models.MealBreakfast] || again.CompletedMeals() != 1 {
		t.Error("repeated completion changed state")
	}

	undone, err := trk.UncompleteMeal("u1", "breakfast")
	if err != nil {
		t.Fatalf("UncompleteMeal: %v", err)
	}
	if undone.Meals[models.MealBreakfast] {
		t.Error("breakfast still marked done after uncomplete")
	}

	if _, err := trk.CompleteMeal("u1", "brunch"); !models.IsValidation(err) {
		t.Errorf("CompleteMeal(brunch) error = %v, want ValidationError", err)
	}
}

func TestExerciseCompletion(t *testing.T) {
	trk, _ := newTestTracker(t)

	r, err := trk.CompleteExercise("u1", "Monday", "jog 30min")
	if err != nil {
		t.Fatalf("CompleteExercise: %v", err)
	}
	if !r.Exercises["monday"]["jog 30min"] {
		t.Error("exercise not marked done under lowercase day key")
	}

	r, err = trk.UncompleteExercise("u1", "monday", "jog 30min")
	if err != nil {
		t.Fatalf("UncompleteExercise: %v", err)
	}
	if r.Exercises["monday"]["jog 30min"] {
		t.Error("exercise still done after uncomplete")
	}

	if _, err := trk.CompleteExercise("u1", "someday", "jog 30min"); !models.IsValidation(err) {
		t.Errorf("bad day error = %v, want ValidationError", err)
	}
	if _, err := trk.CompleteExercise("u1", "monday", ""); !models.IsValidation(err) {
		t.Errorf("empty name error = %v, want ValidationError", err)
	}
}

func TestReplaceFood(t *testing.T) {
	trk, _ := newTestTracker(t)

	r, err := trk.ReplaceFood("u1", "lunch", "turkey sandwich", "veggie wrap")
	if err != nil {
		t.Fatalf("ReplaceFood: %v", err)
	}
	swap, ok := r.FoodSwaps[models.MealLunch]
	if !ok {
		t.Fatal("no swap recorded for lunch")
	}
	if swap.Original != "turkey sandwich" || swap.Replacement != "veggie wrap" {
		t.Errorf("swap = %+v", swap)
	}

	if _, err := trk.ReplaceFood("u1", "lunch", "", "veggie wrap"); !models.IsValidation(err) {
		t.Errorf("empty original error = %v, want ValidationError", err)
	}
}

func TestGetProgressStatsWithoutProfile(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.UpdateSteps("u1", 5000); err != nil {
		t.Fatalf("UpdateSteps: %v", err)
	}

	stats, err := trk.GetProgressStats("u1")
	if err != nil {
		t.Fatalf("GetProgressStats: %v", err)
	}
	if stats.StepProgress != 0.5 {
		t.Errorf("StepProgress = %g, want 0.5", stats.StepProgress)
	}
	// No profile means no plan: meal and exercise ratios stay 0.
	if stats.MealRatio != 0 || stats.ExerciseRatio != 0 {
		t.Errorf("ratios = %g/%g, want 0/0 without a plan", stats.MealRatio, stats.ExerciseRatio)
	}
}

func TestGetProgressStatsWithPlan(t *testing.T) {
	trk, repo := newTestTracker(t)
	storeProfile(t, repo)

	if _, err := trk.CompleteMeal("u1", "breakfast"); err != nil {
		t.Fatalf("CompleteMeal: %v", err)
	}
	if _, err := trk.CompleteMeal("u1", "lunch"); err != nil {
		t.Fatalf("CompleteMeal: %v", err)
	}
	if _, err := trk.UpdateSleep("u1", 4); err != nil {
		t.Fatalf("UpdateSleep: %v", err)
	}

	stats, err := trk.GetProgressStats("u1")
	if err != nil {
		t.Fatalf("GetProgressStats: %v", err)
	}
	if stats.MealRatio != 0.5 {
		t.Errorf("MealRatio = %g, want 0.5 (2 of 4 meals)", stats.MealRatio)
	}
	// Sleep target comes from the profile (8h), not the global default.
	if stats.SleepProgress != 0.5 {
		t.Errorf("SleepProgress = %g, want 0.5", stats.SleepProgress)
	}
}

func TestProgressRatiosCapAtOne(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.UpdateSteps("u1", 25000); err != nil {
		t.Fatalf("UpdateSteps: %v", err)
	}
	stats, err := trk.GetProgressStats("u1")
	if err != nil {
		t.Fatalf("GetProgressStats: %v", err)
	}
	if stats.StepProgress != 1 {
		t.Errorf("StepProgress = %g, want capped at 1", stats.StepProgress)
	}
}

func TestConcurrentWaterAdditionsAreNotLost(t *testing.T) {
	trk, _ := newTestTracker(t)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := trk.AddWater("u1", 100); err != nil {
				t.Errorf("AddWater: %v", err)
			}
		}()
	}
	wg.Wait()

	r, err := trk.GetOrCreateToday("u1")
	if err != nil {
		t.Fatalf("GetOrCreateToday: %v", err)
	}
	if want := n * 100; r.WaterML != want {
		t.Errorf("WaterML = %d, want %d", r.WaterML, want)
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		done, total, want float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{2, 4, 0.5},
		{4, 4, 1},
		{8, 4, 1},
	}
	for _, tt := range tests {
		if got := ratio(tt.done, tt.total); got != tt.want {
			t.Errorf("ratio(%g, %g) = %g, want %g", tt.done, tt.total, got, tt.want)
		}
	}
}
