// ABOUTME: Tests for plan generation: determinism, calorie math, and templates.
// ABOUTME: Uses a SQLite store in a temp dir for the storage-backed paths.
package plan

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/storage"
)

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:        "u1",
		Age:           30,
		Gender:        models.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		Goal:          models.GoalMaintain,
		ActivityLevel: models.ActivityModerate,
		SleepTarget:   7,
	}
}

func TestFromProfileDeterministic(t *testing.T) {
	p := testProfile()
	first, err := FromProfile(p)
	if err != nil {
		t.Fatalf("FromProfile: %v", err)
	}
	second, err := FromProfile(p)
	if err != nil {
		t.Fatalf("FromProfile (second): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two generations from an unchanged profile differ")
	}
}

func TestFromProfileCalorieTargets(t *testing.T) {
	tests := []struct {
		goal   models.Goal
		offset int
	}{
		{models.GoalLose, -500},
		{models.GoalMaintain, 0},
		{models.GoalGain, 300},
	}

	base := testProfile()
	tdee := 1780 * 1.55

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			p := *base
			p.Goal = tt.goal
			plan, err := FromProfile(&p)
			if err != nil {
				t.Fatalf("FromProfile: %v", err)
			}
			want := int(math.Round(tdee)) + tt.offset
			if plan.DailyCalories != want {
				t.Errorf("DailyCalories = %d, want %d", plan.DailyCalories, want)
			}
		})
	}
}

func TestFromProfileMacrosSumTo100(t *testing.T) {
	for _, goal := range models.AllGoals {
		for _, level := range models.AllActivityLevels {
			p := testProfile()
			p.Goal = goal
			p.ActivityLevel = level
			plan, err := FromProfile(p)
			if err != nil {
				t.Fatalf("FromProfile(%s/%s): %v", goal, level, err)
			}
			sum := plan.Macros.ProteinPct + plan.Macros.CarbPct + plan.Macros.FatPct
			if sum != 100 {
				t.Errorf("%s/%s: macro sum = %d, want 100", goal, level, sum)
			}
		}
	}
}

func TestFromProfileHighActivityCarbShift(t *testing.T) {
	moderate := testProfile()
	active := testProfile()
	active.ActivityLevel = models.ActivityActive

	mp, err := FromProfile(moderate)
	if err != nil {
		t.Fatalf("FromProfile(moderate): %v", err)
	}
	ap, err := FromProfile(active)
	if err != nil {
		t.Fatalf("FromProfile(active): %v", err)
	}

	if ap.Macros.CarbPct != mp.Macros.CarbPct+5 {
		t.Errorf("active carbs = %d, want %d", ap.Macros.CarbPct, mp.Macros.CarbPct+5)
	}
	if ap.Macros.FatPct != mp.Macros.FatPct-5 {
		t.Errorf("active fat = %d, want %d", ap.Macros.FatPct, mp.Macros.FatPct-5)
	}
}

func TestFromProfileWorkoutLayout(t *testing.T) {
	p := testProfile()
	plan, err := FromProfile(p)
	if err != nil {
		t.Fatalf("FromProfile: %v", err)
	}

	if plan.WorkoutFrequency < 1 || plan.WorkoutFrequency > 7 {
		t.Fatalf("WorkoutFrequency = %d, out of range", plan.WorkoutFrequency)
	}
	if got := len(plan.Exercises); got != plan.WorkoutFrequency {
		t.Errorf("training days = %d, want %d", got, plan.WorkoutFrequency)
	}
	for day, session := range plan.Exercises {
		if !validDay(day) {
			t.Errorf("unknown weekday key %q", day)
		}
		if len(session) == 0 {
			t.Errorf("empty session on %s", day)
		}
	}

	// Rest days are absent keys, and ExercisesFor reflects that.
	restDays := 0
	for _, day := range models.Weekdays {
		if plan.ExercisesFor(day) == nil {
			restDays++
		}
	}
	if want := 7 - plan.WorkoutFrequency; restDays != want {
		t.Errorf("rest days = %d, want %d", restDays, want)
	}
}

func TestFromProfileMealPlanCopied(t *testing.T) {
	p := testProfile()
	plan, err := FromProfile(p)
	if err != nil {
		t.Fatalf("FromProfile: %v", err)
	}
	if len(plan.Meals) != len(models.AllMealTypes) {
		t.Fatalf("meal slots = %d, want %d", len(plan.Meals), len(models.AllMealTypes))
	}

	// Mutating a generated plan must not leak into later generations.
	plan.Meals[models.MealBreakfast][0] = "mutated"
	plan.Exercises["monday"] = append(plan.Exercises["monday"], "mutated")

	fresh, err := FromProfile(p)
	if err != nil {
		t.Fatalf("FromProfile (fresh): %v", err)
	}
	if fresh.Meals[models.MealBreakfast][0] == "mutated" {
		t.Error("meal template mutated through a generated plan")
	}
	for _, ex := range fresh.Exercises["monday"] {
		if ex == "mutated" {
			t.Error("exercise template mutated through a generated plan")
		}
	}
}

func TestGenerateMissingProfile(t *testing.T) {
	repo := openTestRepo(t)
	g := NewGenerator(repo)

	_, err := g.Generate("ghost")
	if err == nil {
		t.Fatal("expected error for missing profile")
	}
	if !models.IsNotFound(err) {
		t.Errorf("error %v is not a NotFoundError", err)
	}
}

func TestGenerateFromStoredProfile(t *testing.T) {
	repo := openTestRepo(t)
	p := testProfile()
	p.BMI, p.BMR, p.TDEE = 24.7, 1780, 2759
	if err := repo.PutProfile(p); err != nil {
		t.Fatalf("PutProfile: %v", err)
	}

	g := NewGenerator(repo)
	plan, err := g.Generate(p.UserID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.UserID != p.UserID {
		t.Errorf("plan.UserID = %q, want %q", plan.UserID, p.UserID)
	}
	if plan.Goal != p.Goal {
		t.Errorf("plan.Goal = %q, want %q", plan.Goal, p.Goal)
	}
}

func openTestRepo(t *testing.T) storage.Repository {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func validDay(day string) bool {
	for _, d := range models.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
