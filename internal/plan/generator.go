// ABOUTME: Deterministic plan generation from a stored user profile.
// ABOUTME: Calorie target, macros, workout frequency, and weekly templates.
package plan

import (
	"fmt"
	"math"

	"github.com/corefit/fitplan/internal/metrics"
	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/storage"
)

// Generator derives plans from stored profiles. It holds no state beyond
// the repository reference; generation itself is pure, so regenerating a
// plan for an unchanged profile yields an identical structure.
type Generator struct {
	repo storage.Repository
}

// NewGenerator creates a Generator over a repository.
func NewGenerator(repo storage.Repository) *Generator {
	return &Generator{repo: repo}
}

// Generate loads the user's profile and derives a plan from it. It returns
// a NotFoundError when no profile is stored for the user and a
// ValidationError when the profile fails metrics validation.
func (g *Generator) Generate(userID string) (*models.Plan, error) {
	p, err := g.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return FromProfile(p)
}

// Profile exposes the underlying profile lookup for callers that need the
// derived metrics alongside a generated plan.
func (g *Generator) Profile(userID string) (*models.UserProfile, error) {
	return g.repo.GetProfile(userID)
}

// FromProfile derives a plan from a profile without touching storage.
// It never calls any advice service; advice text, if any, is attached by
// the caller after this returns.
func FromProfile(p *models.UserProfile) (*models.Plan, error) {
	m, err := metrics.Compute(p)
	if err != nil {
		return nil, err
	}

	offset, ok := goalOffsets[p.Goal]
	if !ok {
		return nil, models.NewValidationError("fitness_goal", fmt.Sprintf("unknown value %q", p.Goal))
	}

	rule := macroRules[p.Goal]
	split := rule.split
	if highActivity(p.ActivityLevel) {
		split.CarbPct += 5
		split.FatPct -= 5
	}

	freq := workoutFrequency[p.ActivityLevel][p.Goal]

	return &models.Plan{
		UserID:           p.UserID,
		Goal:             p.Goal,
		DailyCalories:    int(math.Round(m.TDEE)) + offset,
		Macros:           split,
		WorkoutFrequency: freq,
		DietaryFocus:     rule.focus,
		Exercises:        weeklyExercises(p.Goal, freq),
		Meals:            mealPlan(p.Goal),
	}, nil
}

// weeklyExercises lays the first freq session templates for a goal across
// the week, leaving the remaining weekdays as rest days (absent keys).
func weeklyExercises(goal models.Goal, freq int) map[string][]string {
	sessions := sessionTemplates[goal]
	days := sessionDays[freq]
	out := make(map[string][]string, len(days))
	for i, dayIdx := range days {
		session := sessions[i%len(sessions)]
		exercises := make([]string, len(session))
		copy(exercises, session)
		out[models.Weekdays[dayIdx]] = exercises
	}
	return out
}

// mealPlan copies the goal's meal template so callers can never mutate
// the shared table.
func mealPlan(goal models.Goal) map[models.MealType][]string {
	tpl := mealTemplates[goal]
	out := make(map[models.MealType][]string, len(tpl))
	for mt, items := range tpl {
		foods := make([]string, len(items))
		copy(foods, items)
		out[mt] = foods
	}
	return out
}
