// ABOUTME: Weekly aggregator: read-only 7-day view over daily records.
// ABOUTME: Missing days appear as zero-valued defaults and are never persisted.
package tracker

import (
	"strings"
	"time"

	"github.com/corefit/fitplan/internal/models"
)

// GetWeeklySummary builds the 7 calendar dates ending at refDate
// (inclusive), fetching each day's record and substituting a zero-valued
// default for dates with no record. It is a pure read: missing records are
// never created or stored.
func (t *Tracker) GetWeeklySummary(userID string, refDate time.Time) (*models.WeeklySummary, error) {
	var weekPlan *models.Plan
	if p, err := t.gen.Generate(userID); err == nil {
		weekPlan = p
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	summary := &models.WeeklySummary{
		UserID: userID,
		Days:   make([]models.DaySummary, 0, 7),
	}

	var totalSleep float64
	for i := 6; i >= 0; i-- {
		day := refDate.AddDate(0, 0, -i)
		date := day.Format(models.DateFormat)

		r, err := t.repo.GetDailyRecord(userID, date)
		if err != nil {
			if !models.IsNotFound(err) {
				return nil, err
			}
			r = zeroRecord(userID, date)
		}
		r.EnsureMaps()

		ds := models.DaySummary{Date: date, Record: r}
		if weekPlan != nil {
			weekday := strings.ToLower(day.Weekday().String())
			ds.MealRatio = ratio(float64(r.CompletedMeals()), float64(len(weekPlan.Meals)))
			ds.ExerciseRatio = ratio(float64(r.CompletedExercises(weekday)), float64(len(weekPlan.ExercisesFor(weekday))))
		}

		summary.Days = append(summary.Days, ds)
		summary.TotalSteps += r.Steps
		summary.TotalWater += r.WaterML
		totalSleep += r.SleepHours
	}

	summary.StartDate = summary.Days[0].Date
	summary.EndDate = summary.Days[6].Date
	summary.AvgSleep = totalSleep / 7

	return summary, nil
}

// zeroRecord builds an in-memory default for a date with no stored record.
// It carries no ID so it can never be mistaken for a persisted record.
func zeroRecord(userID, date string) *models.DailyRecord {
	return &models.DailyRecord{
		UserID:    userID,
		Date:      date,
		Meals:     make(map[models.MealType]bool),
		Exercises: make(map[string]map[string]bool),
		FoodSwaps: make(map[models.MealType]models.FoodSwap),
	}
}
