// ABOUTME: Tests for the 7-day weekly summary aggregator.
// ABOUTME: Verifies default substitution, totals, and read-only behavior.
package tracker

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/corefit/fitplan/internal/models"
)

func TestWeeklySummarySevenDaysWithDefaults(t *testing.T) {
	trk, repo := newTestTracker(t)

	// Two real records inside the window: today and three days back.
	if _, err := trk.UpdateSteps("u1", 6000); err != nil {
		t.Fatalf("UpdateSteps: %v", err)
	}
	if _, err := trk.AddWater("u1", 750); err != nil {
		t.Fatalf("AddWater: %v", err)
	}
	if _, err := trk.UpdateSleep("u1", 7); err != nil {
		t.Fatalf("UpdateSleep: %v", err)
	}

	earlier := models.NewDailyRecord("u1", fixedDate.AddDate(0, 0, -3).Format(models.DateFormat))
	earlier.Steps = 4000
	earlier.WaterML = 1250
	earlier.SleepHours = 7
	if err := repo.PutDailyRecord(earlier); err != nil {
		t.Fatalf("PutDailyRecord: %v", err)
	}

	sum, err := trk.GetWeeklySummary("u1", fixedDate)
	if err != nil {
		t.Fatalf("GetWeeklySummary: %v", err)
	}

	if len(sum.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(sum.Days))
	}
	if want := fixedDate.AddDate(0, 0, -6).Format(models.DateFormat); sum.StartDate != want {
		t.Errorf("StartDate = %q, want %q", sum.StartDate, want)
	}
	if want := fixedDate.Format(models.DateFormat); sum.EndDate != want {
		t.Errorf("EndDate = %q, want %q", sum.EndDate, want)
	}

	// Dates are consecutive and ascending.
	for i := 1; i < 7; i++ {
		prev, _ := time.Parse(models.DateFormat, sum.Days[i-1].Date)
		cur, _ := time.Parse(models.DateFormat, sum.Days[i].Date)
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("dates not consecutive: %s -> %s", sum.Days[i-1].Date, sum.Days[i].Date)
		}
	}

	if sum.TotalSteps != 10000 {
		t.Errorf("TotalSteps = %d, want 10000", sum.TotalSteps)
	}
	if sum.TotalWater != 2000 {
		t.Errorf("TotalWater = %d, want 2000", sum.TotalWater)
	}
	if want := 14.0 / 7; sum.AvgSleep != want {
		t.Errorf("AvgSleep = %g, want %g", sum.AvgSleep, want)
	}
}

func TestWeeklySummaryDoesNotPersistDefaults(t *testing.T) {
	trk, repo := newTestTracker(t)

	if _, err := trk.GetWeeklySummary("u1", fixedDate); err != nil {
		t.Fatalf("GetWeeklySummary: %v", err)
	}

	records, err := repo.ListDailyRecords("u1", 0)
	if err != nil {
		t.Fatalf("ListDailyRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("summary persisted %d records, want 0", len(records))
	}
}

func TestWeeklySummaryDefaultDaysAreZeroValued(t *testing.T) {
	trk, _ := newTestTracker(t)

	sum, err := trk.GetWeeklySummary("u1", fixedDate)
	if err != nil {
		t.Fatalf("GetWeeklySummary: %v", err)
	}
	for _, day := range sum.Days {
		r := day.Record
		if r.Steps != 0 || r.WaterML != 0 || r.SleepHours != 0 {
			t.Errorf("%s: default record not zero-valued: %+v", day.Date, r)
		}
		// Defaults carry no identity, so they can never be mistaken for
		// persisted records.
		if r.ID != uuid.Nil {
			t.Errorf("%s: default record has an ID", day.Date)
		}
	}
}

func TestWeeklySummaryRatiosWithPlan(t *testing.T) {
	trk, repo := newTestTracker(t)
	storeProfile(t, repo)

	if _, err := trk.CompleteMeal("u1", "breakfast"); err != nil {
		t.Fatalf("CompleteMeal: %v", err)
	}

	sum, err := trk.GetWeeklySummary("u1", fixedDate)
	if err != nil {
		t.Fatalf("GetWeeklySummary: %v", err)
	}

	today := sum.Days[6]
	if today.MealRatio != 0.25 {
		t.Errorf("today MealRatio = %g, want 0.25 (1 of 4 meals)", today.MealRatio)
	}
	// Empty days in the window read as 0, never as an error.
	if sum.Days[0].MealRatio != 0 {
		t.Errorf("empty day MealRatio = %g, want 0", sum.Days[0].MealRatio)
	}
}
