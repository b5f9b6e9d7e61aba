// ABOUTME: Daily record CRUD operations for SQLite storage.
// ABOUTME: Completion maps and food swaps round-trip through JSON columns.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corefit/fitplan/internal/models"
)

const recordColumns = `id, user_id, date, steps, water_ml, sleep_hours,
	meals, exercises, food_swaps, created_at, updated_at`

// GetDailyRecord retrieves the record for a user on a calendar date.
func (d *DB) GetDailyRecord(userID, date string) (*models.DailyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records WHERE user_id = ? AND date = ?`
	r, err := scanRecord(d.db.QueryRow(query, userID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("daily record", userID+"/"+date)
		}
		return nil, fmt.Errorf("get daily record: %w", err)
	}
	return r, nil
}

// PutDailyRecord inserts or replaces a record, keyed by (user_id, date).
func (d *DB) PutDailyRecord(r *models.DailyRecord) error {
	meals, err := json.Marshal(r.Meals)
	if err != nil {
		return fmt.Errorf("marshal meals: %w", err)
	}
	exercises, err := json.Marshal(r.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}
	swaps, err := json.Marshal(r.FoodSwaps)
	if err != nil {
		return fmt.Errorf("marshal food swaps: %w", err)
	}

	query := `
		INSERT INTO daily_records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			steps = excluded.steps,
			water_ml = excluded.water_ml,
			sleep_hours = excluded.sleep_hours,
			meals = excluded.meals,
			exercises = excluded.exercises,
			food_swaps = excluded.food_swaps,
			updated_at = excluded.updated_at
	`
	_, err = d.db.Exec(query,
		r.ID.String(),
		r.UserID,
		r.Date,
		r.Steps,
		r.WaterML,
		r.SleepHours,
		string(meals),
		string(exercises),
		string(swaps),
		r.CreatedAt.Format(time.RFC3339),
		r.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put daily record: %w", err)
	}
	return nil
}

// ListDailyRecords retrieves records for a user, most recent date first.
func (d *DB) ListDailyRecords(userID string, limit int) ([]*models.DailyRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records WHERE user_id = ? ORDER BY date DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	defer rows.Close()

	var records []*models.DailyRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list daily records: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRecord(row rowScanner) (*models.DailyRecord, error) {
	var r models.DailyRecord
	var idStr, meals, exercises, swaps, createdAt, updatedAt string

	err := row.Scan(&idStr, &r.UserID, &r.Date, &r.Steps, &r.WaterML,
		&r.SleepHours, &meals, &exercises, &swaps, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	r.ID, _ = uuid.Parse(idStr)
	if err := json.Unmarshal([]byte(meals), &r.Meals); err != nil {
		return nil, fmt.Errorf("unmarshal meals: %w", err)
	}
	if err := json.Unmarshal([]byte(exercises), &r.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	if err := json.Unmarshal([]byte(swaps), &r.FoodSwaps); err != nil {
		return nil, fmt.Errorf("unmarshal food swaps: %w", err)
	}
	r.EnsureMaps()
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &r, nil
}
