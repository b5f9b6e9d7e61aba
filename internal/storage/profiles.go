// ABOUTME: Profile CRUD operations for SQLite storage.
// ABOUTME: Implements Repository profile methods.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/corefit/fitplan/internal/models"
)

const profileColumns = `user_id, name, age, gender, height_cm, weight_kg,
	fitness_goal, activity_level, sleep_target_hours, bmi, bmr, tdee,
	created_at, updated_at`

// GetProfile retrieves a profile by user ID.
func (d *DB) GetProfile(userID string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = ?`
	p, err := scanProfile(d.db.QueryRow(query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("profile", userID)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// PutProfile inserts or replaces a profile.
func (d *DB) PutProfile(p *models.UserProfile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			fitness_goal = excluded.fitness_goal,
			activity_level = excluded.activity_level,
			sleep_target_hours = excluded.sleep_target_hours,
			bmi = excluded.bmi,
			bmr = excluded.bmr,
			tdee = excluded.tdee,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		p.UserID,
		p.Name,
		p.Age,
		string(p.Gender),
		p.HeightCm,
		p.WeightKg,
		string(p.Goal),
		string(p.ActivityLevel),
		p.SleepTarget,
		p.BMI,
		p.BMR,
		p.TDEE,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile by user ID.
func (d *DB) DeleteProfile(userID string) error {
	result, err := d.db.Exec("DELETE FROM profiles WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if affected == 0 {
		return models.NewNotFoundError("profile", userID)
	}
	return nil
}

// ListProfiles retrieves all stored profiles ordered by user ID.
func (d *DB) ListProfiles() ([]*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY user_id`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("list profiles: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.UserProfile, error) {
	var p models.UserProfile
	var gender, goal, activity, createdAt, updatedAt string
	var name sql.NullString

	err := row.Scan(&p.UserID, &name, &p.Age, &gender, &p.HeightCm, &p.WeightKg,
		&goal, &activity, &p.SleepTarget, &p.BMI, &p.BMR, &p.TDEE,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if name.Valid {
		p.Name = name.String
	}
	p.Gender = models.Gender(gender)
	p.Goal = models.Goal(goal)
	p.ActivityLevel = models.ActivityLevel(activity)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}
