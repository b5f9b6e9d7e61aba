// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for profiles and daily tracking records.
package storage

// initSchema creates or updates the database schema. Completion maps and
// food swaps are stored as JSON columns; the (user_id, date) pair is unique
// so exactly one record exists per user per calendar date.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		name TEXT,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL,
		height_cm REAL NOT NULL,
		weight_kg REAL NOT NULL,
		fitness_goal TEXT NOT NULL,
		activity_level TEXT NOT NULL,
		sleep_target_hours REAL NOT NULL,
		bmi REAL NOT NULL,
		bmr REAL NOT NULL,
		tdee REAL NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_records (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		steps INTEGER NOT NULL DEFAULT 0,
		water_ml INTEGER NOT NULL DEFAULT 0,
		sleep_hours REAL NOT NULL DEFAULT 0,
		meals TEXT NOT NULL DEFAULT '{}',
		exercises TEXT NOT NULL DEFAULT '{}',
		food_swaps TEXT NOT NULL DEFAULT '{}',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE(user_id, date)
	);

	CREATE INDEX IF NOT EXISTS idx_records_user ON daily_records(user_id);
	CREATE INDEX IF NOT EXISTS idx_records_user_date ON daily_records(user_id, date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
