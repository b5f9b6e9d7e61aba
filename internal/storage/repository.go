// ABOUTME: Repository interface for profile and daily-record storage.
// ABOUTME: Defines the contract shared by the SQLite and Badger backends.
package storage

import (
	"github.com/corefit/fitplan/internal/models"
)

// Repository defines the storage interface the core consumes. Absent
// profiles and records surface as models.NotFoundError so callers can
// branch on "not yet created" without string matching.
type Repository interface {
	// Profile operations
	GetProfile(userID string) (*models.UserProfile, error)
	PutProfile(p *models.UserProfile) error
	DeleteProfile(userID string) error
	ListProfiles() ([]*models.UserProfile, error)

	// Daily record operations. Date uses models.DateFormat.
	GetDailyRecord(userID, date string) (*models.DailyRecord, error)
	PutDailyRecord(r *models.DailyRecord) error
	ListDailyRecords(userID string, limit int) ([]*models.DailyRecord, error)

	// Lifecycle
	Close() error
}
