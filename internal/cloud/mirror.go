// ABOUTME: Best-effort cloud mirroring of profiles and daily records.
// ABOUTME: Mirror failures are warnings at the call site, never errors.
package cloud

import (
	"encoding/json"
	"fmt"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/storage"
)

// Mirror pushes profile and record writes to Charm Cloud after they have
// been committed locally. It sits outside the core's critical path: the
// caller treats any returned error as a warning.
type Mirror struct {
	client *Client
}

// NewMirror initializes the cloud client and wraps it in a Mirror.
func NewMirror() (*Mirror, error) {
	c, err := InitClient()
	if err != nil {
		return nil, fmt.Errorf("init cloud client: %w", err)
	}
	return &Mirror{client: c}, nil
}

// Close releases the underlying client.
func (m *Mirror) Close() error {
	return m.client.Close()
}

// PutProfile mirrors a profile.
func (m *Mirror) PutProfile(p *models.UserProfile) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return m.client.set(ProfilePrefix+p.UserID, data)
}

// PutRecord mirrors a daily record.
func (m *Mirror) PutRecord(r *models.DailyRecord) error {
	data, err := marshalJSON(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return m.client.set(RecordPrefix+r.UserID+":"+r.Date, data)
}

// Pull copies all mirrored profiles and records for a user into the local
// repository. Used to seed a fresh device from the cloud.
func (m *Mirror) Pull(repo storage.Repository, userID string) (int, error) {
	if err := m.client.Sync(); err != nil {
		return 0, fmt.Errorf("cloud sync: %w", err)
	}

	count := 0
	if data, err := m.client.get(ProfilePrefix + userID); err == nil {
		var p models.UserProfile
		if err := json.Unmarshal(data, &p); err == nil {
			if err := repo.PutProfile(&p); err != nil {
				return count, err
			}
			count++
		}
	}

	values, err := m.client.listByPrefix(RecordPrefix + userID + ":")
	if err != nil {
		return count, err
	}
	for _, data := range values {
		var r models.DailyRecord
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		r.EnsureMaps()
		if err := repo.PutDailyRecord(&r); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
