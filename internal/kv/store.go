// ABOUTME: Badger-backed key-value implementation of storage.Repository.
// ABOUTME: Profiles and daily records are JSON values under typed key prefixes.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/corefit/fitplan/internal/models"
)

const (
	profilePrefix = "profile:"
	recordPrefix  = "record:"
)

// Store is a Badger-backed Repository. Writes go through single-key
// transactions, so concurrent mutations on the same record are serialized
// by the store itself.
type Store struct {
	db *badger.DB
}

// Open opens or creates a Badger store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying Badger database.
func (s *Store) Close() error {
	return s.db.Close()
}

func profileKey(userID string) []byte {
	return []byte(profilePrefix + userID)
}

func recordKey(userID, date string) []byte {
	return []byte(recordPrefix + userID + ":" + date)
}

// GetProfile retrieves a profile by user ID.
func (s *Store) GetProfile(userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.get(profileKey(userID), &p)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, models.NewNotFoundError("profile", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// PutProfile stores a profile.
func (s *Store) PutProfile(p *models.UserProfile) error {
	if err := s.set(profileKey(p.UserID), p); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a profile by user ID.
func (s *Store) DeleteProfile(userID string) error {
	key := profileKey(userID)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.NewNotFoundError("profile", userID)
	}
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// ListProfiles retrieves all stored profiles ordered by user ID.
func (s *Store) ListProfiles() ([]*models.UserProfile, error) {
	var profiles []*models.UserProfile
	err := s.scanPrefix([]byte(profilePrefix), func(val []byte) error {
		var p models.UserProfile
		if err := json.Unmarshal(val, &p); err != nil {
			return err
		}
		profiles = append(profiles, &p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].UserID < profiles[j].UserID
	})
	return profiles, nil
}

// GetDailyRecord retrieves the record for a user on a calendar date.
func (s *Store) GetDailyRecord(userID, date string) (*models.DailyRecord, error) {
	var r models.DailyRecord
	err := s.get(recordKey(userID, date), &r)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, models.NewNotFoundError("daily record", userID+"/"+date)
	}
	if err != nil {
		return nil, fmt.Errorf("get daily record: %w", err)
	}
	r.EnsureMaps()
	return &r, nil
}

// PutDailyRecord stores a record under its (user, date) key.
func (s *Store) PutDailyRecord(r *models.DailyRecord) error {
	if err := s.set(recordKey(r.UserID, r.Date), r); err != nil {
		return fmt.Errorf("put daily record: %w", err)
	}
	return nil
}

// ListDailyRecords retrieves records for a user, most recent date first.
func (s *Store) ListDailyRecords(userID string, limit int) ([]*models.DailyRecord, error) {
	var records []*models.DailyRecord
	err := s.scanPrefix([]byte(recordPrefix+userID+":"), func(val []byte) error {
		var r models.DailyRecord
		if err := json.Unmarshal(val, &r); err != nil {
			return err
		}
		r.EnsureMaps()
		records = append(records, &r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// get reads and unmarshals a single key.
func (s *Store) get(key []byte, out any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
}

// set marshals and writes a single key.
func (s *Store) set(key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// scanPrefix iterates all values under a key prefix.
func (s *Store) scanPrefix(prefix []byte, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				return fn(append([]byte(nil), val...))
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
