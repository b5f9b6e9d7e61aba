// ABOUTME: Profile service: validating factory and update flow over storage.
// ABOUTME: Recomputes derived metrics whenever a base field changes.
package profile

import (
	"time"

	"github.com/corefit/fitplan/internal/metrics"
	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/storage"
)

// Params is the caller-supplied profile input. Derived metrics are
// deliberately absent; they are always computed here.
type Params struct {
	UserID        string
	Name          string
	Age           int
	Gender        models.Gender
	HeightCm      float64
	WeightKg      float64
	Goal          models.Goal
	ActivityLevel models.ActivityLevel
	SleepTarget   float64
}

// Updates describes a partial profile update. Nil fields are left
// untouched.
type Updates struct {
	Name          *string
	Age           *int
	Gender        *models.Gender
	HeightCm      *float64
	WeightKg      *float64
	Goal          *models.Goal
	ActivityLevel *models.ActivityLevel
	SleepTarget   *float64
}

// Service owns profile reads and writes. It is the single construction
// path for profiles: invalid input fails before anything is stored, and
// stored profiles always carry metrics consistent with their base fields.
type Service struct {
	repo storage.Repository
}

// NewService creates a profile Service over a repository.
func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves a stored profile. Missing profiles surface as
// models.NotFoundError.
func (s *Service) Get(userID string) (*models.UserProfile, error) {
	return s.repo.GetProfile(userID)
}

// List retrieves all stored profiles.
func (s *Service) List() ([]*models.UserProfile, error) {
	return s.repo.ListProfiles()
}

// Delete removes a stored profile.
func (s *Service) Delete(userID string) error {
	return s.repo.DeleteProfile(userID)
}

// Create validates params, computes derived metrics, and stores the
// resulting profile. An existing profile for the same user is replaced.
func (s *Service) Create(params Params) (*models.UserProfile, error) {
	if params.SleepTarget == 0 {
		params.SleepTarget = models.DefaultSleepTarget
	}
	now := time.Now()
	p := &models.UserProfile{
		UserID:        params.UserID,
		Name:          params.Name,
		Age:           params.Age,
		Gender:        params.Gender,
		HeightCm:      params.HeightCm,
		WeightKg:      params.WeightKg,
		Goal:          params.Goal,
		ActivityLevel: params.ActivityLevel,
		SleepTarget:   params.SleepTarget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := metrics.Refresh(p); err != nil {
		return nil, err
	}
	if err := s.repo.PutProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update to a stored profile. Validation happens
// on the merged result before anything is written, and derived metrics are
// recomputed when any field feeding them changed. The stored profile is
// untouched on error.
func (s *Service) Update(userID string, u Updates) (*models.UserProfile, error) {
	stored, err := s.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	p := *stored
	recompute := false
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
		recompute = true
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
		recompute = true
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
		recompute = true
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
		recompute = true
	}
	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
		recompute = true
	}
	if u.SleepTarget != nil {
		p.SleepTarget = *u.SleepTarget
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if recompute {
		if err := metrics.Refresh(&p); err != nil {
			return nil, err
		}
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.PutProfile(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
