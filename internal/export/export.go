// ABOUTME: Export serializer: plan plus weekly tracking snapshot.
// ABOUTME: Produces JSON and YAML exchange documents with no internal fields.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/corefit/fitplan/internal/models"
	"github.com/corefit/fitplan/internal/plan"
	"github.com/corefit/fitplan/internal/tracker"
)

// Document is the exchange format: the full generated plan, the profile's
// derived metrics, and a snapshot of the current week's tracking stats.
type Document struct {
	Version    string                `json:"version" yaml:"version"`
	ExportedAt time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool       string                `json:"tool" yaml:"tool"`
	UserID     string                `json:"user_id" yaml:"user_id"`
	Metrics    documentMetrics       `json:"metrics" yaml:"metrics"`
	Plan       *models.Plan          `json:"plan" yaml:"plan"`
	Week       *models.WeeklySummary `json:"week" yaml:"week"`
}

type documentMetrics struct {
	BMI  float64 `json:"bmi" yaml:"bmi"`
	BMR  float64 `json:"bmr" yaml:"bmr"`
	TDEE float64 `json:"tdee" yaml:"tdee"`
}

// Serializer assembles export documents from the plan generator and
// tracker views.
type Serializer struct {
	gen *plan.Generator
	trk *tracker.Tracker
}

// NewSerializer creates a Serializer.
func NewSerializer(gen *plan.Generator, trk *tracker.Tracker) *Serializer {
	return &Serializer{gen: gen, trk: trk}
}

// Build assembles the export document for a user, with the weekly window
// ending at refDate.
func (s *Serializer) Build(userID string, refDate time.Time) (*Document, error) {
	p, err := s.gen.Generate(userID)
	if err != nil {
		return nil, err
	}

	week, err := s.trk.GetWeeklySummary(userID, refDate)
	if err != nil {
		return nil, fmt.Errorf("weekly summary: %w", err)
	}

	prof, err := s.gen.Profile(userID)
	if err != nil {
		return nil, err
	}

	return &Document{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "fitplan",
		UserID:     userID,
		Metrics:    documentMetrics{BMI: prof.BMI, BMR: prof.BMR, TDEE: prof.TDEE},
		Plan:       p,
		Week:       week,
	}, nil
}

// JSON renders the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
