// ABOUTME: Advice boundary: explicit result type for external advice text.
// ABOUTME: Provider failures resolve to a neutral placeholder, never an error.
package advice

import (
	"context"
	"errors"

	"github.com/corefit/fitplan/internal/models"
)

// Placeholder is shown when no provider is configured or the provider
// fails. Core plan generation never depends on advice succeeding.
const Placeholder = "AI-powered advice is currently unavailable. Please try again later."

// ErrUnavailable signals that no advice can be produced right now.
var ErrUnavailable = errors.New("advice unavailable")

// Advice is a piece of generated advice text and where it came from.
type Advice struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Provider produces personalized advice for a profile and its plan.
// Implementations live outside the core; the plan generator never calls
// one.
type Provider interface {
	Advise(ctx context.Context, profile *models.UserProfile, plan *models.Plan) (Advice, error)
}

// Resolve turns a provider call into a value the presentation layer can
// always render: any failure (including a nil provider) yields the
// placeholder instead of propagating into the plan flow.
func Resolve(ctx context.Context, p Provider, profile *models.UserProfile, plan *models.Plan) Advice {
	if p == nil {
		return Advice{Text: Placeholder, Source: "fallback"}
	}
	a, err := p.Advise(ctx, profile, plan)
	if err != nil || a.Text == "" {
		return Advice{Text: Placeholder, Source: "fallback"}
	}
	return a
}
