// ABOUTME: Pure BMI/BMR/TDEE calculator over profile base fields.
// ABOUTME: BMR uses Mifflin-St Jeor; TDEE scales BMR by a fixed activity factor.
package metrics

import (
	"github.com/corefit/fitplan/internal/models"
)

// Metrics holds the derived values for a profile.
type Metrics struct {
	BMI  float64 `json:"bmi"`
	BMR  float64 `json:"bmr"`
	TDEE float64 `json:"tdee"`
}

// ActivityFactors maps activity levels to their TDEE multipliers.
var ActivityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Compute derives BMI, BMR, and TDEE from profile base fields. It fails
// with a ValidationError before computing if height, weight, or age is
// non-positive, so no arithmetic step can fail. It has no side effects and
// is safe to call repeatedly and concurrently.
func Compute(p *models.UserProfile) (Metrics, error) {
	if p.HeightCm <= 0 {
		return Metrics{}, models.NewValidationError("height_cm", "must be positive")
	}
	if p.WeightKg <= 0 {
		return Metrics{}, models.NewValidationError("weight_kg", "must be positive")
	}
	if p.Age <= 0 {
		return Metrics{}, models.NewValidationError("age", "must be positive")
	}
	factor, ok := ActivityFactors[p.ActivityLevel]
	if !ok {
		return Metrics{}, models.NewValidationError("activity_level", "unknown value")
	}

	heightM := p.HeightCm / 100
	bmi := p.WeightKg / (heightM * heightM)
	bmr := basalRate(p.Gender, p.WeightKg, p.HeightCm, p.Age)

	return Metrics{
		BMI:  bmi,
		BMR:  bmr,
		TDEE: bmr * factor,
	}, nil
}

// basalRate is the Mifflin-St Jeor equation. For gender "other" the policy
// is the average of the male and female branches, which differ only by a
// constant (+5 vs -161).
func basalRate(g models.Gender, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch g {
	case models.GenderMale:
		return base + 5
	case models.GenderFemale:
		return base - 161
	default:
		return base + (5-161)/2.0
	}
}

// Refresh recomputes the derived fields on a profile in place. Call it
// whenever height, weight, age, gender, or activity level changes so the
// stored derived fields never go stale.
func Refresh(p *models.UserProfile) error {
	m, err := Compute(p)
	if err != nil {
		return err
	}
	p.BMI = m.BMI
	p.BMR = m.BMR
	p.TDEE = m.TDEE
	return nil
}
