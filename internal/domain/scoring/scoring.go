// Package scoring computes weighted rubric scores and grade tiers.
// Everything here is pure and deterministic: the same ratings and criteria
// always produce the same numbers.
package scoring

import (
	"math"

	"github.com/rawafid/taqyim/internal/domain/catalog"
)

// Scoring constants. Ratings run 1..5 and the combined maximum is fixed at
// 100 points (20 general + 80 department) regardless of catalog contents.
const (
	RatingScale   = 5
	TotalMaxScore = 100
)

// RatingFunc reports the recorded rating for a criterion id. The second
// result is false for unrated criteria, which contribute nothing.
type RatingFunc func(criterionID string) (int, bool)

// Score sums (rating/5)*weight over the rated criteria of a list and
// rounds the result to two decimals, half away from zero.
func Score(rated RatingFunc, criteria []catalog.Criterion) float64 {
	var total float64
	for _, c := range criteria {
		if v, ok := rated(c.ID); ok {
			total += float64(v) / RatingScale * c.Weight
		}
	}
	return round2(total)
}

// CriterionValue is the single-criterion contribution (rating/5)*weight,
// shown per row on the criteria view.
func CriterionValue(value int, weight float64) float64 {
	if value <= 0 {
		return 0
	}
	return float64(value) / RatingScale * weight
}

// Percentage maps the two sub-scores to an integer 0..100 against the
// fixed 100-point maximum. A catalog whose lists do not sum to 20/80 can
// never reach 100% here; that is a catalog-authoring invariant enforced at
// load time, not a concern of this function.
func Percentage(generalScore, departmentScore float64) int {
	return int(math.Round((generalScore + departmentScore) / TotalMaxScore * 100))
}

// Tier is one of the five grade bands. Key resolves display texts through
// the i18n table; Color is the UI token bundled with the band.
type Tier struct {
	Key        string
	Color      string
	MinPercent float64
}

// The five grade tiers, highest first. Bands are right-open with an
// inclusive lower bound: 90 is Excellent, 89.999 is Very Good.
var (
	Excellent  = Tier{Key: "excellent", Color: "#27ae60", MinPercent: 90}
	VeryGood   = Tier{Key: "very_good", Color: "#2ecc71", MinPercent: 80}
	Good       = Tier{Key: "good", Color: "#f39c12", MinPercent: 70}
	Acceptable = Tier{Key: "acceptable", Color: "#e67e22", MinPercent: 60}
	Weak       = Tier{Key: "weak", Color: "#e74c3c", MinPercent: math.Inf(-1)}
)

var tiers = []Tier{Excellent, VeryGood, Good, Acceptable, Weak}

// Grade maps a percentage to its tier.
func Grade(percentage float64) Tier {
	for _, t := range tiers {
		if percentage >= t.MinPercent {
			return t
		}
	}
	return Weak
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
