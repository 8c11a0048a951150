// Package recommendations filters and ranks a catalog of credit card
// products against a profile and the user's stated benefit preferences.
package recommendations

// CardCatalogEntry is one product in the static card catalog. Catalog
// entries are reference data: read-only, shared, never mutated by an
// analysis run.
type CardCatalogEntry struct {
	Name           string   `json:"name"`
	Issuer         string   `json:"issuer"`
	Category       string   `json:"category"` // travel, fuel, shopping, cashback, ...
	MinCreditScore int      `json:"min_credit_score"`
	MinIncome      float64  `json:"min_income"` // Minimum monthly income
	AnnualFee      float64  `json:"annual_fee"`
	BenefitTags    []string `json:"benefit_tags"`
	RewardRate     float64  `json:"reward_rate"` // Headline reward percentage
}

// Recommendation is one catalog entry with its suitability verdict.
// Ineligible entries are retained with Eligible=false and Rank 0 so the
// caller can show why a card was not recommended.
type Recommendation struct {
	Entry    CardCatalogEntry `json:"entry"`
	Score    float64          `json:"score"`
	Rank     int              `json:"rank"`
	Eligible bool             `json:"eligible"`
}

// ScoringWeights are the fixed component weights of the suitability
// score. They must sum to 1. Constructed once by the caller and passed
// into the engine; never global state.
type ScoringWeights struct {
	PreferenceOverlap float64 `json:"preference_overlap"`
	RewardRate        float64 `json:"reward_rate"`
	AnnualFee         float64 `json:"annual_fee"`
	ScoreHeadroom     float64 `json:"score_headroom"`
}

// DefaultScoringWeights returns the standard suitability weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		PreferenceOverlap: 0.40,
		RewardRate:        0.25,
		AnnualFee:         0.20,
		ScoreHeadroom:     0.15,
	}
}
