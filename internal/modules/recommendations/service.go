package recommendations

import (
	"sort"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Service ranks catalog entries for a profile. Pure computation: the
// catalog is treated as read-only and identical input always yields an
// identical ranking.
type Service struct {
	weights ScoringWeights
}

// NewService creates a recommendation service with the given weights.
func NewService(weights ScoringWeights) *Service {
	return &Service{weights: weights}
}

// Recommend filters the catalog by eligibility, scores the eligible
// entries, and returns the full recommendation sequence: eligible entries
// first in rank order, then ineligible entries with Rank 0.
//
// Eligibility: profile score >= entry minimum AND profile income >= entry
// minimum. Ineligible entries are never silently dropped.
//
// Scoring, over the eligible set only:
//
//	score = w1·preferenceOverlap + w2·rewardNorm + w3·(1 − feeNorm) + w4·headroom
//
// Reward rate and annual fee are min-max normalized across the current
// eligible set, not globally, since eligibility varies per profile.
// Ties break by lower annual fee, then issuer name ascending, giving a
// deterministic total order.
func (s *Service) Recommend(profile domain.Profile, catalog []CardCatalogEntry, preferences []string) []Recommendation {
	eligible := make([]CardCatalogEntry, 0, len(catalog))
	ineligible := make([]CardCatalogEntry, 0)

	for _, entry := range catalog {
		if profile.CreditScore >= entry.MinCreditScore && profile.Income >= entry.MinIncome {
			eligible = append(eligible, entry)
		} else {
			ineligible = append(ineligible, entry)
		}
	}

	rewardLo, rewardHi := bounds(eligible, func(e CardCatalogEntry) float64 { return e.RewardRate })
	feeLo, feeHi := bounds(eligible, func(e CardCatalogEntry) float64 { return e.AnnualFee })

	ranked := make([]Recommendation, 0, len(eligible))
	for _, entry := range eligible {
		score := s.weights.PreferenceOverlap*preferenceOverlap(preferences, entry) +
			s.weights.RewardRate*normalize(entry.RewardRate, rewardLo, rewardHi) +
			s.weights.AnnualFee*(1-normalize(entry.AnnualFee, feeLo, feeHi)) +
			s.weights.ScoreHeadroom*scoreHeadroom(profile.CreditScore, entry.MinCreditScore)

		ranked = append(ranked, Recommendation{Entry: entry, Score: score, Eligible: true})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Entry.AnnualFee != ranked[j].Entry.AnnualFee {
			return ranked[i].Entry.AnnualFee < ranked[j].Entry.AnnualFee
		}
		return ranked[i].Entry.Issuer < ranked[j].Entry.Issuer
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	for _, entry := range ineligible {
		ranked = append(ranked, Recommendation{Entry: entry, Eligible: false})
	}

	return ranked
}

// preferenceOverlap is the fraction of preferred benefit categories the
// entry covers. An empty preference set is neutral (0.5) rather than 0,
// so users with no stated preference do not zero out the dominant weight.
func preferenceOverlap(preferences []string, entry CardCatalogEntry) float64 {
	if len(preferences) == 0 {
		return 0.5
	}

	tags := make(map[string]struct{}, len(entry.BenefitTags)+1)
	for _, tag := range entry.BenefitTags {
		tags[tag] = struct{}{}
	}
	tags[entry.Category] = struct{}{}

	matched := 0
	for _, pref := range preferences {
		if _, ok := tags[pref]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(preferences))
}

// scoreHeadroom rewards comfortable eligibility margin over marginal
// eligibility: (score − min) / (900 − min).
func scoreHeadroom(creditScore, minScore int) float64 {
	if minScore >= domain.MaxCreditScore {
		return 1
	}
	return float64(creditScore-minScore) / float64(domain.MaxCreditScore-minScore)
}

// bounds returns the min and max of the extracted values over the set.
func bounds(entries []CardCatalogEntry, value func(CardCatalogEntry) float64) (float64, float64) {
	if len(entries) == 0 {
		return 0, 0
	}
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = value(e)
	}
	return formulas.Min(values), formulas.Max(values)
}

// normalize min-max normalizes a value over [lo, hi]. A degenerate range
// (all candidates equal) is neutral 0.5 so the component neither rewards
// nor penalizes anyone.
func normalize(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (value - lo) / (hi - lo)
}
