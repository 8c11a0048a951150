// Package analysis orchestrates a full engine run: credit score
// decomposition, optional affordability assessment, and card
// recommendations, produced together from one profile document.
package analysis

import (
	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
)

// Request is one analysis invocation: the profile, an optional proposed
// loan, and optional benefit preferences.
type Request struct {
	Profile     domain.Profile          `json:"profile"`
	Proposal    *affordability.Proposal `json:"proposal,omitempty"`
	Preferences []string                `json:"preferences,omitempty"`
}

// Report bundles the three engine outputs for one profile. It is the
// contract consumed by the presentation layer and by the advisor's
// context builder. Affordability is nil when no loan was proposed.
type Report struct {
	Profile         domain.Profile                   `json:"profile"`
	CreditScore     creditscore.Analysis             `json:"credit_score"`
	Affordability   *affordability.Result            `json:"affordability,omitempty"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

// Service wires the three engines behind a single entry point.
type Service struct {
	analyzer    *creditscore.Analyzer
	affordSvc   *affordability.Service
	recommender *recommendations.Service
	catalog     *recommendations.CatalogRepository
	log         zerolog.Logger
}

// NewService creates the orchestrating analysis service.
func NewService(
	analyzer *creditscore.Analyzer,
	affordSvc *affordability.Service,
	recommender *recommendations.Service,
	catalog *recommendations.CatalogRepository,
	log zerolog.Logger,
) *Service {
	return &Service{
		analyzer:    analyzer,
		affordSvc:   affordSvc,
		recommender: recommender,
		catalog:     catalog,
		log:         log.With().Str("service", "analysis").Logger(),
	}
}

// Run validates the profile and produces the full report. Either the
// whole report is returned or an error; there are no partial results.
func (s *Service) Run(req Request) (*Report, error) {
	req.Profile.Normalize()
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Profile:     req.Profile,
		CreditScore: s.analyzer.Analyze(req.Profile),
	}

	if req.Proposal != nil {
		result, err := s.affordSvc.Assess(req.Profile, *req.Proposal)
		if err != nil {
			return nil, err
		}
		report.Affordability = result
	}

	catalog, err := s.catalog.All()
	if err != nil {
		return nil, err
	}
	report.Recommendations = s.recommender.Recommend(req.Profile, catalog, req.Preferences)

	s.log.Debug().
		Str("band", report.CreditScore.Band).
		Bool("with_proposal", req.Proposal != nil).
		Int("recommendations", len(report.Recommendations)).
		Msg("Analysis completed")

	return report, nil
}
