package advisor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
)

// Role preamble sent ahead of every advisor prompt.
const systemPreamble = "You are a knowledgeable financial advisor who specializes in credit analysis " +
	"and personal finance for Indian customers. You provide detailed, data-driven advice with " +
	"calculations and reasoning. Format your responses in bullet points with clear headers."

// Service relays user questions, enriched with the engine's computed
// context, to the injected completion provider.
type Service struct {
	provider TextCompletionProvider
	log      zerolog.Logger
}

// NewService creates an advisor service. The provider may be nil when no
// completion backend is configured; Ask then fails with ErrProvider.
func NewService(provider TextCompletionProvider, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With().Str("service", "advisor").Logger(),
	}
}

// Available reports whether a completion provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Ask builds the analysis context for the profile and forwards it with
// the user's question to the completion provider.
func (s *Service) Ask(
	ctx context.Context,
	profile domain.Profile,
	score *creditscore.Analysis,
	afford *affordability.Result,
	recs []recommendations.Recommendation,
	question string,
) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("%w: no provider configured", ErrProvider)
	}

	prompt := fmt.Sprintf("%s\n\n%s\nUser's question: %q\n\nProvide specific, personalized advice with calculations in ₹ where relevant.",
		systemPreamble, BuildContext(profile, score, afford, recs), question)

	answer, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("Completion provider failed")
		return "", err
	}

	return answer, nil
}
