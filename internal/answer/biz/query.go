package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/answerd/answerd/internal/websearch/types"
	"go.uber.org/zap"
)

// ErrNoCredential is returned when the generative fallback is invoked
// without an API credential configured. It is the only error AskQuestion
// can surface to its caller.
var ErrNoCredential = errors.New("no AI credential configured")

// PlaceholderAnswer is the fixed response of the generative path. The real
// backend is unimplemented; callers rely on this being a usable answer
// whenever a credential exists, so it must stay a success, not an error.
const PlaceholderAnswer = "AI response is not available yet. The generative backend has not been integrated."

// SearchProvider is the slice of the websearch provider the use case needs.
type SearchProvider interface {
	Search(ctx context.Context, query string) (*types.InstantAnswer, error)
}

// QueryUseCase answers free-text questions: web search first, generative
// fallback second. The credential is injected at construction time and
// immutable afterwards, so concurrent calls need no locking.
type QueryUseCase struct {
	search     SearchProvider
	credential string
	logger     *zap.Logger
}

func NewQueryUseCase(search SearchProvider, credential string, logger *zap.Logger) *QueryUseCase {
	return &QueryUseCase{
		search:     search,
		credential: credential,
		logger:     logger,
	}
}

// SearchWeb looks the query up and surfaces the first non-empty field in
// priority order: abstract, then direct answer. An empty payload is a
// successful outcome and yields a templated "no results" answer with the
// original, unencoded query; it is never an error.
func (uc *QueryUseCase) SearchWeb(ctx context.Context, query string) (string, error) {
	result, err := uc.search.Search(ctx, query)
	if err != nil {
		return "", err
	}

	if result.Abstract != "" {
		return result.Abstract, nil
	}
	if result.Answer != "" {
		return result.Answer, nil
	}
	return fmt.Sprintf("No results found for: %s", query), nil
}

// GenerateResponse returns the placeholder answer for any prompt. It fails
// with ErrNoCredential before attempting anything when no credential is
// configured.
func (uc *QueryUseCase) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if uc.credential == "" {
		return "", ErrNoCredential
	}
	return PlaceholderAnswer, nil
}

// AskQuestion runs SearchWeb and returns its answer unmodified on success.
// On ANY search failure it falls back to GenerateResponse with the original
// question; the failure kinds are deliberately not distinguished, so a bad
// query falls back the same way a network outage does.
func (uc *QueryUseCase) AskQuestion(ctx context.Context, question string) (string, error) {
	answer, err := uc.SearchWeb(ctx, question)
	if err == nil {
		return answer, nil
	}

	uc.logger.Warn("web search failed, falling back to generative response",
		zap.String("question", question),
		zap.Error(err),
	)

	return uc.GenerateResponse(ctx, question)
}
