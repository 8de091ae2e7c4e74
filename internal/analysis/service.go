package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spacesedan/intentai/internal/models"
)

const localField = "local"

type Service struct {
	classifier Classifier
	completer  Completer
	validator  *validator.Validate
	timeout    time.Duration
}

type Option func(*Service)

// WithUpstreamTimeout bounds both upstream calls of one analysis. Zero means no bound.
func WithUpstreamTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		s.timeout = timeout
	}
}

func NewService(classifier Classifier, completer Completer, opts ...Option) *Service {
	s := &Service{
		classifier: classifier,
		completer:  completer,
		validator:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze classifies the text, asks the completion service to explain it with the
// classifier output as context, and merges both results.
func (s *Service) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &Error{Kind: KindValidation, Err: ErrTextRequired}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()

	// 1. Local classifier
	local, err := s.classifier.Classify(ctx, req.Text)
	if err != nil {
		return nil, &Error{Kind: KindClassifier, Err: err}
	}

	prompt, err := BuildUserPrompt(req.Text, local)
	if err != nil {
		return nil, &Error{Kind: KindClassifier, Err: err}
	}

	// 2. Completion service
	content, err := s.completer.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, &Error{Kind: KindCompletion, Err: err}
	}

	completion, err := ParseCompletion(content)
	if err != nil {
		return nil, &Error{Kind: KindParse, Err: err}
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		if typed, err := completion.Typed(); err == nil {
			slog.DebugContext(ctx, "[Analyzer] Analysis complete",
				slog.Int("labels", len(typed.Scores)),
				slog.Int("highlights", len(typed.Highlights)),
				slog.Duration("elapsed", time.Since(start)))
		}
	}

	merged := lo.Assign(completion.Fields, map[string]json.RawMessage{localField: local})
	return models.AnalysisResponse(merged), nil
}
