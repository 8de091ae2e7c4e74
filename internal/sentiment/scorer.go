package sentiment

import (
	"errors"
	"log/slog"

	"github.com/spacesedan/intentai/internal/models"
)

var ErrModelUnsupported = errors.New("binary built without ORT support; rebuild with -tags ORT")

type Scorer interface {
	Score(text string) (models.PredictResponse, error)
	Close() error
}

// NewScorer uses the transformer model at modelPath when it can be loaded and
// falls back to the lexicon scorer otherwise.
func NewScorer(modelPath string) (Scorer, error) {
	if modelPath != "" {
		scorer, err := newModelScorer(modelPath)
		if err == nil {
			slog.Info("[Scorer] Using transformer model", slog.String("path", modelPath))
			return scorer, nil
		}
		slog.Warn("[Scorer] Failed to load model, falling back to lexicon scorer",
			slog.String("path", modelPath),
			slog.String("error", err.Error()))
	}

	lexicon, err := NewLexiconScorer()
	if err != nil {
		return nil, err
	}
	slog.Info("[Scorer] Using lexicon scorer")
	return lexicon, nil
}
