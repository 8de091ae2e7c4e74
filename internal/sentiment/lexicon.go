package sentiment

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/jonreiter/govader"
	"github.com/spacesedan/intentai/internal/models"
)

// cueWeight controls how quickly cue hits saturate a label towards 1.
const cueWeight = 0.8

// LexiconScorer scores intent labels without a trained model: VADER intensity
// for emotional load and cue dictionaries for manipulation and polarization.
type LexiconScorer struct {
	analyzer     *govader.SentimentIntensityAnalyzer
	manipulative *CueMatcher
	polarizing   *CueMatcher
}

func NewLexiconScorer() (*LexiconScorer, error) {
	manipulative, err := NewCueMatcher(manipulativeCues)
	if err != nil {
		return nil, fmt.Errorf("failed to build manipulative cues: %w", err)
	}
	polarizing, err := NewCueMatcher(polarizingCues)
	if err != nil {
		return nil, fmt.Errorf("failed to build polarizing cues: %w", err)
	}

	return &LexiconScorer{
		analyzer:     govader.NewSentimentIntensityAnalyzer(),
		manipulative: manipulative,
		polarizing:   polarizing,
	}, nil
}

func (l *LexiconScorer) Score(text string) (models.PredictResponse, error) {
	plainText := ConvertMarkdownToText(text)
	if plainText == "" {
		plainText = strings.TrimSpace(text)
	}

	sentiment := l.analyzer.PolarityScores(plainText)
	emotional := clamp(0.6*math.Abs(sentiment.Compound) + 0.4*(1-sentiment.Neutral))
	if plainText == "" {
		emotional = 0
	}

	var manipulative, polarizing float64
	if isEnglish(plainText) {
		manipulative = saturate(l.manipulative.Count(plainText))
		polarizing = saturate(l.polarizing.Count(plainText))
	}

	informative := clamp((1 - emotional) * (1 - math.Max(manipulative, polarizing)))

	return models.PredictResponse{
		models.LabelManipulative:      round3(manipulative),
		models.LabelPolarizing:        round3(polarizing),
		models.LabelEmotionallyLoaded: round3(emotional),
		models.LabelInformative:       round3(informative),
	}, nil
}

func (l *LexiconScorer) Close() error {
	return nil
}

// isEnglish only rejects text the detector is confident about; the cue
// dictionaries are English.
func isEnglish(text string) bool {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() || info.Lang == whatlanggo.Eng {
		return true
	}
	slog.Debug("[LexiconScorer] Skipping cue matching for non-English text",
		slog.String("lang", info.Lang.Iso6391()))
	return false
}

func saturate(hits int) float64 {
	return 1 - math.Exp(-cueWeight*float64(hits))
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
