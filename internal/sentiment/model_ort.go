//go:build ORT

package sentiment

import (
	"errors"
	"fmt"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/intentai/internal/models"
)

// ModelScorer runs an exported sequence-classification model through onnxruntime.
// Labels come from the model's id2label mapping.
type ModelScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func newModelScorer(modelPath string) (Scorer, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "intentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to initialize intent pipeline: %w", err)
	}

	return &ModelScorer{session: session, pipeline: pipeline}, nil
}

func (m *ModelScorer) Score(text string) (models.PredictResponse, error) {
	output, err := m.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("pipeline failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 {
		return nil, errors.New("pipeline returned no classification")
	}

	scores := make(models.PredictResponse, len(output.ClassificationOutputs[0]))
	for _, class := range output.ClassificationOutputs[0] {
		scores[class.Label] = round3(float64(class.Score))
	}
	return scores, nil
}

func (m *ModelScorer) Close() error {
	return m.session.Destroy()
}
