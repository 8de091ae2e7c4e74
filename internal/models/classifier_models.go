package models

type PredictRequest struct {
	Text string `json:"text" validate:"required"`
}

// PredictResponse maps each intent label to a probability in [0,1].
type PredictResponse map[string]float64

const (
	LabelManipulative      = "manipulative"
	LabelPolarizing        = "polarizing"
	LabelEmotionallyLoaded = "emotionally_loaded"
	LabelInformative       = "informative"
)

var IntentLabels = []string{
	LabelManipulative,
	LabelPolarizing,
	LabelEmotionallyLoaded,
	LabelInformative,
}
