//go:build !ORT

package sentiment

func newModelScorer(modelPath string) (Scorer, error) {
	return nil, ErrModelUnsupported
}
