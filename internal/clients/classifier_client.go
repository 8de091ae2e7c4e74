package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/intentai/internal/models"
)

// ClassifierClient talks to the local intent-classification service.
type ClassifierClient struct {
	Client    *http.Client
	predict   string
	healthURL string
}

// NewClassifierClient uses the default transport with no client timeout;
// callers bound requests through the context.
func NewClassifierClient(predictURL, healthURL string) *ClassifierClient {
	slog.Info("[ClassifierClient] Initializing Client",
		slog.String("endpoint", predictURL))
	return &ClassifierClient{
		Client:    &http.Client{},
		predict:   predictURL,
		healthURL: healthURL,
	}
}

// Classify posts {text} and returns the service's JSON body untouched.
func (c *ClassifierClient) Classify(ctx context.Context, text string) (json.RawMessage, error) {
	start := time.Now()

	body, err := c.postJSON(ctx, c.predict, models.PredictRequest{Text: text})
	if err != nil {
		slog.Debug("[ClassifierClient] Classification request failed",
			slog.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	slog.Debug("[ClassifierClient] Classification request successful",
		slog.Duration("elapsed", time.Since(start)))
	return json.RawMessage(body), nil
}

// Scores decodes the classifier body as label probabilities.
func (c *ClassifierClient) Scores(ctx context.Context, text string) (models.PredictResponse, error) {
	raw, err := c.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	var scores models.PredictResponse
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("classifier response is not a label map: %w", err)
	}
	return scores, nil
}

// HealthCheck reports whether the health endpoint answers 2xx.
func (c *ClassifierClient) HealthCheck(ctx context.Context) bool {
	if c.healthURL == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Debug("[ClassifierClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *ClassifierClient) postJSON(ctx context.Context, endpoint string, input interface{}) ([]byte, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MAX_RESPONSE_BYTES))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Debug("[ClassifierClient] Non-success status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return nil, fmt.Errorf("classifier returned status: %d", resp.StatusCode)
	}

	if !json.Valid(respBody) {
		slog.Debug("[ClassifierClient] Response is not JSON",
			slog.String("endpoint", endpoint),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, fmt.Errorf("classifier returned invalid JSON")
	}

	return respBody, nil
}

func getPreview(respBody []byte) slog.Attr {
	cut := len(respBody)
	if cut > PREVIEW_BYTES {
		cut = PREVIEW_BYTES
		for cut > 0 && !utf8.RuneStart(respBody[cut]) {
			cut--
		}
	}
	return slog.String("raw_response", string(respBody[:cut]))
}
