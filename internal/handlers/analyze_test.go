package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spacesedan/intentai/internal/analysis"
	"github.com/spacesedan/intentai/internal/handlers"
	"github.com/spacesedan/intentai/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticStatus string

func (s staticStatus) Status() string { return string(s) }

func newRouter(t *testing.T) (http.Handler, *mocks.MockClassifier, *mocks.MockCompleter) {
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockClassifier(ctrl)
	completer := mocks.NewMockCompleter(ctrl)

	service := analysis.NewService(classifier, completer)
	router := handlers.NewAPIRouter(
		handlers.NewAnalyzeHandler(service),
		handlers.NewHealthHandler(staticStatus("healthy")),
	)
	return router, classifier, completer
}

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestAnalyze_Success(t *testing.T) {
	req := require.New(t)
	router, classifier, completer := newRouter(t)

	gomock.InOrder(
		classifier.EXPECT().Classify(gomock.Any(), "cancel my order").
			Return(json.RawMessage(`{"intent":"cancel"}`), nil),
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"scores":{"cancel":0.9},"explanation":"...","highlights":[]}`, nil),
	)

	w := serve(router, http.MethodPost, "/analyze", strings.NewReader(`{"text":"cancel my order"}`))

	req.Equal(http.StatusOK, w.Code)
	req.Equal("application/json", w.Header().Get("Content-Type"))
	req.JSONEq(`{"scores":{"cancel":0.9},"explanation":"...","highlights":[],"local":{"intent":"cancel"}}`, w.Body.String())
	req.NotEmpty(w.Header().Get("X-Request-ID"))
}

func TestAnalyze_TextRequired(t *testing.T) {
	bodies := map[string]string{
		"Empty object":     `{}`,
		"Empty text":       `{"text":""}`,
		"Null text":        `{"text":null}`,
		"Null body":        `null`,
		"False text":       `{"text":false}`,
		"Zero text":        `{"text":0}`,
		"Negative zero":    `{"text":-0.0}`,
		"Empty body":       ``,
		"Unrelated fields": `{"message":"cancel my order"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			// No expectations: any upstream call fails the test.
			router, _, _ := newRouter(t)

			w := serve(router, http.MethodPost, "/analyze", strings.NewReader(body))

			req.Equal(http.StatusBadRequest, w.Code)
			req.JSONEq(`{"error":"text required"}`, w.Body.String())
		})
	}
}

func TestAnalyze_UpstreamFailuresCollapseTo500(t *testing.T) {
	tests := []struct {
		description string
		setup       func(classifier *mocks.MockClassifier, completer *mocks.MockCompleter)
	}{
		{
			description: "Classifier unreachable",
			setup: func(classifier *mocks.MockClassifier, _ *mocks.MockCompleter) {
				classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
		},
		{
			description: "Completion failed",
			setup: func(classifier *mocks.MockClassifier, completer *mocks.MockCompleter) {
				classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{}`), nil)
				completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("429 Too Many Requests"))
			},
		},
		{
			description: "Completion is not JSON",
			setup: func(classifier *mocks.MockClassifier, completer *mocks.MockCompleter) {
				classifier.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{}`), nil)
				completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("The intent is to cancel.", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			router, classifier, completer := newRouter(t)
			tt.setup(classifier, completer)

			w := serve(router, http.MethodPost, "/analyze", strings.NewReader(`{"text":"cancel my order"}`))

			req.Equal(http.StatusInternalServerError, w.Code)
			req.JSONEq(`{"error":"analysis failed"}`, w.Body.String())
		})
	}
}

func TestAnalyze_RejectsBadBodies(t *testing.T) {
	req := require.New(t)
	router, _, _ := newRouter(t)

	w := serve(router, http.MethodPost, "/analyze", strings.NewReader(`{"text":`))
	req.Equal(http.StatusBadRequest, w.Code)
	req.JSONEq(`{"error":"invalid request body"}`, w.Body.String())

	for _, body := range []string{`{"text":42}`, `{"text":true}`, `{"text":["a"]}`, `{"text":{"a":1}}`} {
		w = serve(router, http.MethodPost, "/analyze", strings.NewReader(body))
		req.Equal(http.StatusBadRequest, w.Code, body)
		req.JSONEq(`{"error":"invalid request body"}`, w.Body.String(), body)
	}

	huge := `{"text":"` + strings.Repeat("a", 1<<20) + `"}`
	w = serve(router, http.MethodPost, "/analyze", strings.NewReader(huge))
	req.Equal(http.StatusRequestEntityTooLarge, w.Code)
	req.JSONEq(`{"error":"payload too large"}`, w.Body.String())
}

func TestAnalyze_RunsToCompletionAfterCallerDisconnects(t *testing.T) {
	req := require.New(t)
	router, classifier, completer := newRouter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gomock.InOrder(
		classifier.EXPECT().Classify(gomock.Any(), "cancel my order").
			DoAndReturn(func(ctx context.Context, _ string) (json.RawMessage, error) {
				assert.NoError(t, ctx.Err())
				assert.Equal(t, "req-7", handlers.RequestIDFrom(ctx))
				return json.RawMessage(`{"intent":"cancel"}`), nil
			}),
		completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string) (string, error) {
				assert.NoError(t, ctx.Err())
				return `{"explanation":"..."}`, nil
			}),
	)

	r := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text":"cancel my order"}`)).WithContext(ctx)
	r.Header.Set("X-Request-ID", "req-7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.JSONEq(`{"explanation":"...","local":{"intent":"cancel"}}`, w.Body.String())
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	router, _, _ := newRouter(t)

	w := serve(router, http.MethodGet, "/analyze", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAnalyze_KeepsCallerRequestID(t *testing.T) {
	router, _, _ := newRouter(t)

	r := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{}`))
	r.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	router, _, _ := newRouter(t)

	w := serve(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","classifier":"healthy"}`, w.Body.String())
}
