package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

// messageText flattens message content sent either as a string or as text parts.
func messageText(t *testing.T, content json.RawMessage) string {
	t.Helper()
	var text string
	if err := json.Unmarshal(content, &text); err == nil {
		return text
	}

	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(content, &parts))
	var out string
	for _, part := range parts {
		require.Equal(t, "text", part.Type)
		out += part.Text
	}
	return out
}

const chatResponse = `{
	"id": "chatcmpl-123",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "{\"scores\":{\"cancel\":0.9}}"}
	}]
}`

func TestOpenAIClient_Complete(t *testing.T) {
	req := require.New(t)
	var captured chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatResponse)
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1/")
	content, err := client.Complete(context.Background(), "system prompt", "user prompt")
	req.NoError(err)
	req.Equal(`{"scores":{"cancel":0.9}}`, content)

	req.Equal("gpt-4o-mini", captured.Model)
	req.InDelta(0.2, captured.Temperature, 1e-9)
	req.Len(captured.Messages, 2)
	req.Equal("system", captured.Messages[0].Role)
	req.Equal("system prompt", messageText(t, captured.Messages[0].Content))
	req.Equal("user", captured.Messages[1].Role)
	req.Equal("user prompt", messageText(t, captured.Messages[1].Content))
}

func TestOpenAIClient_Complete_NoRetryOnServerError(t *testing.T) {
	req := require.New(t)
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1/")
	_, err := client.Complete(context.Background(), "s", "u")
	req.Error(err)
	req.Equal(int32(1), calls.Load())
}

func TestOpenAIClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[]}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1/")
	_, err := client.Complete(context.Background(), "s", "u")
	require.Error(t, err)
}
