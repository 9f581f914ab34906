package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summarizer-backend/pkg/ai"
)

func TestSummarizeSuccess(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"A tidy summary."}}]}`))
	}))
	defer server.Close()

	service := NewService("test-key", "")
	service.baseURL = server.URL

	summary, err := service.Summarize(context.Background(), "Discuss roadmap.", "keep it short")

	require.NoError(t, err)
	assert.Equal(t, "A tidy summary.", summary)

	assert.Equal(t, defaultModel, captured.Model)
	assert.Equal(t, maxTokens, captured.MaxTokens)
	assert.Equal(t, temperature, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, systemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].Content, "Discuss roadmap.")
	assert.Contains(t, captured.Messages[1].Content, "Custom instruction: keep it short")
}

func TestSummarizeWithoutAPIKeySkipsNetwork(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	service := NewService("", "")
	service.baseURL = server.URL

	_, err := service.Summarize(context.Background(), "text", "")

	var adapterErr *ai.AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "groq", adapterErr.Provider)
	assert.Contains(t, adapterErr.Reason, "not configured")
	assert.Equal(t, 0, hits)
}

func TestSummarizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	service := NewService("bad-key", "")
	service.baseURL = server.URL

	_, err := service.Summarize(context.Background(), "text", "")

	var adapterErr *ai.AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "groq", adapterErr.Provider)
	assert.Contains(t, adapterErr.Reason, "API error (401)")
}

func TestSummarizeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	service := NewService("test-key", "")
	service.baseURL = server.URL

	_, err := service.Summarize(context.Background(), "text", "")

	var adapterErr *ai.AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Contains(t, adapterErr.Reason, "failed to parse response")
}

func TestSummarizeEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	service := NewService("test-key", "")
	service.baseURL = server.URL

	_, err := service.Summarize(context.Background(), "text", "")

	var adapterErr *ai.AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Contains(t, adapterErr.Reason, "no summary returned")
}

func TestSummarizeTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	service := NewService("test-key", "")
	service.baseURL = server.URL

	_, err := service.Summarize(context.Background(), "text", "")

	var adapterErr *ai.AdapterError
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "groq", adapterErr.Provider)
	assert.Contains(t, adapterErr.Reason, "request failed")
}
