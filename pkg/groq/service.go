package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"summarizer-backend/pkg/ai"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"

	systemPrompt = "You are a helpful assistant that creates clear, structured meeting summaries."

	maxTokens   = 500
	temperature = 0.7
)

// Service implements ai.Summarizer using the Groq chat completions API.
type Service struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewService(apiKey, model string) *Service {
	if model == "" {
		model = defaultModel
	}
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Service) Name() string { return "groq" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Summarize implements ai.Summarizer. A missing API key short-circuits to
// a configuration-absent failure without touching the network.
func (s *Service) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	if s.apiKey == "" {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "GROQ_API_KEY not configured"}
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(transcript, instruction)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: fmt.Sprintf("API error (%d): %s", resp.StatusCode, string(respBody))}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "failed to parse response", Err: err}
	}
	if result.Error != nil {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "provider error: " + result.Error.Message}
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", &ai.AdapterError{Provider: s.Name(), Reason: "no summary returned"}
	}

	return result.Choices[0].Message.Content, nil
}

func buildPrompt(transcript, instruction string) string {
	var b strings.Builder
	b.WriteString("Please provide a structured summary of the following meeting transcript.\n\n")
	if instruction != "" {
		fmt.Fprintf(&b, "Custom instruction: %s\n\n", instruction)
	}
	fmt.Fprintf(&b, "Transcript:\n%s\n\n", transcript)
	b.WriteString("Please provide a clear, organized summary that follows the custom instruction if provided.")
	return b.String()
}
