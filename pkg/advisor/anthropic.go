package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type AnthropicProvider struct {
	APIKey string
	Model  string
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = "claude-opus-4-5"
	}
	return &AnthropicProvider{APIKey: apiKey, Model: model}
}

func (p *AnthropicProvider) ListModels(ctx context.Context) ([]string, error) {
	// Anthropic API does not currently provide a dynamic list models endpoint.
	// Returning the standard supported models.
	return []string{
		"claude-sonnet-4-5",
		"claude-opus-4-5",
		"claude-haiku-4-5",
	}, nil
}

// GenerateResponse sends the history through the messages endpoint. A
// "system" role message becomes the top-level system field.
func (p *AnthropicProvider) GenerateResponse(ctx context.Context, history []Message) (string, error) {
	type chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model     string        `json:"model"`
		MaxTokens int           `json:"max_tokens"`
		System    string        `json:"system,omitempty"`
		Messages  []chatMessage `json:"messages"`
	}{Model: p.Model, MaxTokens: 2048}

	for _, msg := range history {
		switch msg.Role {
		case "system":
			payload.System = msg.Content
		case "model":
			payload.Messages = append(payload.Messages, chatMessage{Role: "assistant", Content: msg.Content})
		default:
			payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: msg.Content})
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Anthropic API returned status %s: %s", resp.Status, string(data))
	}

	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	var text string
	for _, block := range result.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text in response")
	}
	return text, nil
}
