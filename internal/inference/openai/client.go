// Package openai implements the inference client against the OpenAI
// chat completions API.
package openai

import (
	"context"
	"fmt"
	"log/slog"

	"resty.dev/v3"

	"github.com/CJSBLACKPEARL/quizify-note-genie/internal/inference"
)

type Client struct {
	httpClient *resty.Client
	model      string
}

func NewClient(apiKey, model string) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		model:      model,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete implements the inference.Client interface. It performs exactly one
// provider call; retrying is the caller's decision.
func (client *Client) Complete(ctx context.Context, req inference.CompletionRequest) (string, error) {
	requestBody := ChatCompletionRequest{
		Model:       client.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []Message{
			{Role: RoleSystem, Content: req.SystemPrompt},
			{Role: RoleUser, Content: req.UserPrompt},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Post > %v", inference.ErrUnavailable, err)
	}
	if response.IsError() {
		slog.Default().Error("provider returned an error status",
			"status", response.StatusCode(),
			"model", client.model)
		return "", fmt.Errorf("%w: response error %d", inference.ErrUnavailable, response.StatusCode())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response body or choices", inference.ErrUnavailable)
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: empty response content", inference.ErrUnavailable)
	}
	slog.Default().Debug("openai response content",
		"model", responseBody.Model,
		"promptTokens", responseBody.Usage.PromptTokens,
		"completionTokens", responseBody.Usage.CompletionTokens)

	return content, nil
}
