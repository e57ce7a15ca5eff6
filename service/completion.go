package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/contractgpt/backend/model"
)

// Message is one chat message in a completion conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer produces a full completion from a list of chat messages.
// onChunk, when non-nil, is invoked with each partial chunk as it arrives.
type Completer interface {
	Complete(ctx context.Context, messages []Message, onChunk func(string)) (string, error)
}

// CompletionService streams chat completions from OpenAI
type CompletionService struct {
	client *openai.Client
	model  string
}

func NewCompletionService(apiKey, model string) *CompletionService {
	return &CompletionService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete opens a streaming completion request and accumulates the response.
// It returns only once the stream completes or errors.
func (s *CompletionService) Complete(ctx context.Context, messages []Message, onChunk func(string)) (string, error) {
	if len(messages) == 0 {
		return "", model.ErrInvalidRequest
	}

	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Stream:   true,
		Messages: chatMessages,
	})
	if err != nil {
		return "", mapCompletionError(err)
	}
	defer stream.Close()

	var content string
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", mapCompletionError(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		chunk := resp.Choices[0].Delta.Content
		if chunk == "" {
			continue
		}
		content += chunk
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	return content, nil
}

// mapCompletionError translates upstream failures into the workflow taxonomy.
// Quota exhaustion is distinguished so the user gets the templates-fallback
// message and a 429 instead of a generic failure.
func mapCompletionError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if isQuotaError(apiErr) {
			return fmt.Errorf("%w: %v", model.ErrQuotaExhausted, err)
		}
		return &model.GenerationError{Status: apiErr.HTTPStatusCode, Err: err}
	}
	return &model.GenerationError{Err: err}
}

func isQuotaError(apiErr *openai.APIError) bool {
	if apiErr.Type == "insufficient_quota" {
		return true
	}
	if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
		return true
	}
	return apiErr.HTTPStatusCode == 429
}
