package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/contractgpt/backend/model"
	"github.com/contractgpt/backend/service"
)

type stubCompleter struct {
	response string
	chunks   []string
	err      error
}

func (s *stubCompleter) Complete(ctx context.Context, messages []service.Message, onChunk func(string)) (string, error) {
	if len(messages) == 0 {
		return "", model.ErrInvalidRequest
	}
	if s.err != nil {
		return "", s.err
	}
	if onChunk != nil {
		for _, c := range s.chunks {
			onChunk(c)
		}
	}
	return s.response, nil
}

func chatRouter(completer service.Completer) *gin.Engine {
	router := gin.New()
	router.POST("/chat", NewChatHandler(completer).Chat)
	return router
}

func TestChatEmptyMessages(t *testing.T) {
	router := chatRouter(&stubCompleter{})

	tests := []struct {
		name string
		body any
	}{
		{"empty array", map[string]any{"messages": []any{}}},
		{"missing field", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/chat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}

			var response map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if response["error"] == "" {
				t.Error("Expected non-empty error field")
			}
		})
	}
}

func TestChatStreamsBody(t *testing.T) {
	completer := &stubCompleter{
		response: "GENERATED CONTRACT",
		chunks:   []string{"GENERATED ", "CONTRACT"},
	}
	router := chatRouter(completer)

	w := postJSON(t, router, "/chat", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "generate"}},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "GENERATED CONTRACT" {
		t.Errorf("Expected streamed body, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Expected text/plain body, got %s", ct)
	}
}

func TestChatQuotaExhausted(t *testing.T) {
	completer := &stubCompleter{err: model.ErrQuotaExhausted}
	router := chatRouter(completer)

	w := postJSON(t, router, "/chat", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "generate"}},
	})

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	quotaMsg, _ := response["error"].(string)
	if quotaMsg == "" {
		t.Fatal("Expected non-empty error field")
	}

	// The quota message must differ from the generic failure message
	genericW := postJSON(t, chatRouter(&stubCompleter{err: &model.GenerationError{Err: errors.New("boom")}}), "/chat", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "generate"}},
	})
	if genericW.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500 for generic failure, got %d", genericW.Code)
	}
	var genericResponse map[string]any
	if err := json.Unmarshal(genericW.Body.Bytes(), &genericResponse); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if genericResponse["error"] == quotaMsg {
		t.Error("Expected quota message to differ from generic failure message")
	}
}

func TestChatUpstreamStatus(t *testing.T) {
	completer := &stubCompleter{err: &model.GenerationError{Status: 503, Err: errors.New("service down")}}
	router := chatRouter(completer)

	w := postJSON(t, router, "/chat", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "generate"}},
	})

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected upstream status 503, got %d", w.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["details"] == "" {
		t.Error("Expected details field on upstream failure")
	}
}
