package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractgpt/backend/model"
	"github.com/contractgpt/backend/pkg/logger"
	"github.com/contractgpt/backend/service"
)

type ChatHandler struct {
	completer service.Completer
}

func NewChatHandler(completer service.Completer) *ChatHandler {
	return &ChatHandler{completer: completer}
}

type ChatRequest struct {
	Messages []service.Message `json:"messages"`
}

// Chat streams a completion response. The body is written chunk by chunk as
// the upstream stream arrives; the request resolves on stream completion.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty messages array"})
		return
	}

	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty messages array"})
		return
	}

	streamed := false
	_, err := h.completer.Complete(c.Request.Context(), req.Messages, func(chunk string) {
		if !streamed {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Status(http.StatusOK)
			streamed = true
		}
		c.Writer.WriteString(chunk)
		c.Writer.Flush()
	})
	if err != nil {
		logger.Error(c.Request.Context(), "chat completion failed", "error", err)
		if streamed {
			// Headers are already out; the truncated body is all we can signal
			return
		}
		status, message := completionStatus(err)
		c.JSON(status, gin.H{"error": message, "details": err.Error()})
		return
	}

	if !streamed {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
	}
}

// completionStatus maps a completion failure onto an HTTP status and a
// user-facing message. Quota exhaustion gets 429 and its own message.
func completionStatus(err error) (int, string) {
	if errors.Is(err, model.ErrInvalidRequest) {
		return http.StatusBadRequest, model.ErrInvalidRequest.Error()
	}
	if errors.Is(err, model.ErrQuotaExhausted) {
		return http.StatusTooManyRequests, model.ErrQuotaExhausted.Error()
	}
	var genErr *model.GenerationError
	if errors.As(err, &genErr) && genErr.Status >= 400 {
		return genErr.Status, "An error occurred during the API call"
	}
	return http.StatusInternalServerError, "An error occurred during the API call"
}
