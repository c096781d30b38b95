package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"portfolio-assistant/internal/usecase"
)

const (
	chatPath            = "/chat"
	correlationIDHeader = "X-Correlation-Id"
)

type ChatUseCase interface {
	Chat(ctx context.Context, in usecase.ChatInput) (usecase.ChatOutput, error)
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

type chatResponse struct {
	Reply          string `json:"reply"`
	ConversationID string `json:"conversationId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler adapts API Gateway proxy events to the chat use case.
type Handler struct {
	chat   ChatUseCase
	logger *slog.Logger
}

func NewHandler(chat ChatUseCase) (*Handler, error) {
	if chat == nil {
		return nil, errors.New("handler: chat use case must not be nil")
	}
	return &Handler{chat: chat, logger: slog.Default()}, nil
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationIDHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	log := h.logger.With("correlationId", correlationID, "method", req.HTTPMethod, "path", req.Path)

	if strings.TrimRight(req.Path, "/") != chatPath {
		return jsonResponse(http.StatusNotFound, correlationID, errorResponse{Error: "NOT_FOUND"}), nil
	}
	if req.HTTPMethod != http.MethodPost {
		resp := jsonResponse(http.StatusMethodNotAllowed, correlationID, errorResponse{Error: "METHOD_NOT_ALLOWED"})
		resp.Headers["Allow"] = http.MethodPost
		return resp, nil
	}

	var body chatRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		log.Warn("invalid request body", "err", err)
		return jsonResponse(http.StatusBadRequest, correlationID, errorResponse{Error: string(usecase.ErrorInvalidInput)}), nil
	}

	out, err := h.chat.Chat(ctx, usecase.ChatInput{
		Message:        body.Message,
		ConversationID: body.ConversationID,
	})
	if err != nil {
		status, code := mapError(err)
		if status >= http.StatusInternalServerError {
			log.Error("chat failed", "err", err)
		} else {
			log.Info("chat rejected", "err", err)
		}
		return jsonResponse(status, correlationID, errorResponse{Error: code}), nil
	}

	log.Info("chat answered", "conversationId", out.ConversationID)
	return jsonResponse(http.StatusOK, correlationID, chatResponse{
		Reply:          out.Reply,
		ConversationID: out.ConversationID,
	}), nil
}

func mapError(err error) (int, string) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return http.StatusInternalServerError, string(usecase.ErrorInternal)
	}
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest, string(ucErr.Code)
	default:
		return http.StatusInternalServerError, string(usecase.ErrorInternal)
	}
}

// headerValue looks a header up case-insensitively; API Gateway passes
// headers through with whatever casing the client used.
func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func jsonResponse(status int, correlationID string, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			correlationIDHeader: correlationID,
		},
		Body: string(body),
	}
}
