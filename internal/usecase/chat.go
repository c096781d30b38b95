package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/responder"
)

const (
	defaultMaxContext       = 20
	defaultMaxMessageLength = 500
	defaultMaxTurns         = 50
)

type ProfileLoader interface {
	GetJSON(ctx context.Context, name string, v any) error
}

type TranscriptReadWriter interface {
	GetConversationTurnCount(ctx context.Context, conversationID string) (int, error)
	GetHistory(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error)
	SaveCompletedTurn(ctx context.Context, conversationID, message, reply string, turns int) error
}

// Config bounds a ChatService. Zero values fall back to defaults.
type Config struct {
	ParamPrefix          string
	MaxContextItems      int
	MaxMessageLength     int
	MaxConversationTurns int
}

type Option func(*ChatService)

// WithMatcherOptions forwards options to the matcher built on first use.
func WithMatcherOptions(opts ...responder.Option) Option {
	return func(s *ChatService) {
		s.matcherOpts = append(s.matcherOpts, opts...)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *ChatService) {
		if l != nil {
			s.logger = l
		}
	}
}

type ChatService struct {
	profiles ProfileLoader
	state    TranscriptReadWriter
	cfg      Config
	logger   *slog.Logger

	matcherOpts []responder.Option

	cacheMu sync.RWMutex
	matcher *responder.Matcher
}

type ChatInput struct {
	Message        string
	ConversationID string
}

type ChatOutput struct {
	Reply          string
	ConversationID string
}

func NewChatService(p ProfileLoader, s TranscriptReadWriter, cfg Config, opts ...Option) (*ChatService, error) {
	if p == nil {
		return nil, errors.New("usecase: profile loader must not be nil")
	}
	if s == nil {
		return nil, errors.New("usecase: transcript store must not be nil")
	}
	cfg.ParamPrefix = strings.TrimRight(strings.TrimSpace(cfg.ParamPrefix), "/")
	if cfg.ParamPrefix == "" {
		return nil, errors.New("usecase: parameter prefix must not be empty")
	}
	if cfg.MaxContextItems <= 0 {
		cfg.MaxContextItems = defaultMaxContext
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = defaultMaxMessageLength
	}
	if cfg.MaxConversationTurns <= 0 {
		cfg.MaxConversationTurns = defaultMaxTurns
	}
	svc := &ChatService{
		profiles: p,
		state:    s,
		cfg:      cfg,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Chat answers one visitor message and records the exchange. The message is
// passed to the matcher untouched; blank messages still get a reply.
func (s *ChatService) Chat(ctx context.Context, in ChatInput) (ChatOutput, error) {
	if len(in.Message) > s.cfg.MaxMessageLength {
		return ChatOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}
	matcher, err := s.ensureMatcher(ctx)
	if err != nil {
		return ChatOutput{}, newError(ErrorInternal, "ssm_load_error", err)
	}

	convID := strings.TrimSpace(in.ConversationID)
	existingTurns := 0
	if convID == "" {
		convID = newUUID()
	} else {
		turns, err := s.state.GetConversationTurnCount(ctx, convID)
		if err != nil {
			return ChatOutput{}, newError(ErrorInternal, "dynamodb_turn_count_error", err)
		}
		if turns >= s.cfg.MaxConversationTurns {
			return ChatOutput{}, newError(ErrorInvalidInput, "conversation_turn_limit", nil)
		}
		existingTurns = turns
	}

	history, err := s.state.GetHistory(ctx, convID, s.cfg.MaxContextItems)
	if err != nil {
		return ChatOutput{}, newError(ErrorInternal, "dynamodb_history_error", err)
	}

	reply := matcher.Reply(in.Message, history)

	if err := s.state.SaveCompletedTurn(ctx, convID, in.Message, reply, existingTurns+1); err != nil {
		return ChatOutput{}, newError(ErrorInternal, "dynamodb_write_error", err)
	}

	return ChatOutput{Reply: reply, ConversationID: convID}, nil
}

// ensureMatcher builds the matcher from the stored profile once per process.
// A failed load leaves the cache empty so the next request retries.
func (s *ChatService) ensureMatcher(ctx context.Context) (*responder.Matcher, error) {
	s.cacheMu.RLock()
	m := s.matcher
	s.cacheMu.RUnlock()
	if m != nil {
		return m, nil
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.matcher != nil {
		return s.matcher, nil
	}

	profile, err := s.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	m, err = knowledge.NewMatcher(profile, s.matcherOpts...)
	if err != nil {
		return nil, fmt.Errorf("usecase: build matcher: %w", err)
	}
	s.matcher = m
	return m, nil
}

func (s *ChatService) loadProfile(ctx context.Context) (domain.Profile, error) {
	name := s.cfg.ParamPrefix + "/profile"
	var p domain.Profile
	err := s.profiles.GetJSON(ctx, name, &p)
	switch {
	case errors.Is(err, paramstore.ErrNotFound):
		s.logger.Warn("profile parameter not found, using built-in profile", "name", name)
		return knowledge.DefaultProfile(), nil
	case err != nil:
		return domain.Profile{}, fmt.Errorf("usecase: load profile: %w", err)
	}
	return p, nil
}

var newUUID = func() string {
	return uuid.NewString()
}
