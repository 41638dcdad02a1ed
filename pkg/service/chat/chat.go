// Package chat implements the chat service layer. Business rules live on
// the Conversation aggregate; this layer orchestrates repository access and
// always saves the aggregate in full.
package chat

import (
	"context"
	"log/slog"

	"github.com/archlab/patterns/pkg/domain/chat"
	"github.com/archlab/patterns/pkg/repository"
)

// Service orchestrates the Conversation aggregate.
type Service struct {
	conversations repository.ConversationRepository
	logger        *slog.Logger
}

// NewService creates a Service over the given repository.
func NewService(conversations repository.ConversationRepository, logger *slog.Logger) *Service {
	return &Service{
		conversations: conversations,
		logger:        logger.With("service", "chat"),
	}
}

// Start creates and persists an open conversation with the given title.
func (s *Service) Start(ctx context.Context, title string) (*chat.Conversation, error) {
	conv := chat.NewConversation(title)
	if err := s.conversations.Save(ctx, conv); err != nil {
		return nil, err
	}
	s.logger.Info("conversation started", "conversation_id", conv.ID, "title", title)
	return conv, nil
}

// Get loads a conversation or fails with ErrConversationNotFound.
func (s *Service) Get(ctx context.Context, id uint) (*chat.Conversation, error) {
	conv, err := s.conversations.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, chat.ErrConversationNotFound
	}
	return conv, nil
}

// List returns all conversations ordered by id.
func (s *Service) List(ctx context.Context) ([]*chat.Conversation, error) {
	return s.conversations.ListAll(ctx)
}

// PostMessage appends a message to the conversation and saves the whole
// aggregate. The closed-conversation guard is enforced by the aggregate.
func (s *Service) PostMessage(ctx context.Context, id uint, sender, text string) (chat.Message, error) {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return chat.Message{}, err
	}
	msg, err := conv.AddMessage(sender, text)
	if err != nil {
		return chat.Message{}, err
	}
	if err := s.conversations.Save(ctx, conv); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

// Close marks the conversation closed and saves it. Closing an already
// closed conversation is a no-op.
func (s *Service) Close(ctx context.Context, id uint) (*chat.Conversation, error) {
	conv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	conv.Close()
	if err := s.conversations.Save(ctx, conv); err != nil {
		return nil, err
	}
	s.logger.Info("conversation closed", "conversation_id", conv.ID)
	return conv, nil
}
