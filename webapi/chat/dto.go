package chat

import (
	"time"

	domain "github.com/archlab/patterns/pkg/domain/chat"
	"github.com/samber/lo"
)

// CreateConversationRequest starts a conversation.
type CreateConversationRequest struct {
	Title string `json:"title" validate:"required"`
}

// PostMessageRequest appends a message to a conversation.
type PostMessageRequest struct {
	Sender string `json:"sender" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// MessageResponse is the wire shape of a message.
type MessageResponse struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationResponse is the wire shape of a conversation, including the
// aggregate's own statistics.
type ConversationResponse struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Closed       bool              `json:"closed"`
	Messages     []MessageResponse `json:"messages"`
	MessageCount int               `json:"message_count"`
	WordCount    int               `json:"word_count"`
}

func toConversationResponse(conv *domain.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:     conv.ID,
		Title:  conv.Title,
		Closed: conv.Closed,
		Messages: lo.Map(conv.Messages, func(m domain.Message, _ int) MessageResponse {
			return toMessageResponse(m)
		}),
		MessageCount: conv.MessageCount(),
		WordCount:    conv.TotalWordCount(),
	}
}

func toMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{Sender: m.Sender, Text: m.Text, CreatedAt: m.CreatedAt}
}
