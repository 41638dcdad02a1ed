// Package chat holds the Conversation aggregate. The aggregate owns its
// messages: they have no identity or lifecycle outside the conversation,
// and every rule about them is enforced here rather than at storage.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"
)

var (
	// ErrConversationNotFound is returned when no conversation exists for
	// the given id.
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrConversationClosed is returned when a message is added to a closed
	// conversation.
	ErrConversationClosed = errors.New("conversation is closed")
)

// Message is a single immutable chat message. The timestamp is assigned at
// construction and never updated.
type Message struct {
	Sender    string
	Text      string
	CreatedAt time.Time
}

// Conversation is the aggregate root. It starts open; Close moves it to the
// terminal closed state, after which no message may be appended.
type Conversation struct {
	ID       uint
	Title    string
	Messages []Message
	Closed   bool
}

// NewConversation starts an open conversation with no messages. The id is
// assigned by the repository on first save.
func NewConversation(title string) *Conversation {
	return &Conversation{Title: title}
}

// AddMessage appends a message with a fresh timestamp and returns it.
// It fails with ErrConversationClosed once the conversation is closed.
func (c *Conversation) AddMessage(sender, text string) (Message, error) {
	if c.Closed {
		return Message{}, ErrConversationClosed
	}
	msg := Message{
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	c.Messages = append(c.Messages, msg)
	return msg, nil
}

// Close marks the conversation closed. Calling it again is a no-op.
func (c *Conversation) Close() {
	c.Closed = true
}

// MessageCount reports how many messages the conversation holds.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// TotalWordCount sums the whitespace-split token counts of all messages.
func (c *Conversation) TotalWordCount() int {
	return lo.SumBy(c.Messages, func(m Message) int {
		return len(strings.Fields(m.Text))
	})
}

// LastMessage returns the most recently appended message, or nil when the
// conversation is empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
