package repository

import (
	"context"

	"github.com/archlab/patterns/pkg/domain/chat"
)

// ConversationRepository persists the Conversation aggregate as a whole.
//
// Save has upsert-by-identity semantics: a zero id inserts and assigns a new
// id on the aggregate; a non-zero id updates the scalar fields and rewrites
// the message collection wholesale. That is correct only because the
// aggregate is always saved in full, never partially.
type ConversationRepository interface {
	Save(ctx context.Context, conv *chat.Conversation) error
	// Get returns (nil, nil) when the conversation does not exist.
	Get(ctx context.Context, id uint) (*chat.Conversation, error)
	ListAll(ctx context.Context) ([]*chat.Conversation, error)
}
