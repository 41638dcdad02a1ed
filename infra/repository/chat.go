package repository

import (
	"context"
	"errors"

	"github.com/archlab/patterns/pkg/domain/chat"
	"github.com/archlab/patterns/pkg/repository"
	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates the aggregate gateway for conversations.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// Save inserts the aggregate when it has no id, otherwise updates the
// scalar fields and rewrites the message rows wholesale. The delete-then-
// reinsert is safe because the aggregate is always saved in full.
func (r *conversationRepository) Save(ctx context.Context, conv *chat.Conversation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := Conversation{ID: conv.ID, Title: conv.Title, Closed: conv.Closed}
		if conv.ID == 0 {
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			conv.ID = row.ID
		} else {
			if err := tx.Model(&Conversation{}).
				Where("id = ?", conv.ID).
				Updates(map[string]any{"title": conv.Title, "closed": conv.Closed}).Error; err != nil {
				return err
			}
			if err := tx.Where("conversation_id = ?", conv.ID).
				Delete(&ConversationMessage{}).Error; err != nil {
				return err
			}
		}

		for _, m := range conv.Messages {
			msg := ConversationMessage{
				ConversationID: conv.ID,
				Sender:         m.Sender,
				Text:           m.Text,
				CreatedAt:      m.CreatedAt,
			}
			if err := tx.Create(&msg).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *conversationRepository) Get(ctx context.Context, id uint) (*chat.Conversation, error) {
	var row Conversation
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var msgRows []ConversationMessage
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Order("id asc").
		Find(&msgRows).Error; err != nil {
		return nil, err
	}

	conv := &chat.Conversation{
		ID:     row.ID,
		Title:  row.Title,
		Closed: row.Closed,
	}
	for _, m := range msgRows {
		conv.Messages = append(conv.Messages, chat.Message{
			Sender:    m.Sender,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return conv, nil
}

func (r *conversationRepository) ListAll(ctx context.Context) ([]*chat.Conversation, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&Conversation{}).
		Order("id asc").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	conversations := make([]*chat.Conversation, 0, len(ids))
	for _, id := range ids {
		conv, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}
