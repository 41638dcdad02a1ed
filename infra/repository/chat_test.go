package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/archlab/patterns/infra/database"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/pkg/domain/chat"
)

func newChatDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "conversations.db"))
	require.NoError(t, err)
	require.NoError(t, infrarepo.MigrateChat(db))
	return db
}

func TestConversationRoundTrip(t *testing.T) {
	repo := infrarepo.NewConversationRepository(newChatDB(t))
	ctx := context.Background()

	conv := chat.NewConversation("standup")
	for i := 0; i < 5; i++ {
		_, err := conv.AddMessage(fmt.Sprintf("sender-%d", i), fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}
	conv.Close()

	require.NoError(t, repo.Save(ctx, conv))
	require.NotZero(t, conv.ID, "save must assign an id")

	loaded, err := repo.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "standup", loaded.Title)
	assert.True(t, loaded.Closed)
	require.Equal(t, 5, loaded.MessageCount())
	for i, m := range loaded.Messages {
		assert.Equal(t, fmt.Sprintf("sender-%d", i), m.Sender)
		assert.Equal(t, fmt.Sprintf("message %d", i), m.Text)
		assert.WithinDuration(t, conv.Messages[i].CreatedAt, m.CreatedAt, time.Second)
	}
}

func TestConversationSave_RewritesMessages(t *testing.T) {
	repo := infrarepo.NewConversationRepository(newChatDB(t))
	ctx := context.Background()

	conv := chat.NewConversation("standup")
	_, err := conv.AddMessage("alice", "hi")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, conv))

	_, err = conv.AddMessage("bob", "hello")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, conv))

	loaded, err := repo.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.MessageCount(), "resave must not duplicate rows")
	assert.Equal(t, "alice", loaded.Messages[0].Sender)
	assert.Equal(t, "bob", loaded.Messages[1].Sender)
}

func TestConversationGet_Absent(t *testing.T) {
	repo := infrarepo.NewConversationRepository(newChatDB(t))

	loaded, err := repo.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, loaded, "absence is not an error")
}

func TestConversationListAll(t *testing.T) {
	repo := infrarepo.NewConversationRepository(newChatDB(t))
	ctx := context.Background()

	first := chat.NewConversation("first")
	require.NoError(t, repo.Save(ctx, first))
	second := chat.NewConversation("second")
	_, err := second.AddMessage("alice", "hi")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
	assert.Equal(t, 1, all[1].MessageCount())
}
