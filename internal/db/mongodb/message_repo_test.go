package mongodb

import (
	"context"
	"os"
	"testing"

	"Peerpulse/internal/core/messages"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestMongo(t *testing.T) *Client {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping MongoDB integration test")
	}

	client, err := Connect(context.Background(), uri, "peerpulse_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database.Drop(context.Background())
		_ = client.Close(context.Background())
	})
	return client
}

func TestMessageRepository_CreateAndList(t *testing.T) {
	client := setupTestMongo(t)
	repo := NewMessageRepository(client.Database)
	ctx := context.Background()

	alice := "alice-" + uuid.NewString()
	bob := "bob-" + uuid.NewString()

	first := &messages.Message{From: alice, To: bob, Message: "hi bob", Time: "09:00"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	require.NoError(t, repo.Create(ctx, &messages.Message{From: bob, To: alice, Message: "hi alice", Time: "09:01"}))
	require.NoError(t, repo.Create(ctx, &messages.Message{From: "carol", To: "dave", Message: "unrelated"}))

	got, err := repo.ListForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hi bob", got[0].Message)
	assert.Equal(t, "hi alice", got[1].Message)
	assert.Equal(t, first.ID, got[0].ID)
}
