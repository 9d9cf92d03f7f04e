package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var missing doc
	found, err := store.Load(ctx, "absent", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "d", doc{Name: "vault", Count: 3}))

	var got doc
	found, err = store.Load(ctx, "d", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc{Name: "vault", Count: 3}, got)
}

func TestMemoryStoreMalformedBlobFailsSoft(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	store.Put("broken", []byte("{not json"))

	var dest map[string]string
	found, err := store.Load(context.Background(), "broken", &dest)
	require.NoError(t, err)
	assert.False(t, found, "undecodable blob should read as absent")
}
