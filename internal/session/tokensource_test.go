package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackup/brackup-cli/internal/storage"
)

func TestTokenSourceReadsStoragePerRequest(t *testing.T) {
	store := storage.NewMockStore()
	ts := NewTokenSource(store)

	assert.Empty(t, ts.Token())

	require.NoError(t, store.SetToken("token-abc"))
	assert.Equal(t, "token-abc", ts.Token())

	require.NoError(t, store.ClearToken())
	assert.Empty(t, ts.Token())
}

func TestTokenSourceTreatsReadFailureAsUnauthenticated(t *testing.T) {
	store := storage.NewMockStore()
	store.TokenErr = assert.AnError

	assert.Empty(t, NewTokenSource(store).Token())
}
