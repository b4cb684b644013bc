package admin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSessionStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := NewFileSessionStore(path)

	_, ok := store.Get(SessionTokenKey)
	assert.False(t, ok)

	require.NoError(t, store.Set(SessionTokenKey, "token-123"))

	// a fresh store reads the persisted value
	reopened := NewFileSessionStore(path)
	token, ok := reopened.Get(SessionTokenKey)
	assert.True(t, ok)
	assert.Equal(t, "token-123", token)

	require.NoError(t, reopened.Clear(SessionTokenKey))
	_, ok = reopened.Get(SessionTokenKey)
	assert.False(t, ok)
}

func TestMemorySessionStore_EmptyValueIsAbsent(t *testing.T) {
	store := NewMemorySessionStore()
	require.NoError(t, store.Set(SessionTokenKey, ""))

	_, ok := store.Get(SessionTokenKey)
	assert.False(t, ok)
}
