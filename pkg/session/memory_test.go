package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateGetDelete(t *testing.T) {
	s := NewMemoryStore(time.Hour, 0)
	ctx := context.Background()

	sess, err := s.Create(ctx, true)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	got, found, err := s.Get(ctx, sess.Token)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, got.Admin)

	require.NoError(t, s.Delete(ctx, sess.Token))
	_, found, err = s.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore(time.Hour, 0)
	_, found, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10*time.Millisecond, 0)
	ctx := context.Background()

	sess, err := s.Create(ctx, true)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, found, err := s.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDeleteUnknownTokenIsNoop(t *testing.T) {
	s := NewMemoryStore(time.Hour, 0)
	assert.NoError(t, s.Delete(context.Background(), "missing"))
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	s := NewMemoryStore(time.Hour, 0)
	ctx := context.Background()

	a, err := s.Create(ctx, true)
	require.NoError(t, err)
	b, err := s.Create(ctx, true)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}
