package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spszl/teacher-reviews/pkg/session"
)

func newAuthService(secret string) *AuthService {
	sessions := session.NewMemoryStore(time.Hour, 0)
	return NewAuthService(NewStaticSecretVerifier(secret), sessions, nil)
}

func TestLoginWithWrongPassword(t *testing.T) {
	svc := newAuthService("admin123")
	ctx := context.Background()

	_, err := svc.Login(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesAdminSession(t *testing.T) {
	svc := newAuthService("admin123")
	ctx := context.Background()

	sess, err := svc.Login(ctx, "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.True(t, sess.Admin)

	admin, err := svc.IsAdmin(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, admin)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newAuthService("admin123")
	ctx := context.Background()

	sess, err := svc.Login(ctx, "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	admin, err := svc.IsAdmin(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestIsAdminWithUnknownToken(t *testing.T) {
	svc := newAuthService("admin123")
	admin, err := svc.IsAdmin(context.Background(), "bogus")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestStaticSecretVerifier(t *testing.T) {
	v := NewStaticSecretVerifier("s3cret")
	assert.True(t, v.Verify("s3cret"))
	assert.False(t, v.Verify("s3cret "))
	assert.False(t, v.Verify(""))
}
