package application

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/spszl/teacher-reviews/pkg/session"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier abstracts the admin credential check so a stronger
// scheme can replace the shared secret without touching the handlers.
type CredentialVerifier interface {
	Verify(candidate string) bool
}

// StaticSecretVerifier checks a candidate against a single configured
// shared secret, in constant time.
type StaticSecretVerifier struct {
	secret string
}

func NewStaticSecretVerifier(secret string) *StaticSecretVerifier {
	return &StaticSecretVerifier{secret: secret}
}

func (v *StaticSecretVerifier) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(v.secret), []byte(candidate)) == 1
}

// AuthService is the session gate: login trades a matching credential for
// an admin session, logout invalidates it. No other code path mutates the
// admin flag.
type AuthService struct {
	Verifier CredentialVerifier
	Sessions session.Store
	Logger   *logrus.Logger
}

func NewAuthService(verifier CredentialVerifier, sessions session.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{Verifier: verifier, Sessions: sessions, Logger: logger}
}

// Login verifies the candidate credential and, on match, issues an admin
// session. A mismatch returns ErrInvalidCredentials and leaves session
// state untouched.
func (s *AuthService) Login(ctx context.Context, candidate string) (*session.Session, error) {
	if !s.Verifier.Verify(candidate) {
		if s.Logger != nil {
			s.Logger.Warn("admin login failed")
		}
		return nil, ErrInvalidCredentials
	}
	sess, err := s.Sessions.Create(ctx, true)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("admin login")
	}
	return sess, nil
}

// Logout removes the session's backing entry. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

// IsAdmin reports whether the token maps to a live admin session.
func (s *AuthService) IsAdmin(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	sess, found, err := s.Sessions.Get(ctx, token)
	if err != nil || !found {
		return false, err
	}
	return sess.Admin, nil
}
