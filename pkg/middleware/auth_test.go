package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSessionRepo resolves exactly one known token; storage is never
// consulted for tokens recorded via fail.
type stubSessionRepo struct {
	session *entity.Session
	calls   int
}

func (s *stubSessionRepo) Create(_ context.Context, session *entity.Session) error {
	s.session = session
	return nil
}

func (s *stubSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	s.calls++
	if s.session != nil && s.session.Token.String() == token {
		return s.session, nil
	}
	return nil, nil
}

func (s *stubSessionRepo) Revoke(_ context.Context, token string) error {
	if s.session != nil && s.session.Token.String() == token {
		s.session = nil
	}
	return nil
}

func (s *stubSessionRepo) RevokeAllUserSessions(_ context.Context, _ uuid.UUID) error {
	s.session = nil
	return nil
}

func captureUserHandler(gotUserID *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
			*gotUserID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSession_ValidToken(t *testing.T) {
	repo := &stubSessionRepo{}
	userID := uuid.New()
	repo.session = &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	var gotUserID uuid.UUID
	handler := middleware.AuthSession(repo, zap.NewNop())(captureUserHandler(&gotUserID))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+repo.session.Token.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthSession_MalformedToken(t *testing.T) {
	// A token that is not a UUID must be rejected as unauthorized,
	// without reaching storage where the uuid cast would blow up
	repo := &stubSessionRepo{}

	var gotUserID uuid.UUID
	handler := middleware.AuthSession(repo, zap.NewNop())(captureUserHandler(&gotUserID))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, uuid.Nil, gotUserID)
	assert.Zero(t, repo.calls)
}

func TestAuthSession_UnknownToken(t *testing.T) {
	repo := &stubSessionRepo{}

	var gotUserID uuid.UUID
	handler := middleware.AuthSession(repo, zap.NewNop())(captureUserHandler(&gotUserID))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer "+uuid.New().String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, 1, repo.calls)
}

func TestAuthSession_MissingHeader(t *testing.T) {
	repo := &stubSessionRepo{}

	var gotUserID uuid.UUID
	handler := middleware.AuthSession(repo, zap.NewNop())(captureUserHandler(&gotUserID))

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
