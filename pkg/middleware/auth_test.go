package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/mocks"
	"cinema-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthSession(t *testing.T) {
	userID := uuid.New()
	token := uuid.New()

	tests := []struct {
		name       string
		header     string
		findFunc   func(ctx context.Context, token string) (*entity.Session, error)
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + token.String(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token is not a uuid",
			header:     "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown or expired session",
			header: "Bearer " + token.String(),
			findFunc: func(ctx context.Context, token string) (*entity.Session, error) {
				return nil, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "session store failure",
			header: "Bearer " + token.String(),
			findFunc: func(ctx context.Context, token string) (*entity.Session, error) {
				return nil, errors.New("connection refused")
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "revoked session",
			header: "Bearer " + token.String(),
			findFunc: func(ctx context.Context, tok string) (*entity.Session, error) {
				revoked := time.Now().Add(-time.Minute)
				return &entity.Session{UserID: userID, ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revoked}, nil
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid session sets the caller",
			header: "bearer " + token.String(),
			findFunc: func(ctx context.Context, tok string) (*entity.Session, error) {
				assert.Equal(t, token.String(), tok)
				return &entity.Session{
					UserID:    userID,
					Token:     token,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockSessionRepo{FindValidSessionFunc: tt.findFunc}

			var gotUser uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			AuthSession(repo, zap.NewNop())(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantUser {
				assert.Equal(t, userID, gotUser)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	Recover(zap.NewNop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
