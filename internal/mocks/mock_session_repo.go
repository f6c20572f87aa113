package mocks

import (
	"context"

	"cinema-api/internal/data/entity"
	"cinema-api/internal/data/repository"

	"github.com/google/uuid"
)

type MockSessionRepo struct {
	repository.SessionRepository
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
	CreateFunc           func(ctx context.Context, session *entity.Session) error
	RevokeFunc           func(ctx context.Context, token string) error
	PurgeInactiveFunc    func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return m.FindValidSessionFunc(ctx, token)
}

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFunc(ctx, session)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.RevokeFunc(ctx, token)
}

func (m *MockSessionRepo) PurgeInactive(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.PurgeInactiveFunc(ctx, userID)
}
