package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

type SessionStore struct{ mock.Mock }

func (m *SessionStore) Create(ctx context.Context, s *entity.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
