package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) List(ctx context.Context, order string) ([]*entity.Product, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *ProductRepository) DecrementStock(ctx context.Context, id, qty, expectedVersion int64, allowNegative bool) error {
	return m.Called(ctx, id, qty, expectedVersion, allowNegative).Error(0)
}
