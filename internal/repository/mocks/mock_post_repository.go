package mocks

import (
	"context"

	"portfolioapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Load(ctx context.Context, lang string) ([]model.BlogPost, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockPostRepository) Save(ctx context.Context, post model.BlogPost, lang string) error {
	args := m.Called(ctx, post, lang)
	return args.Error(0)
}
