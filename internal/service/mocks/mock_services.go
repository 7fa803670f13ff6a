package mocks

import (
	"context"

	"portfolioapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) List(ctx context.Context, lang string) ([]model.BlogPost, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Get(ctx context.Context, lang, id string) (*model.BlogPost, error) {
	args := m.Called(ctx, lang, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogService) Create(ctx context.Context, lang string, post model.BlogPost) error {
	args := m.Called(ctx, lang, post)
	return args.Error(0)
}

type MockCVService struct {
	mock.Mock
}

func (m *MockCVService) Get(ctx context.Context, lang string) ([]byte, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req model.ContactRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Pinned(ctx context.Context) []model.PinnedRepository {
	args := m.Called(ctx)
	return args.Get(0).([]model.PinnedRepository)
}

type MockPinnedFetcher struct {
	mock.Mock
}

func (m *MockPinnedFetcher) FetchPinned(ctx context.Context) ([]model.PinnedRepository, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PinnedRepository), args.Error(1)
}
