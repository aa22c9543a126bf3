package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"portfolioapi/internal/model"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Build(ctx context.Context, base string) (*model.Document, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockContentService) Blogs(ctx context.Context, category model.BlogCategory) ([]model.BlogView, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogView), args.Error(1)
}
