package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, in service.ContactInput) (*model.ContactMessage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}
