package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leadintake/internal/model"
	"leadintake/internal/service"
)

type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) ProcessLead(ctx context.Context, in service.LeadInput) model.ProcessLeadResponse {
	args := m.Called(ctx, in)
	return args.Get(0).(model.ProcessLeadResponse)
}
