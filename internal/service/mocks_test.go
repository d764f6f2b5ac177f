package service

import (
	"context"
	"sync"

	"voltly/internal/crm"
	"voltly/internal/model"
	"voltly/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCRMClient is a mock implementation of crm.Client.
type MockCRMClient struct {
	mock.Mock
}

func (m *MockCRMClient) RecordBooking(ctx context.Context, draft *model.BookingDraft) (*crm.Job, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Job), args.Error(1)
}

func (m *MockCRMClient) RecordPurchase(ctx context.Context, order *model.OrderSummary) (*crm.Job, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Job), args.Error(1)
}

func (m *MockCRMClient) GetTechnicians(ctx context.Context) ([]crm.Technician, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Technician), args.Error(1)
}

// MockSender is a mock implementation of notify.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendBookingConfirmation(ctx context.Context, confirmation notify.BookingConfirmation) error {
	args := m.Called(ctx, confirmation)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *model.OrderSummary) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSummary), args.Error(1)
}

func (m *MockOrderRepository) GetLatest(ctx context.Context) (*model.OrderSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSummary), args.Error(1)
}

// memStorage is an in-memory cart.Storage for wiring real cart stores in
// service tests.
type memStorage struct {
	mu    sync.Mutex
	lines []model.CartLine
}

func (s *memStorage) Load(_ context.Context) ([]model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines, nil
}

func (s *memStorage) Save(_ context.Context, lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	return nil
}
