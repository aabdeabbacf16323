package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/service"
)

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, in service.CreateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Confirm(ctx context.Context, id int64, employeeID *int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Start(ctx context.Context, id int64, in service.PickupInput) (*domain.Reservation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Complete(ctx context.Context, id int64, in service.ReturnInput) (*domain.Reservation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, id int64, reason string) (*domain.Reservation, error) {
	args := m.Called(ctx, id, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Update(ctx context.Context, id int64, in service.UpdateReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReservationService) IsVehicleAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *MockReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) CurrentActive(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReportService) Upcoming(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReportService) Overdue(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReportService) PendingPickup(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReportService) PendingReturn(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReportService) RevenueBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReportService) Statistics(ctx context.Context, now time.Time) (*service.Statistics, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Statistics), args.Error(1)
}
