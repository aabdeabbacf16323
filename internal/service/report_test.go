package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/repository"
	"rentman-backend/internal/service"
)

func TestReportService_Upcoming(t *testing.T) {
	resRepo := new(MockReservationRepo)
	svc := service.NewReportService(resRepo)

	ctx := context.Background()
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	from := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	expected := []domain.Reservation{{ID: 1}, {ID: 2}}
	resRepo.On("ListUpcoming", ctx, from, until).Return(expected, nil)

	list, err := svc.Upcoming(ctx, today)
	assert.NoError(t, err)
	assert.Equal(t, expected, list)
	// The window is exactly seven days from midnight of the given day.
	resRepo.AssertCalled(t, "ListUpcoming", ctx, from, until)
}

func TestReportService_DateTruncation(t *testing.T) {
	resRepo := new(MockReservationRepo)
	svc := service.NewReportService(resRepo)

	ctx := context.Background()
	noon := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	resRepo.On("ListActive", ctx, midnight).Return([]domain.Reservation{}, nil)
	resRepo.On("ListOverdue", ctx, midnight).Return([]domain.Reservation{}, nil)
	resRepo.On("ListPendingPickup", ctx, midnight).Return([]domain.Reservation{}, nil)
	resRepo.On("ListPendingReturn", ctx, midnight).Return([]domain.Reservation{}, nil)

	_, err := svc.CurrentActive(ctx, noon)
	assert.NoError(t, err)
	_, err = svc.Overdue(ctx, noon)
	assert.NoError(t, err)
	_, err = svc.PendingPickup(ctx, noon)
	assert.NoError(t, err)
	_, err = svc.PendingReturn(ctx, noon)
	assert.NoError(t, err)

	resRepo.AssertExpectations(t)
}

func TestReportService_Statistics(t *testing.T) {
	resRepo := new(MockReservationRepo)
	svc := service.NewReportService(resRepo)

	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	resRepo.On("CountByStatus", ctx).Return(&repository.StatusCounts{
		Total:      25,
		Pending:    4,
		Confirmed:  6,
		InProgress: 3,
		Completed:  10,
		Cancelled:  2,
	}, nil)
	resRepo.On("ListActive", ctx, mock.Anything).Return([]domain.Reservation{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	resRepo.On("ListUpcoming", ctx, mock.Anything, mock.Anything).Return([]domain.Reservation{{ID: 4}}, nil)
	resRepo.On("ListOverdue", ctx, mock.Anything).Return([]domain.Reservation{{ID: 5}}, nil)
	resRepo.On("ListPendingPickup", ctx, mock.Anything).Return([]domain.Reservation{}, nil)
	resRepo.On("ListPendingReturn", ctx, mock.Anything).Return([]domain.Reservation{{ID: 6}, {ID: 7}}, nil)
	resRepo.On("RevenueBetween", ctx, monthStart, monthEnd).Return(int64(125000), nil)

	stats, err := svc.Statistics(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), stats.Total)
	assert.Equal(t, int64(4), stats.Pending)
	assert.Equal(t, int64(10), stats.Completed)
	assert.Equal(t, 3, stats.CurrentActive)
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 0, stats.TodayPickups)
	assert.Equal(t, 2, stats.TodayReturns)
	assert.Equal(t, int64(125000), stats.MonthlyRevenueCents)
}
