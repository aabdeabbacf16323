package service

import (
	"context"
	"time"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/repository"
)

// upcomingWindowDays is the dashboard's look-ahead for confirmed pickups.
const upcomingWindowDays = 7

type reportService struct {
	resRepo repository.ReservationRepository
}

func NewReportService(resRepo repository.ReservationRepository) ReportService {
	return &reportService{resRepo: resRepo}
}

func (s *reportService) CurrentActive(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	return s.resRepo.ListActive(ctx, dateOnly(today))
}

func (s *reportService) Upcoming(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	from := dateOnly(today)
	return s.resRepo.ListUpcoming(ctx, from, from.AddDate(0, 0, upcomingWindowDays))
}

func (s *reportService) Overdue(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	return s.resRepo.ListOverdue(ctx, dateOnly(today))
}

func (s *reportService) PendingPickup(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	return s.resRepo.ListPendingPickup(ctx, dateOnly(today))
}

func (s *reportService) PendingReturn(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	return s.resRepo.ListPendingReturn(ctx, dateOnly(today))
}

func (s *reportService) RevenueBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return s.resRepo.RevenueBetween(ctx, start, end)
}

func (s *reportService) Statistics(ctx context.Context, now time.Time) (*Statistics, error) {
	counts, err := s.resRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		Total:      counts.Total,
		Pending:    counts.Pending,
		Confirmed:  counts.Confirmed,
		InProgress: counts.InProgress,
		Completed:  counts.Completed,
		Cancelled:  counts.Cancelled,
	}

	today := dateOnly(now)

	active, err := s.CurrentActive(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.CurrentActive = len(active)

	upcoming, err := s.Upcoming(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.Upcoming = len(upcoming)

	overdue, err := s.Overdue(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.Overdue = len(overdue)

	pickups, err := s.PendingPickup(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.TodayPickups = len(pickups)

	returns, err := s.PendingReturn(ctx, today)
	if err != nil {
		return nil, err
	}
	stats.TodayReturns = len(returns)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)
	revenue, err := s.resRepo.RevenueBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenueCents = revenue

	return stats, nil
}
