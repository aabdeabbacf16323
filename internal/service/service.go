package service

import (
	"context"
	"time"

	"rentman-backend/internal/domain"
)

// CreateReservationInput carries everything a customer submits when
// requesting a booking. The caller's identity has already been resolved
// by the auth layer; the core receives explicit ids only.
type CreateReservationInput struct {
	CustomerID int64
	VehicleID  int64
	StartDate  time.Time
	EndDate    time.Time

	PickupTime      *time.Time
	ReturnTime      *time.Time
	PickupLocation  string
	ReturnLocation  string
	SpecialRequests string

	InsuranceIncluded bool
	AdditionalDriver  bool
	GPSIncluded       bool
	ChildSeatIncluded bool

	DiscountCents int64
	DepositCents  int64
}

// UpdateReservationInput replaces the mutable fields of a reservation
// that is still PENDING or CONFIRMED.
type UpdateReservationInput struct {
	StartDate time.Time
	EndDate   time.Time

	PickupTime      *time.Time
	ReturnTime      *time.Time
	PickupLocation  string
	ReturnLocation  string
	SpecialRequests string

	InsuranceIncluded bool
	AdditionalDriver  bool
	GPSIncluded       bool
	ChildSeatIncluded bool
}

// PickupInput captures vehicle condition at handover.
type PickupInput struct {
	Mileage    int32
	FuelLevel  string
	Condition  string
	EmployeeID *int64
}

// ReturnInput captures vehicle condition at return, plus any fees
// assessed on the spot (damage, late fuel, cleaning).
type ReturnInput struct {
	Mileage        int32
	FuelLevel      string
	Condition      string
	ExtraFeesCents int64
	Notes          string
	EmployeeID     *int64
}

type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, id int64, employeeID *int64) (*domain.Reservation, error)
	Start(ctx context.Context, id int64, in PickupInput) (*domain.Reservation, error)
	Complete(ctx context.Context, id int64, in ReturnInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, in UpdateReservationInput) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error

	IsVehicleAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)

	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
}

// Statistics is the dashboard aggregate over the reservation set.
type Statistics struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Confirmed  int64 `json:"confirmed"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`

	CurrentActive int `json:"current_active"`
	Upcoming      int `json:"upcoming"`
	Overdue       int `json:"overdue"`
	TodayPickups  int `json:"today_pickups"`
	TodayReturns  int `json:"today_returns"`

	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

// ReportService is the read-only reporting surface. Every method takes
// the caller's current date so boundary behavior is testable without a
// clock.
type ReportService interface {
	CurrentActive(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	Upcoming(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	Overdue(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	PendingPickup(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	PendingReturn(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	RevenueBetween(ctx context.Context, start, end time.Time) (int64, error)
	Statistics(ctx context.Context, now time.Time) (*Statistics, error)
}
