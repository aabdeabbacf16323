package repository

import (
	"context"
	"time"

	"rentman-backend/internal/domain"
)

// TxManager runs a function inside a single database transaction. Every
// state-changing reservation operation uses it so the availability check
// and the writes commit (or roll back) together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatusCounts is the per-status breakdown used by the statistics view.
type StatusCounts struct {
	Total      int64
	Pending    int64
	Confirmed  int64
	InProgress int64
	Completed  int64
	Cancelled  int64
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error

	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)

	// CountConflicting counts CONFIRMED/IN_PROGRESS reservations for the
	// vehicle whose inclusive date range overlaps [start, end]. excludeID
	// omits the reservation being re-checked from its own conflict count;
	// pass 0 when creating.
	CountConflicting(ctx context.Context, vehicleID int64, start, end time.Time, excludeID int64) (int64, error)

	// Reporting predicates, parameterized by the caller's current date.
	ListActive(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	ListUpcoming(ctx context.Context, from, until time.Time) ([]domain.Reservation, error)
	ListOverdue(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	ListPendingPickup(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	ListPendingReturn(ctx context.Context, today time.Time) ([]domain.Reservation, error)
	RevenueBetween(ctx context.Context, start, end time.Time) (int64, error)
	CountByStatus(ctx context.Context) (*StatusCounts, error)
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	// GetForUpdate locks the vehicle row for the remainder of the
	// surrounding transaction, serializing concurrent transitions that
	// touch the same vehicle.
	GetForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
	SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
	SetMileage(ctx context.Context, id int64, mileage int32) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
