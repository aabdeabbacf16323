package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, reservation_number, customer_id, vehicle_id, company_id,
	start_date, end_date, actual_start_date, actual_end_date, pickup_time, return_time,
	status, daily_rate_cents, total_days, subtotal_cents, tax_cents, insurance_cents,
	additional_fees_cents, discount_cents, total_cents, deposit_cents, amount_paid_cents,
	pickup_mileage, return_mileage, fuel_level_pickup, fuel_level_return,
	vehicle_condition_pickup, vehicle_condition_return,
	insurance_included, additional_driver, gps_included, child_seat_included,
	pickup_location, return_location, special_requests, notes, cancellation_reason,
	handled_by_employee_id, created_at, updated_at, confirmed_at, cancelled_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	r := &domain.Reservation{}
	err := row.Scan(
		&r.ID, &r.ReservationNumber, &r.CustomerID, &r.VehicleID, &r.CompanyID,
		&r.StartDate, &r.EndDate, &r.ActualStartDate, &r.ActualEndDate, &r.PickupTime, &r.ReturnTime,
		&r.Status, &r.DailyRateCents, &r.TotalDays, &r.SubtotalCents, &r.TaxCents, &r.InsuranceCents,
		&r.AdditionalCents, &r.DiscountCents, &r.TotalCents, &r.DepositCents, &r.AmountPaidCents,
		&r.PickupMileage, &r.ReturnMileage, &r.FuelLevelPickup, &r.FuelLevelReturn,
		&r.VehicleConditionPickup, &r.VehicleConditionReturn,
		&r.InsuranceIncluded, &r.AdditionalDriver, &r.GPSIncluded, &r.ChildSeatIncluded,
		&r.PickupLocation, &r.ReturnLocation, &r.SpecialRequests, &r.Notes, &r.CancellationReason,
		&r.HandledByEmployeeID, &r.CreatedAt, &r.UpdatedAt, &r.ConfirmedAt, &r.CancelledAt, &r.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (repo *reservationRepository) collect(rows *sql.Rows) ([]domain.Reservation, error) {
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (repo *reservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	query := `INSERT INTO reservations (reservation_number, customer_id, vehicle_id, company_id,
		start_date, end_date, pickup_time, return_time, status,
		daily_rate_cents, total_days, subtotal_cents, tax_cents, insurance_cents,
		additional_fees_cents, discount_cents, total_cents, deposit_cents, amount_paid_cents,
		insurance_included, additional_driver, gps_included, child_seat_included,
		pickup_location, return_location, special_requests,
		created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING id`
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return q(ctx, repo.db).QueryRowContext(ctx, query,
		r.ReservationNumber, r.CustomerID, r.VehicleID, r.CompanyID,
		r.StartDate, r.EndDate, r.PickupTime, r.ReturnTime, r.Status,
		r.DailyRateCents, r.TotalDays, r.SubtotalCents, r.TaxCents, r.InsuranceCents,
		r.AdditionalCents, r.DiscountCents, r.TotalCents, r.DepositCents, r.AmountPaidCents,
		r.InsuranceIncluded, r.AdditionalDriver, r.GPSIncluded, r.ChildSeatIncluded,
		r.PickupLocation, r.ReturnLocation, r.SpecialRequests,
		r.CreatedAt, r.UpdatedAt,
	).Scan(&r.ID)
}

func (repo *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	r, err := scanReservation(q(ctx, repo.db).QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("reservation %d not found", id)
	}
	return r, err
}

func (repo *reservationRepository) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_number = $1`
	r, err := scanReservation(q(ctx, repo.db).QueryRowContext(ctx, query, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("reservation %s not found", number)
	}
	return r, err
}

func (repo *reservationRepository) Update(ctx context.Context, r *domain.Reservation) error {
	query := `UPDATE reservations SET
		start_date=$1, end_date=$2, actual_start_date=$3, actual_end_date=$4,
		pickup_time=$5, return_time=$6, status=$7,
		total_days=$8, subtotal_cents=$9, tax_cents=$10, insurance_cents=$11,
		additional_fees_cents=$12, discount_cents=$13, total_cents=$14,
		deposit_cents=$15, amount_paid_cents=$16,
		pickup_mileage=$17, return_mileage=$18, fuel_level_pickup=$19, fuel_level_return=$20,
		vehicle_condition_pickup=$21, vehicle_condition_return=$22,
		insurance_included=$23, additional_driver=$24, gps_included=$25, child_seat_included=$26,
		pickup_location=$27, return_location=$28, special_requests=$29, notes=$30,
		cancellation_reason=$31, handled_by_employee_id=$32,
		updated_at=$33, confirmed_at=$34, cancelled_at=$35, completed_at=$36
		WHERE id=$37`
	r.UpdatedAt = time.Now()
	_, err := q(ctx, repo.db).ExecContext(ctx, query,
		r.StartDate, r.EndDate, r.ActualStartDate, r.ActualEndDate,
		r.PickupTime, r.ReturnTime, r.Status,
		r.TotalDays, r.SubtotalCents, r.TaxCents, r.InsuranceCents,
		r.AdditionalCents, r.DiscountCents, r.TotalCents,
		r.DepositCents, r.AmountPaidCents,
		r.PickupMileage, r.ReturnMileage, r.FuelLevelPickup, r.FuelLevelReturn,
		r.VehicleConditionPickup, r.VehicleConditionReturn,
		r.InsuranceIncluded, r.AdditionalDriver, r.GPSIncluded, r.ChildSeatIncluded,
		r.PickupLocation, r.ReturnLocation, r.SpecialRequests, r.Notes,
		r.CancellationReason, r.HandledByEmployeeID,
		r.UpdatedAt, r.ConfirmedAt, r.CancelledAt, r.CompletedAt,
		r.ID,
	)
	return err
}

func (repo *reservationRepository) Delete(ctx context.Context, id int64) error {
	_, err := q(ctx, repo.db).ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

func (repo *reservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE vehicle_id = $1 ORDER BY start_date DESC`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status = $1 ORDER BY created_at DESC`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) CountConflicting(ctx context.Context, vehicleID int64, start, end time.Time, excludeID int64) (int64, error) {
	// Inclusive-day overlap: ranges touching on the same day conflict.
	query := `SELECT COUNT(*) FROM reservations
		WHERE vehicle_id = $1
		  AND status IN ('CONFIRMED', 'IN_PROGRESS')
		  AND NOT (end_date < $2 OR start_date > $3)
		  AND id <> $4`
	var count int64
	err := q(ctx, repo.db).QueryRowContext(ctx, query, vehicleID, start, end, excludeID).Scan(&count)
	return count, err
}

func (repo *reservationRepository) ListActive(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status IN ('CONFIRMED', 'IN_PROGRESS')
		  AND start_date <= $1 AND end_date >= $1`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListUpcoming(ctx context.Context, from, until time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status = 'CONFIRMED'
		  AND start_date BETWEEN $1 AND $2
		ORDER BY start_date ASC`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, from, until)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListOverdue(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status IN ('CONFIRMED', 'IN_PROGRESS')
		  AND end_date < $1`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListPendingPickup(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status = 'CONFIRMED' AND start_date = $1`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) ListPendingReturn(ctx context.Context, today time.Time) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status = 'IN_PROGRESS' AND end_date = $1`
	rows, err := q(ctx, repo.db).QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	return repo.collect(rows)
}

func (repo *reservationRepository) RevenueBetween(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(total_cents), 0) FROM reservations
		WHERE status = 'COMPLETED' AND completed_at BETWEEN $1 AND $2`
	var total int64
	err := q(ctx, repo.db).QueryRowContext(ctx, query, start, end).Scan(&total)
	return total, err
}

func (repo *reservationRepository) CountByStatus(ctx context.Context) (*repository.StatusCounts, error) {
	query := `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'PENDING'),
		COUNT(*) FILTER (WHERE status = 'CONFIRMED'),
		COUNT(*) FILTER (WHERE status = 'IN_PROGRESS'),
		COUNT(*) FILTER (WHERE status = 'COMPLETED'),
		COUNT(*) FILTER (WHERE status = 'CANCELLED')
		FROM reservations`
	counts := &repository.StatusCounts{}
	err := q(ctx, repo.db).QueryRowContext(ctx, query).Scan(
		&counts.Total, &counts.Pending, &counts.Confirmed,
		&counts.InProgress, &counts.Completed, &counts.Cancelled,
	)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
