package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/logger"
	"rentman-backend/internal/pricing"
	"rentman-backend/internal/repository"
)

type reservationService struct {
	resRepo     repository.ReservationRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	tx          repository.TxManager
}

func NewReservationService(
	resRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	tx repository.TxManager,
) ReservationService {
	return &reservationService{
		resRepo:     resRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		tx:          tx,
	}
}

// dateOnly truncates a timestamp to a UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today() time.Time { return dateOnly(time.Now()) }

// validateDates enforces the strict range rules: both dates present, the
// start not in the past, and the end strictly after the start. A same-day
// request is rejected here even though downstream calculations clamp to a
// one-day minimum.
func validateDates(start, end, today time.Time) error {
	if start.IsZero() || end.IsZero() {
		return domain.Validationf("start date and end date are required")
	}
	if start.Before(today) {
		return domain.Validationf("start date cannot be in the past")
	}
	if !end.After(start) {
		return domain.Validationf("end date must be at least one day after start date")
	}
	return nil
}

func generateReservationNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:10]
	return "RES-" + suffix
}

func (s *reservationService) attachEmployee(ctx context.Context, r *domain.Reservation, employeeID *int64) error {
	if employeeID == nil {
		return nil
	}
	employee, err := s.userRepo.GetByID(ctx, *employeeID)
	if err != nil {
		return err
	}
	if !employee.IsStaff() {
		return domain.Validationf("user %d is not an employee or admin", employee.ID)
	}
	r.HandledByEmployeeID = &employee.ID
	return nil
}

func (s *reservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	var created *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		customer, err := s.userRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer.Role != domain.UserRoleCustomer {
			return domain.Validationf("user %d is not a customer", customer.ID)
		}

		// Lock the vehicle row so the availability check and the insert
		// are serialized against concurrent writers.
		vehicle, err := s.vehicleRepo.GetForUpdate(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status != domain.VehicleStatusAvailable {
			return domain.Conflictf("vehicle %d is not available for rental", vehicle.ID)
		}

		start, end := dateOnly(in.StartDate), dateOnly(in.EndDate)
		if err := validateDates(start, end, today()); err != nil {
			return err
		}

		conflicts, err := s.resRepo.CountConflicting(ctx, vehicle.ID, start, end, 0)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return domain.Conflictf("vehicle %d is not available for the selected dates", vehicle.ID)
		}

		r := &domain.Reservation{
			ReservationNumber: generateReservationNumber(),
			CustomerID:        customer.ID,
			VehicleID:         vehicle.ID,
			CompanyID:         vehicle.CompanyID,
			StartDate:         start,
			EndDate:           end,
			PickupTime:        in.PickupTime,
			ReturnTime:        in.ReturnTime,
			PickupLocation:    in.PickupLocation,
			ReturnLocation:    in.ReturnLocation,
			SpecialRequests:   in.SpecialRequests,
			Status:            domain.ReservationStatusPending,
			DailyRateCents:    vehicle.DailyRateCents,
			DepositCents:      in.DepositCents,
			InsuranceIncluded: in.InsuranceIncluded,
			AdditionalDriver:  in.AdditionalDriver,
			GPSIncluded:       in.GPSIncluded,
			ChildSeatIncluded: in.ChildSeatIncluded,
		}

		pricing.Apply(r, pricing.Compute(r.DailyRateCents, start, end, pricing.Options{
			Insurance:        in.InsuranceIncluded,
			GPS:              in.GPSIncluded,
			ChildSeat:        in.ChildSeatIncluded,
			AdditionalDriver: in.AdditionalDriver,
		}, in.DiscountCents))

		// The vehicle stays AVAILABLE until pickup; a PENDING hold does
		// not block other requests.
		if err := s.resRepo.Create(ctx, r); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		"reservation_id", created.ID,
		"reservation_number", created.ReservationNumber,
		"vehicle_id", created.VehicleID,
		"total_cents", created.TotalCents)
	return created, nil
}

func (s *reservationService) Confirm(ctx context.Context, id int64, employeeID *int64) (*domain.Reservation, error) {
	var confirmed *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != domain.ReservationStatusPending {
			return domain.InvalidStatef("only pending reservations can be confirmed, current status: %s", r.Status)
		}

		// Two PENDING holds for overlapping dates are both allowed to
		// exist; the conflict is resolved here, at confirmation, under
		// the vehicle lock. The loser gets a conflict error.
		if _, err := s.vehicleRepo.GetForUpdate(ctx, r.VehicleID); err != nil {
			return err
		}
		conflicts, err := s.resRepo.CountConflicting(ctx, r.VehicleID, r.StartDate, r.EndDate, r.ID)
		if err != nil {
			return err
		}
		if conflicts > 0 {
			return domain.Conflictf("vehicle %d is no longer available for the reserved dates", r.VehicleID)
		}

		if err := s.attachEmployee(ctx, r, employeeID); err != nil {
			return err
		}

		now := time.Now()
		r.Status = domain.ReservationStatusConfirmed
		r.ConfirmedAt = &now

		if err := s.resRepo.Update(ctx, r); err != nil {
			return err
		}
		confirmed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation confirmed", "reservation_id", confirmed.ID)
	return confirmed, nil
}

func (s *reservationService) Start(ctx context.Context, id int64, in PickupInput) (*domain.Reservation, error) {
	var started *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != domain.ReservationStatusConfirmed {
			return domain.InvalidStatef("only confirmed reservations can be started, current status: %s", r.Status)
		}

		if _, err := s.vehicleRepo.GetForUpdate(ctx, r.VehicleID); err != nil {
			return err
		}
		if err := s.attachEmployee(ctx, r, in.EmployeeID); err != nil {
			return err
		}

		pickupDate := today()
		r.Status = domain.ReservationStatusInProgress
		r.ActualStartDate = &pickupDate
		r.PickupMileage = &in.Mileage
		r.FuelLevelPickup = in.FuelLevel
		r.VehicleConditionPickup = in.Condition

		if err := s.vehicleRepo.SetStatus(ctx, r.VehicleID, domain.VehicleStatusRented); err != nil {
			return err
		}
		if err := s.resRepo.Update(ctx, r); err != nil {
			return err
		}
		started = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation started", "reservation_id", started.ID, "vehicle_id", started.VehicleID)
	return started, nil
}

func (s *reservationService) Complete(ctx context.Context, id int64, in ReturnInput) (*domain.Reservation, error) {
	var completed *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != domain.ReservationStatusInProgress {
			return domain.InvalidStatef("only in-progress reservations can be completed, current status: %s", r.Status)
		}
		if r.PickupMileage != nil && in.Mileage < *r.PickupMileage {
			return domain.Validationf("return mileage %d is below pickup mileage %d", in.Mileage, *r.PickupMileage)
		}

		if _, err := s.vehicleRepo.GetForUpdate(ctx, r.VehicleID); err != nil {
			return err
		}
		if err := s.attachEmployee(ctx, r, in.EmployeeID); err != nil {
			return err
		}

		now := time.Now()
		returnDate := today()
		r.Status = domain.ReservationStatusCompleted
		r.ActualEndDate = &returnDate
		r.CompletedAt = &now
		r.ReturnMileage = &in.Mileage
		r.FuelLevelReturn = in.FuelLevel
		r.VehicleConditionReturn = in.Condition
		if in.Notes != "" {
			r.Notes = in.Notes
		}
		if in.ExtraFeesCents > 0 {
			// Fees assessed at return are added on top of the snapshot;
			// Recompute keeps tax untouched so the total rises by
			// exactly the assessed amount.
			r.AdditionalCents += in.ExtraFeesCents
		}
		r.Recompute()

		if err := s.vehicleRepo.SetStatus(ctx, r.VehicleID, domain.VehicleStatusAvailable); err != nil {
			return err
		}
		if err := s.vehicleRepo.SetMileage(ctx, r.VehicleID, in.Mileage); err != nil {
			return err
		}
		if err := s.resRepo.Update(ctx, r); err != nil {
			return err
		}
		completed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation completed",
		"reservation_id", completed.ID,
		"vehicle_id", completed.VehicleID,
		"total_cents", completed.TotalCents)
	return completed, nil
}

func (s *reservationService) Cancel(ctx context.Context, id int64, reason string) (*domain.Reservation, error) {
	var cancelled *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !r.CanBeCancelled() {
			return domain.InvalidStatef("reservation cannot be cancelled in current status: %s", r.Status)
		}

		now := time.Now()
		r.Status = domain.ReservationStatusCancelled
		r.CancellationReason = reason
		r.CancelledAt = &now

		// Defensive: a PENDING/CONFIRMED reservation should never hold
		// the vehicle, but if it somehow does, release it.
		vehicle, err := s.vehicleRepo.GetForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status == domain.VehicleStatusRented {
			if err := s.vehicleRepo.SetStatus(ctx, r.VehicleID, domain.VehicleStatusAvailable); err != nil {
				return err
			}
		}

		if err := s.resRepo.Update(ctx, r); err != nil {
			return err
		}
		cancelled = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled", "reservation_id", cancelled.ID, "reason", reason)
	return cancelled, nil
}

func (s *reservationService) Update(ctx context.Context, id int64, in UpdateReservationInput) (*domain.Reservation, error) {
	var updated *domain.Reservation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !r.CanBeUpdated() {
			return domain.InvalidStatef("cannot update reservation in status: %s", r.Status)
		}

		start, end := dateOnly(in.StartDate), dateOnly(in.EndDate)
		if !start.Equal(r.StartDate) || !end.Equal(r.EndDate) {
			if err := validateDates(start, end, today()); err != nil {
				return err
			}
			if _, err := s.vehicleRepo.GetForUpdate(ctx, r.VehicleID); err != nil {
				return err
			}
			conflicts, err := s.resRepo.CountConflicting(ctx, r.VehicleID, start, end, r.ID)
			if err != nil {
				return err
			}
			if conflicts > 0 {
				return domain.Conflictf("vehicle %d is not available for the new dates", r.VehicleID)
			}
		}

		r.StartDate = start
		r.EndDate = end
		r.PickupTime = in.PickupTime
		r.ReturnTime = in.ReturnTime
		r.PickupLocation = in.PickupLocation
		r.ReturnLocation = in.ReturnLocation
		r.SpecialRequests = in.SpecialRequests
		r.InsuranceIncluded = in.InsuranceIncluded
		r.AdditionalDriver = in.AdditionalDriver
		r.GPSIncluded = in.GPSIncluded
		r.ChildSeatIncluded = in.ChildSeatIncluded

		// Re-price with the snapshot rate; the vehicle's current rate is
		// irrelevant after creation.
		pricing.Apply(r, pricing.Compute(r.DailyRateCents, start, end, pricing.Options{
			Insurance:        in.InsuranceIncluded,
			GPS:              in.GPSIncluded,
			ChildSeat:        in.ChildSeatIncluded,
			AdditionalDriver: in.AdditionalDriver,
		}, r.DiscountCents))

		if err := s.resRepo.Update(ctx, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation updated", "reservation_id", updated.ID)
	return updated, nil
}

func (s *reservationService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != domain.ReservationStatusPending {
			return domain.InvalidStatef("only pending reservations can be deleted, current status: %s", r.Status)
		}
		return s.resRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info("Reservation deleted", "reservation_id", id)
	return nil
}

func (s *reservationService) IsVehicleAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	conflicts, err := s.resRepo.CountConflicting(ctx, vehicleID, dateOnly(start), dateOnly(end), 0)
	if err != nil {
		return false, err
	}
	return conflicts == 0, nil
}

func (s *reservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.resRepo.GetByID(ctx, id)
}

func (s *reservationService) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	return s.resRepo.GetByNumber(ctx, number)
}

func (s *reservationService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error) {
	return s.resRepo.ListByCustomer(ctx, customerID)
}

func (s *reservationService) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	return s.resRepo.ListByVehicle(ctx, vehicleID)
}

func (s *reservationService) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return s.resRepo.ListByStatus(ctx, status)
}
