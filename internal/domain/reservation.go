package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusInProgress ReservationStatus = "IN_PROGRESS"
	ReservationStatusCompleted  ReservationStatus = "COMPLETED"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
	// NO_SHOW and OVERDUE exist for wire compatibility with older clients.
	// No transition ever persists them; both are derived reporting labels.
	ReservationStatusNoShow  ReservationStatus = "NO_SHOW"
	ReservationStatusOverdue ReservationStatus = "OVERDUE"
)

// Reservation is the aggregate root of the rental core. All monetary
// fields are integer cents; all pricing fields are a snapshot captured at
// creation time and never re-read from the vehicle.
type Reservation struct {
	ID                int64  `json:"id"`
	ReservationNumber string `json:"reservation_number"`

	CustomerID int64 `json:"customer_id"`
	VehicleID  int64 `json:"vehicle_id"`
	CompanyID  int64 `json:"company_id"`

	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	ActualStartDate *time.Time `json:"actual_start_date,omitempty"`
	ActualEndDate   *time.Time `json:"actual_end_date,omitempty"`
	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	ReturnTime      *time.Time `json:"return_time,omitempty"`

	Status ReservationStatus `json:"status"`

	// Pricing snapshot.
	DailyRateCents  int64 `json:"daily_rate_cents"`
	TotalDays       int32 `json:"total_days"`
	SubtotalCents   int64 `json:"subtotal_cents"`
	TaxCents        int64 `json:"tax_cents"`
	InsuranceCents  int64 `json:"insurance_cents"`
	AdditionalCents int64 `json:"additional_fees_cents"`
	DiscountCents   int64 `json:"discount_cents"`
	TotalCents      int64 `json:"total_cents"`
	DepositCents    int64 `json:"deposit_cents"`
	AmountPaidCents int64 `json:"amount_paid_cents"`

	// Vehicle condition capture at pickup and return.
	PickupMileage          *int32 `json:"pickup_mileage,omitempty"`
	ReturnMileage          *int32 `json:"return_mileage,omitempty"`
	FuelLevelPickup        string `json:"fuel_level_pickup,omitempty"`
	FuelLevelReturn        string `json:"fuel_level_return,omitempty"`
	VehicleConditionPickup string `json:"vehicle_condition_pickup,omitempty"`
	VehicleConditionReturn string `json:"vehicle_condition_return,omitempty"`

	// Add-on selections. Each drives a fixed per-day fee.
	InsuranceIncluded bool `json:"insurance_included"`
	AdditionalDriver  bool `json:"additional_driver"`
	GPSIncluded       bool `json:"gps_included"`
	ChildSeatIncluded bool `json:"child_seat_included"`

	PickupLocation     string `json:"pickup_location,omitempty"`
	ReturnLocation     string `json:"return_location,omitempty"`
	SpecialRequests    string `json:"special_requests,omitempty"`
	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	HandledByEmployeeID *int64 `json:"handled_by_employee_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DaysBetween returns the rental length of an inclusive calendar range.
// The length is end-start in whole days; a same-day range counts as one.
func DaysBetween(start, end time.Time) int32 {
	days := int32(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// Recompute recalculates the derived fields from their inputs: totalDays
// from the date range and the total from the stored component amounts.
// Tax is NOT recomputed here; it is assigned by the pricing step at create
// and update only, so adding fees at completion raises the total by
// exactly the fee amount.
func (r *Reservation) Recompute() {
	r.TotalDays = DaysBetween(r.StartDate, r.EndDate)
	r.SubtotalCents = r.DailyRateCents * int64(r.TotalDays)
	r.TotalCents = r.SubtotalCents + r.TaxCents + r.InsuranceCents + r.AdditionalCents - r.DiscountCents
}

// IsActive reports whether the reservation currently excludes other
// bookings of the same vehicle.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusConfirmed || r.Status == ReservationStatusInProgress
}

func (r *Reservation) CanBeCancelled() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

func (r *Reservation) CanBeUpdated() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// IsOverdueAt reports the derived OVERDUE label: an exclusion-holding
// reservation whose end date has passed.
func (r *Reservation) IsOverdueAt(today time.Time) bool {
	return r.IsActive() && r.EndDate.Before(today)
}

func (r *Reservation) RemainingCents() int64 {
	return r.TotalCents - r.AmountPaidCents
}

func (r *Reservation) IsFullyPaid() bool {
	return r.RemainingCents() <= 0
}
