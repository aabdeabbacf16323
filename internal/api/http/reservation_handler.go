package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rentman-backend/internal/domain"
	"rentman-backend/internal/service"
)

const dateLayout = "2006-01-02"

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.Validationf("%s is required", field)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid %s, expected yyyy-mm-dd", field)
	}
	return t, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, domain.Validationf("invalid %s", name)
	}
	return id, nil
}

// staffEmployeeID returns the acting employee's id when the caller is
// staff; customer-initiated calls carry no handling employee.
func staffEmployeeID(r *http.Request) *int64 {
	if actor, ok := ActorFromContext(r.Context()); ok && actor.IsStaff() {
		return &actor.UserID
	}
	return nil
}

type createReservationRequest struct {
	CustomerID int64  `json:"customer_id"`
	VehicleID  int64  `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	ReturnTime      *time.Time `json:"return_time,omitempty"`
	PickupLocation  string     `json:"pickup_location"`
	ReturnLocation  string     `json:"return_location"`
	SpecialRequests string     `json:"special_requests"`

	InsuranceIncluded bool `json:"insurance_included"`
	AdditionalDriver  bool `json:"additional_driver"`
	GPSIncluded       bool `json:"gps_included"`
	ChildSeatIncluded bool `json:"child_seat_included"`

	DiscountCents int64 `json:"discount_cents"`
	DepositCents  int64 `json:"deposit_cents"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}

	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}

	customerID := req.CustomerID
	if actor, ok := ActorFromContext(r.Context()); ok && !actor.IsStaff() {
		// Customers can only book for themselves.
		customerID = actor.UserID
	}

	res, err := h.svc.Create(r.Context(), service.CreateReservationInput{
		CustomerID:        customerID,
		VehicleID:         req.VehicleID,
		StartDate:         start,
		EndDate:           end,
		PickupTime:        req.PickupTime,
		ReturnTime:        req.ReturnTime,
		PickupLocation:    req.PickupLocation,
		ReturnLocation:    req.ReturnLocation,
		SpecialRequests:   req.SpecialRequests,
		InsuranceIncluded: req.InsuranceIncluded,
		AdditionalDriver:  req.AdditionalDriver,
		GPSIncluded:       req.GPSIncluded,
		ChildSeatIncluded: req.ChildSeatIncluded,
		DiscountCents:     req.DiscountCents,
		DepositCents:      req.DepositCents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetByNumber(r.Context(), mux.Vars(r)["number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.Confirm(r.Context(), id, staffEmployeeID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type startRequest struct {
	PickupMileage int32  `json:"pickup_mileage"`
	FuelLevel     string `json:"fuel_level"`
	Condition     string `json:"condition"`
}

func (h *ReservationHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	res, err := h.svc.Start(r.Context(), id, service.PickupInput{
		Mileage:    req.PickupMileage,
		FuelLevel:  req.FuelLevel,
		Condition:  req.Condition,
		EmployeeID: staffEmployeeID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type completeRequest struct {
	ReturnMileage  int32  `json:"return_mileage"`
	FuelLevel      string `json:"fuel_level"`
	Condition      string `json:"condition"`
	ExtraFeesCents int64  `json:"extra_fees_cents"`
	Notes          string `json:"notes"`
}

func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	res, err := h.svc.Complete(r.Context(), id, service.ReturnInput{
		Mileage:        req.ReturnMileage,
		FuelLevel:      req.FuelLevel,
		Condition:      req.Condition,
		ExtraFeesCents: req.ExtraFeesCents,
		Notes:          req.Notes,
		EmployeeID:     staffEmployeeID(r),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req cancelRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	res, err := h.svc.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type updateReservationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	PickupTime      *time.Time `json:"pickup_time,omitempty"`
	ReturnTime      *time.Time `json:"return_time,omitempty"`
	PickupLocation  string     `json:"pickup_location"`
	ReturnLocation  string     `json:"return_location"`
	SpecialRequests string     `json:"special_requests"`

	InsuranceIncluded bool `json:"insurance_included"`
	AdditionalDriver  bool `json:"additional_driver"`
	GPSIncluded       bool `json:"gps_included"`
	ChildSeatIncluded bool `json:"child_seat_included"`
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validationf("invalid request body"))
		return
	}
	start, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.svc.Update(r.Context(), id, service.UpdateReservationInput{
		StartDate:         start,
		EndDate:           end,
		PickupTime:        req.PickupTime,
		ReturnTime:        req.ReturnTime,
		PickupLocation:    req.PickupLocation,
		ReturnLocation:    req.ReturnLocation,
		SpecialRequests:   req.SpecialRequests,
		InsuranceIncluded: req.InsuranceIncluded,
		AdditionalDriver:  req.AdditionalDriver,
		GPSIncluded:       req.GPSIncluded,
		ChildSeatIncluded: req.ChildSeatIncluded,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReservationHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId")
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := h.svc.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReservationHandler) ListByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleId")
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := h.svc.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReservationHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.ReservationStatus(mux.Vars(r)["status"])
	switch status {
	case domain.ReservationStatusPending, domain.ReservationStatusConfirmed,
		domain.ReservationStatusInProgress, domain.ReservationStatusCompleted,
		domain.ReservationStatusCancelled:
	default:
		writeError(w, domain.Validationf("invalid reservation status: %s", status))
		return
	}
	list, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type availabilityResponse struct {
	VehicleID int64  `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := pathID(r, "vehicleId")
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := parseDate(r.URL.Query().Get("start_date"), "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDate(r.URL.Query().Get("end_date"), "end_date")
	if err != nil {
		writeError(w, err)
		return
	}
	available, err := h.svc.IsVehicleAvailable(r.Context(), vehicleID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{
		VehicleID: vehicleID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		Available: available,
	})
}
