package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusRented       VehicleStatus = "RENTED"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// Vehicle is the slice of the fleet entity the reservation core reads.
// Fleet CRUD, search and maintenance records live outside this module.
type Vehicle struct {
	ID             int64         `json:"id"`
	CompanyID      int64         `json:"company_id"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	LicensePlate   string        `json:"license_plate"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Mileage        int32         `json:"mileage"`
	Status         VehicleStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
