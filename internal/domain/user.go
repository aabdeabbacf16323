package domain

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleAdmin    UserRole = "ADMIN"
)

// User is the narrow view the core needs for role checks. Account
// management and authentication are handled outside this module.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsStaff reports whether the user may confirm and handle reservations.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleEmployee || u.Role == UserRoleAdmin
}
