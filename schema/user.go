package schema

import (
	"time"
)

const (
	RoleAdmin     = "Admin"
	RoleUser      = "User"
	RoleDonor     = "Donor"
	RoleResponder = "Responder"
)

// ValidRole reports whether a role is part of the closed role vocabulary.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleDonor, RoleResponder:
		return true
	}
	return false
}

// User is a registered identity. Users are never hard-deleted; an admin
// flips IsActive instead.
type User struct {
	ID               int        `json:"user_id" gorm:"primary_key"`
	Email            string     `json:"email" gorm:"unique_index"`
	PasswordHash     string     `json:"-"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	PhoneNumber      string     `json:"phone_number"`
	Address          string     `json:"address"`
	EmergencyContact string     `json:"emergency_contact"`
	Role             string     `json:"role" sql:"default:'User'"`
	IsActive         bool       `json:"is_active" sql:"default:true"`
	CreatedDate      time.Time  `json:"created_date"`
	LastLoginDate    *time.Time `json:"last_login_date"`
}

// Name returns the display name used in tokens and notifications.
func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}
