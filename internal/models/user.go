package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an identity record. The password column holds a bcrypt hash and is
// never serialized.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"not null" json:"role"`
}

// PublicUser is the projection returned by auth endpoints.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Role is the closed set of account roles.
type Role string

const (
	RoleStartup  Role = "startup"
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// ParseRole normalizes and validates a role string.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStartup, RoleInvestor, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}
