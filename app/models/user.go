package models

import "gorm.io/gorm"

// Roles recognised by the access layer.
const (
	RoleAdmin = "admin"
	RoleKasir = "kasir"
)

// User is an operator of the point of sale: either an admin who manages
// the catalog, or a kasir (cashier) who rings up sales.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Role     string `gorm:"size:50;default:kasir" json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
