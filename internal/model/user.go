package model

import "time"

// Roles recognized by the authorization checks.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleUser    = "USER"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User — учётная запись. Владеет Items и Inventories.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:USER" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
