package domain

import "time"

// Role is the closed set of capability classes a user can hold.
// Keeping it a dedicated type makes role comparisons exact by construction;
// the store never sees anything outside these four values.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleExporter  Role = "exporter"
	RoleImporter  Role = "importer"
	RoleInspector Role = "inspector"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleExporter, RoleImporter, RoleInspector:
		return Role(s), true
	}
	return "", false
}

// User models a registered actor. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
