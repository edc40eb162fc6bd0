package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cycle length bounds accepted for an explicit user override.
const (
	DefaultCycleLength = 28
	MinCycleLength     = 21
	MaxCycleLength     = 35
)

// Age bounds for the optional profile age.
const (
	MinAge = 10
	MaxAge = 100
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Age          *int
	// CycleLength is nil until the user sets it or a prediction writes it back.
	CycleLength *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveCycleLength returns the stored cycle length or fallback when unset.
func (u User) EffectiveCycleLength(fallback int) int {
	if u.CycleLength != nil && *u.CycleLength > 0 {
		return *u.CycleLength
	}
	return fallback
}

// Public returns the profile fields safe to expose to a partner.
func (u User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

// PublicProfile is what a partner may see about a sharer.
type PublicProfile struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// ProfileUpdate lists the profile fields to change; nil fields are left as is.
type ProfileUpdate struct {
	Name        *string
	Age         *int
	CycleLength *int
}

// IsEmpty reports whether no field is present.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.CycleLength == nil
}
