package domain

import (
	"time"

	"github.com/google/uuid"
)

// SharedOptions is the closed set of categories a sharer can expose.
type SharedOptions struct {
	PeriodDates   bool
	Symptoms      bool
	Activities    bool
	HealthMetrics bool
}

// Any reports whether at least one category is enabled.
func (o SharedOptions) Any() bool {
	return o.PeriodDates || o.Symptoms || o.Activities || o.HealthMetrics
}

// SharingGrant authorizes the holder of its token to read the sharer's data.
// Only the SHA-256 hash of the token is persisted.
type SharingGrant struct {
	ID            uuid.UUID
	SharerID      uuid.UUID
	PartnerID     uuid.UUID
	PartnerEmail  string
	Options       SharedOptions
	TokenHash     string
	AccessGranted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// GrantView is a grant as listed to its sharer or partner.
type GrantView struct {
	ID            uuid.UUID
	Sharer        PublicProfile
	Partner       PublicProfile
	Options       SharedOptions
	AccessGranted bool
}

// SharedPayload is what a token holder receives. A nil slice means the
// category is not shared.
type SharedPayload struct {
	Sharer        PublicProfile
	Options       SharedOptions
	Periods       []Period
	Symptoms      []Symptom
	Activities    []Activity
	HealthMetrics []HealthMetric
}
