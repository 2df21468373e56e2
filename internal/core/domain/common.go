package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same actor and time.
func NewAuditFields(actor string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}
}
