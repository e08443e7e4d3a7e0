package models

import "time"

type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type LineItems []LineItem

// Total is the derived document total; it is recomputed on every write and
// never settable by callers.
func (items LineItems) Total() float64 {
	var sum float64
	for _, it := range items {
		sum += it.Quantity * it.UnitPrice
	}
	return sum
}

type ProposalStatus string

const (
	ProposalDraft ProposalStatus = "draft"
	ProposalSent  ProposalStatus = "sent"
)

func (s ProposalStatus) Valid() bool {
	return s == ProposalDraft || s == ProposalSent
}

type Proposal struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string `gorm:"size:36;not null;index" json:"projectId"`
	FirmID    string `gorm:"size:36;not null;index" json:"firmId"`
	ClientID  string `gorm:"size:36;not null" json:"clientId"`

	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	LineItems   LineItems      `gorm:"serializer:json" json:"lineItems"`
	Total       float64        `gorm:"not null" json:"total"`
	Status      ProposalStatus `gorm:"type:varchar(20);not null" json:"status"`
	SentAt      *time.Time     `json:"sentAt,omitempty"`

	AuditLog []ActivityLogEntry `gorm:"-" json:"auditLog"`
}
