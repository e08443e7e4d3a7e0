package models

import "time"

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

type Invoice struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID  string `gorm:"size:36;not null;index" json:"projectId"`
	FirmID     string `gorm:"size:36;not null;index" json:"firmId"`
	ClientID   string `gorm:"size:36;not null" json:"clientId"`
	ProposalID string `gorm:"size:36" json:"proposalId,omitempty"`

	LineItems   LineItems     `gorm:"serializer:json" json:"lineItems"`
	Taxes       float64       `json:"taxes"`
	Total       float64       `gorm:"not null" json:"total"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	Status      InvoiceStatus `gorm:"type:varchar(20);not null" json:"status"`
	SentAt      *time.Time    `json:"sentAt,omitempty"`
	PaidAt      *time.Time    `json:"paidAt,omitempty"`

	AuditLog []ActivityLogEntry `gorm:"-" json:"auditLog"`
}
