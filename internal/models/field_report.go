package models

import "time"

type FieldReportStatus string

const (
	FieldReportDraft    FieldReportStatus = "draft"
	FieldReportApproved FieldReportStatus = "approved"
	FieldReportSent     FieldReportStatus = "sent"
)

func (s FieldReportStatus) Valid() bool {
	switch s {
	case FieldReportDraft, FieldReportApproved, FieldReportSent:
		return true
	}
	return false
}

type FieldReviewPhoto struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type FieldReviewReport struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	ProjectID string `gorm:"size:36;not null;index" json:"projectId"`
	FirmID    string `gorm:"size:36;not null;index" json:"firmId"`
	ClientID  string `gorm:"size:36;not null" json:"clientId"`

	Title            string `gorm:"size:255;not null" json:"title"`
	UserEnteredNotes string `gorm:"type:text" json:"userEnteredNotes"`

	// Opaque text from the narrative drafting service; never parsed.
	AIDraftNarrative string `gorm:"type:text" json:"aiDraftNarrative,omitempty"`

	Photos      []FieldReviewPhoto `gorm:"serializer:json" json:"photos"`
	Disclaimers StringList         `gorm:"serializer:json" json:"disclaimers"`

	Status     FieldReportStatus `gorm:"type:varchar(20);not null" json:"status"`
	AuthorID   string            `gorm:"size:36;not null" json:"authorId"`
	ApproverID string            `gorm:"size:36" json:"approverId,omitempty"`
	ApprovedAt *time.Time        `json:"approvedAt,omitempty"`
	SentAt     *time.Time        `json:"sentAt,omitempty"`

	AuditLog []ActivityLogEntry `gorm:"-" json:"auditLog"`
}
