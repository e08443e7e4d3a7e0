package models

import "time"

type EntryType string

const (
	EntryProject     EntryType = "project"
	EntryProposal    EntryType = "proposal"
	EntryInvoice     EntryType = "invoice"
	EntryFieldReport EntryType = "field-report"
	EntryFile        EntryType = "file"
	EntryStatus      EntryType = "status"
)

type RelatedEntity struct {
	ID         string `json:"id"`
	EntityType string `json:"entityType"`
}

// ActivityLogEntry rows back both the project activity feed and the per-entity
// audit trails. Exactly one of ProjectID (feed rows) or EntityType+EntityID
// (audit rows) is set. Rows are never updated or deleted; newest-first
// ordering is by descending Seq, so same-timestamp entries keep insertion
// order.
type ActivityLogEntry struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"uniqueIndex;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Type    EntryType `gorm:"type:varchar(20);not null" json:"type"`
	Message string    `gorm:"type:text;not null" json:"message"`
	UserID  string    `gorm:"size:36;not null" json:"userId"`

	Related *RelatedEntity `gorm:"serializer:json" json:"relatedEntity,omitempty"`

	ProjectID  string `gorm:"size:36;index" json:"-"`
	EntityType string `gorm:"size:20;index:idx_audit_entity" json:"-"`
	EntityID   string `gorm:"size:36;index:idx_audit_entity" json:"-"`
}
