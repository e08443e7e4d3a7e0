package models

import "time"

// ProjectFile is pure metadata. It has no lifecycle of its own and exists
// mostly so the access filter covers it like everything else project-scoped.
type ProjectFile struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string `gorm:"size:36;not null;index" json:"projectId"`

	FileName   string    `gorm:"size:255;not null" json:"fileName"`
	FileType   string    `gorm:"size:50" json:"fileType"`
	URL        string    `gorm:"size:1024" json:"url"`
	UploadedBy string    `gorm:"size:36;not null" json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}
