package models

import "time"

type FirmSettings struct {
	LogoURL      string `json:"logoUrl,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
}

type Firm struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name     string       `gorm:"size:255;not null" json:"name"`
	Settings FirmSettings `gorm:"serializer:json" json:"settings"`
}
