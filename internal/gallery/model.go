package gallery

import (
	"time"
)

// Gallery is a participating venue with a permanent listing, as opposed to
// a dated Event.
type Gallery struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Slug         string    `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Address      string    `gorm:"type:text" json:"address"`
	Neighborhood string    `gorm:"size:120" json:"neighborhood,omitempty"`
	Hours        string    `gorm:"size:255" json:"hours,omitempty"`
	Website      string    `gorm:"size:512" json:"website,omitempty"`
	ImageURL     string    `gorm:"size:512" json:"image_url,omitempty"`
	Approved     bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type UpsertGalleryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Address      string `json:"address" binding:"required"`
	Neighborhood string `json:"neighborhood"`
	Hours        string `json:"hours"`
	Website      string `json:"website"`
	ImageURL     string `json:"image_url"`
	Approved     *bool  `json:"approved"`
}
