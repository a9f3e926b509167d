package itinerary

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Itinerary is a saved, shareable set of events. The slug is the only
// public lookup key; there is no numeric id in any URL.
type Itinerary struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string         `gorm:"size:32;not null;uniqueIndex" json:"slug"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	EventIDs  datatypes.JSON `gorm:"type:jsonb;not null" json:"event_ids"`
	Views     int64          `gorm:"not null;default:0" json:"views"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

// EventIDList decodes the stored identifier list. A corrupt column
// yields an empty list rather than an error.
func (i *Itinerary) EventIDList() []string {
	var ids []string
	if err := json.Unmarshal(i.EventIDs, &ids); err != nil {
		return []string{}
	}
	return ids
}

type SaveRequest struct {
	EventIDs []string `json:"event_ids"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
}

type MutateRequest struct {
	EventID string `json:"event_id" binding:"required"`
}
