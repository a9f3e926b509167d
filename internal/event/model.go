package event

import (
	"time"
)

// Event categories are a fixed set; anything else is rejected at the edge.
const (
	CategoryGallery     = "gallery"
	CategoryExhibition  = "exhibition"
	CategoryParty       = "party"
	CategoryPerformance = "performance"
	CategoryTalk        = "talk"
	CategoryWorkshop    = "workshop"
	CategoryFair        = "fair"
	CategoryOther       = "other"
)

var Categories = []string{
	CategoryGallery, CategoryExhibition, CategoryParty, CategoryPerformance,
	CategoryTalk, CategoryWorkshop, CategoryFair, CategoryOther,
}

// ValidCategory reports whether s is one of the fixed categories.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Slug         string     `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Host         string     `gorm:"size:255" json:"host"`
	Venue        string     `gorm:"size:255;not null" json:"venue"`
	Address      string     `gorm:"type:text" json:"address"`
	Neighborhood string     `gorm:"size:120" json:"neighborhood,omitempty"`
	Price        string     `gorm:"size:120" json:"price,omitempty"`
	TicketURL    string     `gorm:"size:512" json:"ticket_url,omitempty"`
	ImageURL     string     `gorm:"size:512" json:"image_url,omitempty"`
	Date         time.Time  `gorm:"not null;index" json:"date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Category     string     `gorm:"size:40;not null;index" json:"category"`
	Featured     bool       `gorm:"default:false" json:"featured"`
	Approved     bool       `gorm:"default:false;index" json:"approved"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Summary is the subset needed to render an itinerary line.
type Summary struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue"`
	Category string    `json:"category"`
}

// Summary projects the fields the itinerary pages need.
func (e *Event) Summary() Summary {
	return Summary{
		ID:       e.ID,
		Slug:     e.Slug,
		Name:     e.Name,
		Date:     e.Date,
		Venue:    e.Venue,
		Category: e.Category,
	}
}

// ============================
// 🟡 Create Event Request (admin)
type CreateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Host         string `json:"host"`
	Venue        string `json:"venue" binding:"required"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Price        string `json:"price"`
	TicketURL    string `json:"ticket_url"`
	ImageURL     string `json:"image_url"`
	Date         string `json:"date" binding:"required"` // RFC 3339
	EndDate      string `json:"end_date"`
	Category     string `json:"category" binding:"required"`
	Featured     bool   `json:"featured"`
	Approved     *bool  `json:"approved"`
}

// ============================
// 🟠 Update Event Request (admin; date fields excluded, see ShiftDates)
type UpdateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Host         string `json:"host"`
	Venue        string `json:"venue" binding:"required"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Price        string `json:"price"`
	TicketURL    string `json:"ticket_url"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category" binding:"required"`
	Approved     *bool  `json:"approved"`
}

// ShiftDatesRequest is the one maintenance operation allowed to move an
// event after creation.
type ShiftDatesRequest struct {
	Date    string `json:"date" binding:"required"` // RFC 3339
	EndDate string `json:"end_date"`
}

// ListFilter narrows the public listing.
type ListFilter struct {
	Category     string
	Neighborhood string
	Search       string
	Limit        int
	Offset       int
}
