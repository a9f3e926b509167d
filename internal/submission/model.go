package submission

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// EventSubmission is a public proposal for an Event. Approval never
// converts a submission in place: it spawns a fresh Event record (new
// identifier, new slug) and only flips the submission status.
type EventSubmission struct {
	ID             string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	Host           string     `gorm:"size:255" json:"host"`
	Venue          string     `gorm:"size:255;not null" json:"venue"`
	Address        string     `gorm:"type:text" json:"address"`
	Neighborhood   string     `gorm:"size:120" json:"neighborhood,omitempty"`
	Price          string     `gorm:"size:120" json:"price,omitempty"`
	TicketURL      string     `gorm:"size:512" json:"ticket_url,omitempty"`
	ImageURL       string     `gorm:"size:512" json:"image_url,omitempty"`
	Date           time.Time  `gorm:"not null" json:"date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Category       string     `gorm:"size:40;not null" json:"category"`
	SubmitterName  string     `gorm:"size:255;not null" json:"submitter_name"`
	SubmitterEmail string     `gorm:"size:255;not null" json:"submitter_email"`
	Status         string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	EventID        *string    `gorm:"type:uuid" json:"event_id,omitempty"` // set when approved
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type CreateSubmissionRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Host           string `json:"host"`
	Venue          string `json:"venue" binding:"required"`
	Address        string `json:"address"`
	Neighborhood   string `json:"neighborhood"`
	Price          string `json:"price"`
	TicketURL      string `json:"ticket_url"`
	ImageURL       string `json:"image_url"`
	Date           string `json:"date" binding:"required"` // RFC 3339
	EndDate        string `json:"end_date"`
	Category       string `json:"category" binding:"required"`
	SubmitterName  string `json:"submitter_name" binding:"required"`
	SubmitterEmail string `json:"submitter_email" binding:"required"`
}

// ApprovalRequest flips a pending submission one way or the other.
type ApprovalRequest struct {
	Status string `json:"status" binding:"required"` // approved | rejected
	Reason string `json:"reason"`
}
