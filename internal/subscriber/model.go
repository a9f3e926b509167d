package subscriber

import "time"

const (
	SourceForm      = "form"
	SourceItinerary = "itinerary"
)

// Subscriber is a newsletter recipient keyed by normalized email.
// Subscribing twice is a no-op, whatever the source.
type Subscriber struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Source    string    `gorm:"size:20;not null;default:'form'" json:"source"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}
