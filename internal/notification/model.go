package notification

import (
	"time"

	"gorm.io/datatypes"
)

const (
	KindConfirmation   = "itinerary_confirmation"
	KindOperatorNotice = "operator_notice"
	KindCampaign       = "newsletter_campaign"
	KindDailyDigest    = "daily_digest"
)

// NotificationLog records every dispatch attempt so the admin dashboard
// can show what went out and what failed.
type NotificationLog struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	Kind       string         `gorm:"size:40;not null;index" json:"kind"`
	Subject    string         `gorm:"size:255;not null" json:"subject"`
	Recipients datatypes.JSON `gorm:"type:jsonb" json:"recipients"`
	Status     string         `gorm:"size:20;not null" json:"status"` // sent | failed
	Error      string         `gorm:"type:text" json:"error,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}
