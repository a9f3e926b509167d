package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(ctx context.Context, nl *NotificationLog) error {
	return r.DB.WithContext(ctx).Create(nl).Error
}

func (r *Repository) List(ctx context.Context, kind string, limit, offset int) ([]NotificationLog, error) {
	var logs []NotificationLog
	q := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
