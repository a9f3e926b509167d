package submission

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

func (r *Repository) Create(ctx context.Context, sub *EventSubmission) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*EventSubmission, error) {
	var sub EventSubmission
	if err := r.DB.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) List(ctx context.Context, status string) ([]EventSubmission, error) {
	var subs []EventSubmission
	q := r.DB.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *Repository) Update(ctx context.Context, sub *EventSubmission) error {
	return r.DB.WithContext(ctx).Save(sub).Error
}

func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&EventSubmission{}).
		Where("status = ?", StatusPending).
		Count(&count).Error
	return count, err
}
