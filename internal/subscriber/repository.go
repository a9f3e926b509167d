package subscriber

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Upsert inserts the subscriber unless the email already exists. Returns
// whether a new row was created.
func (r *Repository) Upsert(ctx context.Context, sub *Subscriber) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(sub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	res := r.DB.WithContext(ctx).Where("email = ?", email).Delete(&Subscriber{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	var subs []Subscriber
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	return subs, err
}

// ListEmails returns every subscriber address, for newsletter fan-out.
func (r *Repository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.DB.WithContext(ctx).
		Model(&Subscriber{}).
		Order("created_at ASC").
		Pluck("email", &emails).Error
	return emails, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Subscriber{}).Count(&count).Error
	return count, err
}
