package itinerary

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the persistence surface the service depends on; tests
// swap in an in-memory fake.
type Repository interface {
	Create(ctx context.Context, it *Itinerary) error
	GetBySlug(ctx context.Context, slug string) (*Itinerary, error)
	IncrementViews(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
}

type GormRepository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) Create(ctx context.Context, it *Itinerary) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *GormRepository) GetBySlug(ctx context.Context, slug string) (*Itinerary, error) {
	var it Itinerary
	if err := r.DB.WithContext(ctx).First(&it, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// IncrementViews bumps the counter in a single UPDATE so concurrent
// resolutions of the same slug never lose a count.
func (r *GormRepository) IncrementViews(ctx context.Context, slug string) error {
	return r.DB.WithContext(ctx).
		Model(&Itinerary{}).
		Where("slug = ?", slug).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Itinerary{}).Count(&count).Error
	return count, err
}
