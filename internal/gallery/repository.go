package gallery

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

func (r *Repository) Create(ctx context.Context, g *Gallery) error {
	return r.DB.WithContext(ctx).Create(g).Error
}

func (r *Repository) GetApprovedBySlug(ctx context.Context, slug string) (*Gallery, error) {
	var g Gallery
	err := r.DB.WithContext(ctx).
		Where("slug = ? AND approved = TRUE", slug).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Gallery, error) {
	var g Gallery
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListApproved orders alphabetically; gallery pages are a directory, not a
// schedule.
func (r *Repository) ListApproved(ctx context.Context, neighborhood string) ([]Gallery, error) {
	query := r.DB.WithContext(ctx).Where("approved = TRUE")
	if neighborhood != "" {
		query = query.Where("neighborhood = ?", neighborhood)
	}
	var galleries []Gallery
	err := query.Order("name ASC").Find(&galleries).Error
	return galleries, err
}

func (r *Repository) ListAll(ctx context.Context) ([]Gallery, error) {
	var galleries []Gallery
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&galleries).Error
	return galleries, err
}

func (r *Repository) Update(ctx context.Context, g *Gallery) error {
	return r.DB.WithContext(ctx).Save(g).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Gallery{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
