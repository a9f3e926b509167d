package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) Create(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// ===========================
// 🔍 Get Event By Slug (public path: approved only)
func (r *Repository) GetApprovedBySlug(ctx context.Context, slug string) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).
		Where("slug = ? AND approved = TRUE", slug).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByID fetches regardless of approval, for admin paths.
func (r *Repository) GetByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 📄 List Approved Events with filters
func (r *Repository) ListApproved(ctx context.Context, f ListFilter) ([]Event, error) {
	query := r.DB.WithContext(ctx).Where("approved = TRUE")

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Neighborhood != "" {
		query = query.Where("neighborhood = ?", f.Neighborhood)
	}
	if f.Search != "" {
		ilike := "%" + f.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR venue ILIKE ?", ilike, ilike, ilike)
	}

	var events []Event
	err := query.
		Order("date ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&events).Error
	return events, err
}

// ===========================
// ⭐ Featured approved events, soonest first
func (r *Repository) ListFeatured(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Where("approved = TRUE AND featured = TRUE").
		Order("date ASC").
		Find(&events).Error
	return events, err
}

// ===========================
// 📆 Approved events whose start falls on the given local day
func (r *Repository) ListForDay(ctx context.Context, day time.Time, loc *time.Location) ([]Event, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)

	var events []Event
	err := r.DB.WithContext(ctx).
		Where("approved = TRUE AND date >= ? AND date < ?", start, end).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

// ===========================
// 📄 Admin listing, unapproved included
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	return events, err
}

// ===========================
// 🔎 Resolve an identifier list to approved events, date ascending.
// Unknown or unapproved identifiers simply do not come back.
func (r *Repository) FindApprovedByIDs(ctx context.Context, ids []string) ([]Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []Event
	err := r.DB.WithContext(ctx).
		Where("id IN ? AND approved = TRUE", ids).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

// ===========================
// 🛠 Update Event
func (r *Repository) Update(ctx context.Context, e *Event) error {
	return r.DB.WithContext(ctx).Save(e).Error
}

// SetFeatured flips only the featured flag.
func (r *Repository) SetFeatured(ctx context.Context, id string, featured bool) error {
	res := r.DB.WithContext(ctx).Model(&Event{}).
		Where("id = ?", id).
		Update("featured", featured)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===========================
// ❌ Delete Event
func (r *Repository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===========================
// 🔢 Counts for the admin dashboard
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Event{}).Count(&count).Error
	return count, err
}

func (r *Repository) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&Event{}).
		Where("approved = TRUE").
		Count(&count).Error
	return count, err
}
