package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mxarte/artweek-backend/internal/auditlog"
)

var (
	ErrNotFound        = errors.New("event not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date format, use RFC 3339")
	ErrEndBeforeStart  = errors.New("end_date must not be before date")
)

// slugAttempts bounds the generate-insert-retry loop on slug conflicts.
const slugAttempts = 5

// Service wraps business logic for festival events
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// NewEventInput carries the fields needed to mint an Event, whether it
// comes from the admin form or from an approved submission.
type NewEventInput struct {
	Name         string
	Description  string
	Host         string
	Venue        string
	Address      string
	Neighborhood string
	Price        string
	TicketURL    string
	ImageURL     string
	Date         time.Time
	EndDate      *time.Time
	Category     string
	Featured     bool
	Approved     bool
}

// ===========================
// 🎯 Create Event (admin)
func (s *Service) Create(ctx context.Context, req *CreateEventRequest, ip string) (*Event, error) {
	if !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	date, endDate, err := parseDates(req.Date, req.EndDate)
	if err != nil {
		return nil, err
	}

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	e, err := s.insertWithFreshSlug(ctx, NewEventInput{
		Name:         req.Name,
		Description:  req.Description,
		Host:         req.Host,
		Venue:        req.Venue,
		Address:      req.Address,
		Neighborhood: req.Neighborhood,
		Price:        req.Price,
		TicketURL:    req.TicketURL,
		ImageURL:     req.ImageURL,
		Date:         date,
		EndDate:      endDate,
		Category:     req.Category,
		Featured:     req.Featured,
		Approved:     approved,
	})

	status := "success"
	details := map[string]interface{}{"name": req.Name, "category": req.Category}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	} else {
		details["event_id"] = e.ID
		details["slug"] = e.Slug
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "EVENT_CREATED", details, ip, status)

	return e, err
}

// CreateFromInput mints an Event without audit side effects; the caller
// (submission approval) writes its own audit entry.
func (s *Service) CreateFromInput(ctx context.Context, in NewEventInput) (*Event, error) {
	if !ValidCategory(in.Category) {
		in.Category = CategoryOther
	}
	if in.EndDate != nil && in.EndDate.Before(in.Date) {
		return nil, ErrEndBeforeStart
	}
	return s.insertWithFreshSlug(ctx, in)
}

// insertWithFreshSlug runs the generate-attempt-retry loop: a slug is
// never assumed unique until the insert succeeds.
func (s *Service) insertWithFreshSlug(ctx context.Context, in NewEventInput) (*Event, error) {
	var lastErr error
	for i := 0; i < slugAttempts; i++ {
		slug, err := NewSlug(in.Name)
		if err != nil {
			return nil, err
		}
		e := &Event{
			ID:           uuid.NewString(),
			Slug:         slug,
			Name:         strings.TrimSpace(in.Name),
			Description:  in.Description,
			Host:         in.Host,
			Venue:        in.Venue,
			Address:      in.Address,
			Neighborhood: in.Neighborhood,
			Price:        in.Price,
			TicketURL:    in.TicketURL,
			ImageURL:     in.ImageURL,
			Date:         in.Date,
			EndDate:      in.EndDate,
			Category:     in.Category,
			Featured:     in.Featured,
			Approved:     in.Approved,
		}
		err = s.Repo.Create(ctx, e)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// ===========================
// 🔍 Public reads
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Event, error) {
	e, err := s.Repo.GetApprovedBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *Service) ListApproved(ctx context.Context, f ListFilter) ([]Event, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.Repo.ListApproved(ctx, f)
}

func (s *Service) ListFeatured(ctx context.Context) ([]Event, error) {
	return s.Repo.ListFeatured(ctx)
}

func (s *Service) ListToday(ctx context.Context, loc *time.Location) ([]Event, error) {
	return s.Repo.ListForDay(ctx, time.Now().In(loc), loc)
}

// ===========================
// 🔎 ResolveIdentifiers expands an identifier list into approved-event
// summaries ordered by date ascending. Blank identifiers are dropped and
// an empty input yields an empty result, never an error.
func (s *Service) ResolveIdentifiers(ctx context.Context, ids []string) ([]Summary, error) {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	if len(clean) == 0 {
		return []Summary{}, nil
	}

	events, err := s.Repo.FindApprovedByIDs(ctx, clean)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(events))
	for i := range events {
		summaries = append(summaries, events[i].Summary())
	}
	return summaries, nil
}

// ===========================
// 🛠 Update Event (admin; dates are off-limits here)
func (s *Service) Update(ctx context.Context, id string, req *UpdateEventRequest, ip string) (*Event, error) {
	if !ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	e, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	e.Name = req.Name
	e.Description = req.Description
	e.Host = req.Host
	e.Venue = req.Venue
	e.Address = req.Address
	e.Neighborhood = req.Neighborhood
	e.Price = req.Price
	e.TicketURL = req.TicketURL
	e.ImageURL = req.ImageURL
	e.Category = req.Category
	if req.Approved != nil {
		e.Approved = *req.Approved
	}

	err = s.Repo.Update(ctx, e)

	status := "success"
	details := map[string]interface{}{"event_id": id, "name": e.Name}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "EVENT_UPDATED", details, ip, status)

	return e, err
}

// ===========================
// 🗓 ShiftDates is the single maintenance path that may move an event.
func (s *Service) ShiftDates(ctx context.Context, id string, req *ShiftDatesRequest, ip string) (*Event, error) {
	date, endDate, err := parseDates(req.Date, req.EndDate)
	if err != nil {
		return nil, err
	}

	e, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	oldDate := e.Date
	e.Date = date
	e.EndDate = endDate

	err = s.Repo.Update(ctx, e)

	status := "success"
	details := map[string]interface{}{
		"event_id": id,
		"from":     oldDate.Format(time.RFC3339),
		"to":       date.Format(time.RFC3339),
	}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "EVENT_DATES_SHIFTED", details, ip, status)

	return e, err
}

// ===========================
// ⭐ ToggleFeatured
func (s *Service) ToggleFeatured(ctx context.Context, id string, featured bool, ip string) error {
	err := s.Repo.SetFeatured(ctx, id, featured)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	status := "success"
	details := map[string]interface{}{"event_id": id, "featured": featured}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "EVENT_FEATURED_TOGGLED", details, ip, status)

	return err
}

// ===========================
// ❌ Delete Event
func (s *Service) Delete(ctx context.Context, id string, ip string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	status := "success"
	details := map[string]interface{}{"event_id": id}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "EVENT_DELETED", details, ip, status)

	return err
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]Event, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Repo.ListAll(ctx, limit, offset)
}

// parseDates parses RFC 3339 date fields and enforces end >= start when an
// end is present.
func parseDates(dateStr, endStr string) (time.Time, *time.Time, error) {
	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, nil, ErrInvalidDate
	}
	var endDate *time.Time
	if endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return time.Time{}, nil, ErrInvalidDate
		}
		if end.Before(date) {
			return time.Time{}, nil, ErrEndBeforeStart
		}
		endDate = &end
	}
	return date, endDate, nil
}
