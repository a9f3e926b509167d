package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
)

var (
	ErrNotFound        = errors.New("submission not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date format, use RFC 3339")
	ErrEndBeforeStart  = errors.New("end_date must not be before date")
	ErrNotPending      = errors.New("submission already reviewed")
	ErrInvalidStatus   = errors.New("status must be approved or rejected")
)

// Service handles public event proposals and their admin review.
type Service struct {
	Repo     *Repository
	EventSvc *event.Service
	AuditSvc auditlog.Service
}

func NewService(r *Repository, eventSvc *event.Service, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, EventSvc: eventSvc, AuditSvc: auditSvc}
}

// ===========================
// 📝 Submit (public)
func (s *Service) Submit(ctx context.Context, req *CreateSubmissionRequest, ip string) (*EventSubmission, error) {
	if !event.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	var endDate *time.Time
	if req.EndDate != "" {
		end, err := time.Parse(time.RFC3339, req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if end.Before(date) {
			return nil, ErrEndBeforeStart
		}
		endDate = &end
	}

	sub := &EventSubmission{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Host:           req.Host,
		Venue:          req.Venue,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		Price:          req.Price,
		TicketURL:      req.TicketURL,
		ImageURL:       req.ImageURL,
		Date:           date,
		EndDate:        endDate,
		Category:       req.Category,
		SubmitterName:  strings.TrimSpace(req.SubmitterName),
		SubmitterEmail: strings.ToLower(strings.TrimSpace(req.SubmitterEmail)),
		Status:         StatusPending,
	}

	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	_ = s.AuditSvc.LogAction(ctx, "system", "SUBMISSION_RECEIVED", map[string]interface{}{
		"submission_id": sub.ID,
		"name":          sub.Name,
	}, ip, "success")

	return sub, nil
}

// ===========================
// ✅ Review (admin): approval spawns a fresh Event, rejection just flips
// the status. Either way the submission record is kept.
func (s *Service) Review(ctx context.Context, id string, req *ApprovalRequest, ip string) (*EventSubmission, error) {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	sub, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sub.Status != StatusPending {
		return nil, ErrNotPending
	}

	action := "SUBMISSION_REJECTED"
	details := map[string]interface{}{"submission_id": sub.ID, "name": sub.Name}

	if req.Status == StatusApproved {
		e, err := s.EventSvc.CreateFromInput(ctx, event.NewEventInput{
			Name:         sub.Name,
			Description:  sub.Description,
			Host:         sub.Host,
			Venue:        sub.Venue,
			Address:      sub.Address,
			Neighborhood: sub.Neighborhood,
			Price:        sub.Price,
			TicketURL:    sub.TicketURL,
			ImageURL:     sub.ImageURL,
			Date:         sub.Date,
			EndDate:      sub.EndDate,
			Category:     sub.Category,
			Approved:     true,
		})
		if err != nil {
			_ = s.AuditSvc.LogAction(ctx, "admin", "SUBMISSION_APPROVAL_FAILED", map[string]interface{}{
				"submission_id": sub.ID,
				"error":         err.Error(),
			}, ip, "failure")
			return nil, err
		}
		sub.EventID = &e.ID
		action = "SUBMISSION_APPROVED"
		details["event_id"] = e.ID
		details["slug"] = e.Slug
	}

	sub.Status = req.Status
	if err := s.Repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	_ = s.AuditSvc.LogAction(ctx, "admin", action, details, ip, "success")

	return sub, nil
}

func (s *Service) List(ctx context.Context, status string) ([]EventSubmission, error) {
	return s.Repo.List(ctx, status)
}

func (s *Service) CountPending(ctx context.Context) (int64, error) {
	return s.Repo.CountPending(ctx)
}
