package subscriber

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/mxarte/artweek-backend/internal/auditlog"
)

var ErrInvalidEmail = errors.New("valid email required")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr looks like a deliverable address.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Normalize lowercases and trims an address so the unique index catches
// re-subscribes regardless of casing.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 📧 Subscribe: idempotent, re-subscribing is a silent no-op.
func (s *Service) Subscribe(ctx context.Context, email, source string) (bool, error) {
	email = Normalize(email)
	if !ValidEmail(email) {
		return false, ErrInvalidEmail
	}
	if source != SourceItinerary {
		source = SourceForm
	}

	created, err := s.Repo.Upsert(ctx, &Subscriber{
		ID:     uuid.NewString(),
		Email:  email,
		Source: source,
	})
	if err != nil {
		return false, err
	}

	if created {
		_ = s.AuditSvc.LogAction(ctx, "system", "SUBSCRIBER_ADDED", map[string]interface{}{
			"email":  email,
			"source": source,
		}, "", "success")
	}

	return created, nil
}

// ===========================
// 🚫 Unsubscribe: removing an unknown address is not an error.
func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = Normalize(email)
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}

	removed, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if removed {
		_ = s.AuditSvc.LogAction(ctx, "system", "SUBSCRIBER_REMOVED", map[string]interface{}{
			"email": email,
		}, "", "success")
	}
	return nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) ListEmails(ctx context.Context) ([]string, error) {
	return s.Repo.ListEmails(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
