package gallery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
)

var ErrNotFound = errors.New("gallery not found")

const slugAttempts = 5

type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

func (s *Service) Create(ctx context.Context, req *UpsertGalleryRequest, ip string) (*Gallery, error) {
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	var g *Gallery
	var err error
	for i := 0; i < slugAttempts; i++ {
		var slug string
		slug, err = event.NewSlug(req.Name)
		if err != nil {
			return nil, err
		}
		g = &Gallery{
			ID:           uuid.NewString(),
			Slug:         slug,
			Name:         req.Name,
			Description:  req.Description,
			Address:      req.Address,
			Neighborhood: req.Neighborhood,
			Hours:        req.Hours,
			Website:      req.Website,
			ImageURL:     req.ImageURL,
			Approved:     approved,
		}
		err = s.Repo.Create(ctx, g)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}

	status := "success"
	details := map[string]interface{}{"name": req.Name}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	} else {
		details["gallery_id"] = g.ID
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "GALLERY_CREATED", details, ip, status)

	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Gallery, error) {
	g, err := s.Repo.GetApprovedBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return g, err
}

func (s *Service) ListApproved(ctx context.Context, neighborhood string) ([]Gallery, error) {
	return s.Repo.ListApproved(ctx, neighborhood)
}

func (s *Service) ListAll(ctx context.Context) ([]Gallery, error) {
	return s.Repo.ListAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req *UpsertGalleryRequest, ip string) (*Gallery, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	g.Name = req.Name
	g.Description = req.Description
	g.Address = req.Address
	g.Neighborhood = req.Neighborhood
	g.Hours = req.Hours
	g.Website = req.Website
	g.ImageURL = req.ImageURL
	if req.Approved != nil {
		g.Approved = *req.Approved
	}

	err = s.Repo.Update(ctx, g)

	status := "success"
	details := map[string]interface{}{"gallery_id": id, "name": g.Name}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "GALLERY_UPDATED", details, ip, status)

	return g, err
}

func (s *Service) Delete(ctx context.Context, id string, ip string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	status := "success"
	details := map[string]interface{}{"gallery_id": id}
	if err != nil {
		status = "failure"
		details["error"] = err.Error()
	}
	_ = s.AuditSvc.LogAction(ctx, "admin", "GALLERY_DELETED", details, ip, status)

	return err
}
