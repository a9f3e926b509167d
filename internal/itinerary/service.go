package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/localset"
	"github.com/mxarte/artweek-backend/internal/subscriber"
)

// Validation failures, in the order the checks run. The first failing
// check wins; callers surface the message verbatim.
var (
	ErrNoEvents      = errors.New("no events provided")
	ErrInvalidEmail  = errors.New("valid email required")
	ErrNameRequired  = errors.New("name required")
	ErrEmojiRequired = errors.New("please pick an emoji")
	ErrNotFound      = errors.New("itinerary not found")
)

const (
	slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugLength   = 10
	slugAttempts = 5
)

// EventResolver expands identifier lists into approved-event summaries.
type EventResolver interface {
	ResolveIdentifiers(ctx context.Context, ids []string) ([]event.Summary, error)
}

// SubscriberRegistrar upserts the saver's email onto the newsletter
// list, reporting whether the address was new.
type SubscriberRegistrar interface {
	Subscribe(ctx context.Context, email, source string) (bool, error)
}

// SavedNotice is handed to the notifier after a save commits.
type SavedNotice struct {
	Slug          string
	Email         string
	Name          string
	EventIDs      []string
	NewSubscriber bool
}

// Notifier delivers best-effort emails after a save. Implementations
// must never let a delivery failure reach the save path.
type Notifier interface {
	ItinerarySaved(ctx context.Context, notice SavedNotice)
}

type Service struct {
	Repo        Repository
	Events      EventResolver
	Subscribers SubscriberRegistrar
	Notifier    Notifier
}

func NewService(repo Repository, events EventResolver, subs SubscriberRegistrar, notifier Notifier) *Service {
	return &Service{Repo: repo, Events: events, Subscribers: subs, Notifier: notifier}
}

// ===========================
// 💾 Save: validate, commit, then best-effort notify. Once the insert
// succeeds the save is successful no matter what happens afterwards.
func (s *Service) Save(ctx context.Context, req *SaveRequest) (*Itinerary, error) {
	ids := localset.FromIDs(req.EventIDs).IDs()
	if len(ids) == 0 {
		return nil, ErrNoEvents
	}

	email := subscriber.Normalize(req.Email)
	if !subscriber.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	emoji := strings.TrimSpace(req.Emoji)
	if emoji == "" {
		return nil, ErrEmojiRequired
	}

	payload, err := encodeIDs(ids)
	if err != nil {
		return nil, err
	}

	it, err := s.insertWithFreshSlug(ctx, &Itinerary{
		Email:    email,
		Name:     emoji + " " + name + "'s Itinerary",
		EventIDs: payload,
	})
	if err != nil {
		return nil, err
	}

	newSubscriber := false
	created, err := s.Subscribers.Subscribe(ctx, email, subscriber.SourceItinerary)
	if err != nil {
		log.Printf("⚠️ Subscriber upsert failed after itinerary save (%s): %v", it.Slug, err)
	} else {
		newSubscriber = created
	}

	if s.Notifier != nil {
		s.Notifier.ItinerarySaved(ctx, SavedNotice{
			Slug:          it.Slug,
			Email:         email,
			Name:          it.Name,
			EventIDs:      ids,
			NewSubscriber: newSubscriber,
		})
	}

	log.Printf("✅ Itinerary saved: %s (%d events)", it.Slug, len(ids))
	return it, nil
}

// insertWithFreshSlug mirrors the event-slug policy: a slug is only
// unique once the insert accepted it.
func (s *Service) insertWithFreshSlug(ctx context.Context, it *Itinerary) (*Itinerary, error) {
	var lastErr error
	for i := 0; i < slugAttempts; i++ {
		slug, err := gonanoid.Generate(slugAlphabet, slugLength)
		if err != nil {
			return nil, err
		}
		candidate := *it
		candidate.ID = uuid.NewString()
		candidate.Slug = slug
		err = s.Repo.Create(ctx, &candidate)
		if err == nil {
			return &candidate, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// ===========================
// 🔍 GetBySlug resolves a shared itinerary. Every successful resolution
// counts one view; unapproved or deleted events drop out silently.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Itinerary, []event.Summary, error) {
	it, err := s.Repo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if err := s.Repo.IncrementViews(ctx, slug); err != nil {
		log.Printf("⚠️ View increment failed for %s: %v", slug, err)
	} else {
		it.Views++
	}

	events, err := s.Events.ResolveIdentifiers(ctx, it.EventIDList())
	if err != nil {
		return nil, nil, err
	}

	return it, events, nil
}

// Peek fetches an itinerary without counting a view; the copy endpoints
// use it so only real share-page resolutions move the counter.
func (s *Service) Peek(ctx context.Context, slug string) (*Itinerary, error) {
	it, err := s.Repo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return it, err
}

// Resolve renders an identifier list without persisting anything.
func (s *Service) Resolve(ctx context.Context, ids []string) ([]event.Summary, error) {
	return s.Events.ResolveIdentifiers(ctx, ids)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

func encodeIDs(ids []string) (datatypes.JSON, error) {
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
