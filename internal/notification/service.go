package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/itinerary"
)

// Mailer is the transport boundary; utils.EmailSender satisfies it.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Counter reads a live total at send time.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// EventResolver matches the event service's identifier expansion.
type EventResolver interface {
	ResolveIdentifiers(ctx context.Context, ids []string) ([]event.Summary, error)
}

// Service turns committed saves into emails. Everything here is
// best-effort: a failure is logged and swallowed, never pushed back into
// the save path.
type Service struct {
	Repo             *Repository
	Mailer           Mailer
	Events           EventResolver
	SubscriberTotals Counter
	ItineraryTotals  Counter
	Publisher        *Publisher

	BaseURL       string
	OperatorEmail string
	Loc           *time.Location
}

func NewService(repo *Repository, mailer Mailer, events EventResolver, subTotals, itinTotals Counter, pub *Publisher, baseURL, operatorEmail string, loc *time.Location) *Service {
	return &Service{
		Repo:             repo,
		Mailer:           mailer,
		Events:           events,
		SubscriberTotals: subTotals,
		ItineraryTotals:  itinTotals,
		Publisher:        pub,
		BaseURL:          baseURL,
		OperatorEmail:    operatorEmail,
		Loc:              loc,
	}
}

// ===========================
// 📨 ItinerarySaved queues the post-save emails. With Kafka up the
// notice goes through the broker so a crash mid-request cannot eat it;
// without Kafka it degrades to an in-process goroutine. Either way the
// caller never sees an error.
func (s *Service) ItinerarySaved(ctx context.Context, notice itinerary.SavedNotice) {
	payload, err := json.Marshal(notice)
	if err != nil {
		log.Printf("❌ Failed to encode saved-itinerary notice %s: %v", notice.Slug, err)
		return
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish(ctx, notice.Slug, payload); err == nil {
			return
		} else {
			log.Printf("⚠️ Kafka publish failed for %s, falling back to in-process dispatch: %v", notice.Slug, err)
		}
	}

	go s.ProcessSaved(context.Background(), notice)
}

// ProcessSaved resolves the saved events, composes both messages, and
// dispatches them. Called from the Kafka consumer or the in-process
// fallback.
func (s *Service) ProcessSaved(ctx context.Context, notice itinerary.SavedNotice) {
	shareURL := s.BaseURL + "/itinerary/" + notice.Slug

	events, err := s.Events.ResolveIdentifiers(ctx, notice.EventIDs)
	if err != nil {
		log.Printf("❌ Failed to resolve events for notice %s: %v", notice.Slug, err)
		events = []event.Summary{}
	}

	confirmation := ComposeConfirmation(notice.Name, events, shareURL, s.Loc)
	s.dispatch(ctx, KindConfirmation, confirmation, notice.Email)

	if s.OperatorEmail == "" {
		return
	}

	// Totals are read now, not at save time.
	subTotal := s.readTotal(ctx, s.SubscriberTotals, "subscribers")
	itinTotal := s.readTotal(ctx, s.ItineraryTotals, "itineraries")

	operator := ComposeOperatorNotice(notice.Email, notice.Name, len(events), notice.NewSubscriber, shareURL, subTotal, itinTotal)
	s.dispatch(ctx, KindOperatorNotice, operator, s.OperatorEmail)
}

// dispatch sends one message and records the attempt.
func (s *Service) dispatch(ctx context.Context, kind string, msg Message, to string) {
	status := "sent"
	errText := ""
	if err := s.Mailer.Send(to, msg.Subject, msg.HTML); err != nil {
		status = "failed"
		errText = err.Error()
		log.Printf("❌ Failed to send %s to %s: %v", kind, to, err)
	}

	recipients, _ := json.Marshal([]string{to})
	if err := s.Repo.Create(ctx, &NotificationLog{
		ID:         uuid.NewString(),
		Kind:       kind,
		Subject:    msg.Subject,
		Recipients: datatypes.JSON(recipients),
		Status:     status,
		Error:      errText,
	}); err != nil {
		log.Printf("⚠️ Failed to record notification log (%s): %v", kind, err)
	}
}

// LogBatch records a bulk dispatch (newsletter campaign or digest).
func (s *Service) LogBatch(ctx context.Context, kind, subject string, recipients []string, sendErr error) {
	status := "sent"
	errText := ""
	if sendErr != nil {
		status = "failed"
		errText = sendErr.Error()
	}

	encoded, _ := json.Marshal(recipients)
	if err := s.Repo.Create(ctx, &NotificationLog{
		ID:         uuid.NewString(),
		Kind:       kind,
		Subject:    subject,
		Recipients: datatypes.JSON(encoded),
		Status:     status,
		Error:      errText,
	}); err != nil {
		log.Printf("⚠️ Failed to record notification log (%s): %v", kind, err)
	}
}

func (s *Service) List(ctx context.Context, kind string, limit, offset int) ([]NotificationLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Repo.List(ctx, kind, limit, offset)
}

func (s *Service) readTotal(ctx context.Context, c Counter, label string) int64 {
	if c == nil {
		return 0
	}
	total, err := c.Count(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to read %s total: %v", label, err)
		return 0
	}
	return total
}
