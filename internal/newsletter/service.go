package newsletter

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/mxarte/artweek-backend/internal/auditlog"
	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/notification"
	"github.com/mxarte/artweek-backend/internal/subscriber"
	"github.com/mxarte/artweek-backend/utils"
)

var (
	ErrSubjectRequired = errors.New("subject required")
	ErrBodyRequired    = errors.New("body required")
)

// BulkMailer fans a message out to many recipients; utils.EmailSender
// satisfies it.
type BulkMailer interface {
	SendBulk(recipients []string, subject, htmlBody string)
}

type Service struct {
	Events        *event.Service
	Subscribers   *subscriber.Service
	Mailer        BulkMailer
	Notifications *notification.Service
	AuditSvc      auditlog.Service
	Loc           *time.Location
}

func NewService(events *event.Service, subs *subscriber.Service, mailer BulkMailer, notifications *notification.Service, auditSvc auditlog.Service, loc *time.Location) *Service {
	return &Service{
		Events:        events,
		Subscribers:   subs,
		Mailer:        mailer,
		Notifications: notifications,
		AuditSvc:      auditSvc,
		Loc:           loc,
	}
}

// ===========================
// 📣 SendCampaign pushes an admin-written message to every subscriber.
// Delivery runs in the background; the admin gets the recipient count
// back immediately.
func (s *Service) SendCampaign(ctx context.Context, subject, htmlBody, ip string) (int, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return 0, ErrSubjectRequired
	}
	if strings.TrimSpace(htmlBody) == "" {
		return 0, ErrBodyRequired
	}

	recipients, err := s.Subscribers.ListEmails(ctx)
	if err != nil {
		return 0, err
	}

	_ = s.AuditSvc.LogAction(ctx, "admin", "CAMPAIGN_SENT", map[string]interface{}{
		"subject":    subject,
		"recipients": len(recipients),
	}, ip, "success")

	if len(recipients) == 0 {
		log.Printf("ℹ️ Campaign %q has no subscribers to send to", subject)
		return 0, nil
	}

	go func() {
		s.Mailer.SendBulk(recipients, subject, htmlBody)
		s.Notifications.LogBatch(context.Background(), notification.KindCampaign, subject, recipients, nil)
		log.Printf("✅ Campaign %q dispatched to %d subscribers", subject, len(recipients))
	}()

	return len(recipients), nil
}

// ===========================
// 🌅 RunDigest sends "today at the festival" to every subscriber. The
// cron trigger and the admin endpoint both land here; the daily lock
// keeps multiple replicas from double-sending.
func (s *Service) RunDigest(ctx context.Context, force bool) (int, error) {
	now := time.Now().In(s.Loc)
	if !force && !utils.AcquireDailyLock("daily_digest", now) {
		log.Println("ℹ️ Digest already sent today by another replica, skipping")
		return 0, nil
	}

	events, err := s.Events.ListToday(ctx, s.Loc)
	if err != nil {
		return 0, err
	}

	msg, ok := ComposeDigest(now, events, s.Loc)
	if !ok {
		log.Println("ℹ️ No events today, digest skipped")
		return 0, nil
	}

	recipients, err := s.Subscribers.ListEmails(ctx)
	if err != nil {
		return 0, err
	}
	if len(recipients) == 0 {
		log.Println("ℹ️ No subscribers, digest skipped")
		return 0, nil
	}

	s.Mailer.SendBulk(recipients, msg.Subject, msg.HTML)
	s.Notifications.LogBatch(ctx, notification.KindDailyDigest, msg.Subject, recipients, nil)

	_ = s.AuditSvc.LogAction(ctx, "system", "DIGEST_SENT", map[string]interface{}{
		"events":     len(events),
		"recipients": len(recipients),
	}, "", "success")

	log.Printf("✅ Daily digest sent: %d events to %d subscribers", len(events), len(recipients))
	return len(recipients), nil
}
