package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mxarte/artweek-backend/internal/event"
)

func sampleEvents() []event.Summary {
	return []event.Summary{
		{
			ID:    "evt-1",
			Name:  "Opening Night",
			Venue: "Museo Tamayo",
			Date:  time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			ID:    "evt-2",
			Name:  "Studio Walk",
			Venue: "Casa Luis Barragán",
			Date:  time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestComposeConfirmation(t *testing.T) {
	shareURL := "https://artweek.mx/itinerary/abc123defg"
	msg := ComposeConfirmation("🎨 Mike's Itinerary", sampleEvents(), shareURL, time.UTC)

	assert.Contains(t, msg.Subject, "2 events")
	assert.Contains(t, msg.HTML, "<h2>🎨 Mike's Itinerary</h2>")
}

func TestComposeConfirmationListsEventsAndLink(t *testing.T) {
	shareURL := "https://artweek.mx/itinerary/abc123defg"
	msg := ComposeConfirmation("🎨 Mike's Itinerary", sampleEvents(), shareURL, time.UTC)

	assert.Contains(t, msg.HTML, "Opening Night")
	assert.Contains(t, msg.HTML, "Museo Tamayo")
	assert.Contains(t, msg.HTML, "Studio Walk")
	assert.Contains(t, msg.HTML, shareURL)
	assert.Contains(t, msg.HTML, "You saved 2 events")
}

func TestComposeConfirmationFormatsLocalTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		t.Skip("tz database unavailable")
	}

	msg := ComposeConfirmation("🎨 Mike's Itinerary", sampleEvents(), "https://x/itinerary/s", loc)

	// 19:00 UTC is 13:00 in Mexico City (UTC-6).
	assert.Contains(t, msg.HTML, "1:00 PM")
}

func TestComposeConfirmationSingular(t *testing.T) {
	msg := ComposeConfirmation("🎨 Ana's Itinerary", sampleEvents()[:1], "https://x/itinerary/s", time.UTC)

	assert.Contains(t, msg.Subject, "1 event")
	assert.NotContains(t, msg.Subject, "1 events")
	assert.Contains(t, msg.HTML, "You saved 1 event.")
}

func TestComposeOperatorNotice(t *testing.T) {
	msg := ComposeOperatorNotice("a@b.com", "🎨 Mike's Itinerary", 2, true, "https://x/itinerary/s", 120, 45)

	assert.Contains(t, msg.Subject, "New itinerary")
	assert.Contains(t, msg.HTML, "a@b.com")
	assert.Contains(t, msg.HTML, "NEW subscriber")
	assert.Contains(t, msg.HTML, "120 subscribers")
	assert.Contains(t, msg.HTML, "45 itineraries")
	assert.Contains(t, msg.HTML, "https://x/itinerary/s")
}

func TestComposeOperatorNoticeExistingSubscriber(t *testing.T) {
	msg := ComposeOperatorNotice("a@b.com", "🎨 Mike's Itinerary", 2, false, "https://x/itinerary/s", 120, 45)

	assert.Contains(t, msg.HTML, "existing subscriber")
	assert.NotContains(t, msg.HTML, "NEW subscriber")
}
