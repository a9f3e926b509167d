package newsletter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxarte/artweek-backend/internal/event"
)

func TestComposeDigestSkipsEmptyDay(t *testing.T) {
	_, ok := ComposeDigest(time.Now(), nil, time.UTC)
	assert.False(t, ok)

	_, ok = ComposeDigest(time.Now(), []event.Event{}, time.UTC)
	assert.False(t, ok)
}

func TestComposeDigestListsTheDay(t *testing.T) {
	day := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	events := []event.Event{
		{
			Name:         "Opening Night",
			Venue:        "Museo Tamayo",
			Neighborhood: "Chapultepec",
			Date:         time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			Name:  "Print Fair",
			Venue: "Biblioteca Vasconcelos",
			Date:  time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
		},
	}

	msg, ok := ComposeDigest(day, events, time.UTC)
	require.True(t, ok)

	assert.Contains(t, msg.Subject, "2 events today")
	assert.Contains(t, msg.Subject, "Feb 10")
	assert.Contains(t, msg.HTML, "Tuesday, February 10")
	assert.Contains(t, msg.HTML, "Opening Night")
	assert.Contains(t, msg.HTML, "7:00 PM")
	assert.Contains(t, msg.HTML, "(Chapultepec)")
	assert.Contains(t, msg.HTML, "Print Fair")
}

func TestComposeDigestSingular(t *testing.T) {
	day := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	events := []event.Event{{Name: "Opening Night", Venue: "Museo Tamayo", Date: day}}

	msg, ok := ComposeDigest(day, events, time.UTC)
	require.True(t, ok)
	assert.Contains(t, msg.Subject, "1 event today")
	assert.NotContains(t, msg.Subject, "1 events")
}
