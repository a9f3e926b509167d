package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/mxarte/artweek-backend/internal/event"
)

// Message is a rendered email ready for the transport.
type Message struct {
	Subject string
	HTML    string
}

// ComposeConfirmation renders the email sent to whoever saved an
// itinerary: every resolved event with its local start time and venue,
// the share link, and the total count.
func ComposeConfirmation(name string, events []event.Summary, shareURL string, loc *time.Location) Message {
	var b strings.Builder
	b.WriteString("<h2>" + name + "</h2>")
	b.WriteString(fmt.Sprintf("<p>You saved %d event%s. Here's your lineup:</p>", len(events), plural(len(events))))
	b.WriteString("<ul>")
	for _, e := range events {
		b.WriteString(fmt.Sprintf(
			"<li><strong>%s</strong> - %s at %s</li>",
			e.Name,
			e.Date.In(loc).Format("Mon Jan 2, 3:04 PM"),
			e.Venue,
		))
	}
	b.WriteString("</ul>")
	b.WriteString(fmt.Sprintf(`<p>Share it: <a href="%s">%s</a></p>`, shareURL, shareURL))

	return Message{
		Subject: fmt.Sprintf("Your itinerary is saved (%d event%s) 🎨", len(events), plural(len(events))),
		HTML:    b.String(),
	}
}

// ComposeOperatorNotice renders the internal heads-up sent to the
// festival operator after every save. Totals are whatever the caller
// read at send time, not cached values.
func ComposeOperatorNotice(email, name string, eventCount int, newSubscriber bool, shareURL string, subscriberTotal, itineraryTotal int64) Message {
	subscriberLine := "existing subscriber"
	if newSubscriber {
		subscriberLine = "NEW subscriber 🎉"
	}

	var b strings.Builder
	b.WriteString("<h3>Itinerary saved</h3>")
	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li>Who: %s (%s)</li>", name, email))
	b.WriteString(fmt.Sprintf("<li>Contact: %s</li>", subscriberLine))
	b.WriteString(fmt.Sprintf("<li>Events: %d</li>", eventCount))
	b.WriteString(fmt.Sprintf(`<li>Link: <a href="%s">%s</a></li>`, shareURL, shareURL))
	b.WriteString("</ul>")
	b.WriteString(fmt.Sprintf("<p>Running totals: %d subscribers, %d itineraries.</p>", subscriberTotal, itineraryTotal))

	return Message{
		Subject: fmt.Sprintf("📬 New itinerary: %s (%d events)", name, eventCount),
		HTML:    b.String(),
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
