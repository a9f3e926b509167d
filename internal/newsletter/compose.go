package newsletter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mxarte/artweek-backend/internal/event"
	"github.com/mxarte/artweek-backend/internal/notification"
)

// ComposeDigest builds the "today at the festival" email from the
// approved events running on the given local day. Returns ok=false when
// there is nothing on, so the caller can skip the send entirely.
func ComposeDigest(day time.Time, events []event.Event, loc *time.Location) (notification.Message, bool) {
	if len(events) == 0 {
		return notification.Message{}, false
	}

	local := day.In(loc)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Today at the festival - %s</h2>", local.Format("Monday, January 2")))
	b.WriteString("<ul>")
	for _, e := range events {
		b.WriteString(fmt.Sprintf(
			"<li><strong>%s</strong> - %s at %s",
			e.Name,
			e.Date.In(loc).Format("3:04 PM"),
			e.Venue,
		))
		if e.Neighborhood != "" {
			b.WriteString(" (" + e.Neighborhood + ")")
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")

	return notification.Message{
		Subject: fmt.Sprintf("🎨 %d event%s today - %s", len(events), plural(len(events)), local.Format("Jan 2")),
		HTML:    b.String(),
	}, true
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
