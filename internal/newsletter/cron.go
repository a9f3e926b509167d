package newsletter

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// StartDigestCron schedules the daily digest in festival local time.
// Returns the runner so main can stop it on shutdown.
func StartDigestCron(spec string, svc *Service) *cron.Cron {
	c := cron.New(cron.WithLocation(svc.Loc))

	_, err := c.AddFunc(spec, func() {
		if _, err := svc.RunDigest(context.Background(), false); err != nil {
			log.Printf("❌ Daily digest failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("❌ Invalid digest cron expression %q: %v", spec, err)
		return c
	}

	c.Start()
	log.Printf("⏰ Daily digest scheduled (%s, %s)", spec, svc.Loc)
	return c
}
