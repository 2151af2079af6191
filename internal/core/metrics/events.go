package metrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hrdesk/internal/core/domain"
)

var eventTimeLayouts = []string{"3:04 PM", "3:04PM", "3:04:05 PM"}

// EventInstant combines an event's date and 12-hour time in loc
func EventInstant(e domain.Event, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateLayout, strings.TrimSpace(e.Date), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s date %q: %w", e.ID, e.Date, err)
	}

	clock := strings.ToUpper(strings.TrimSpace(e.Time))
	for _, layout := range eventTimeLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("event %s time %q: %w", e.ID, e.Time, domain.ErrInvalidArgument)
}

// FindNextUpcomingEvent returns the event closest after now. Events at or
// before now are discarded; malformed ones are logged and skipped.
func FindNextUpcomingEvent(events []domain.Event, now time.Time) (domain.Event, bool) {
	var (
		best    domain.Event
		bestGap time.Duration
		found   bool
	)
	for _, e := range events {
		at, err := EventInstant(e, now.Location())
		if err != nil {
			log.Warn().Err(err).Str("event_id", e.ID).Msg("skipping malformed event")
			continue
		}
		gap := at.Sub(now)
		if gap <= 0 {
			continue
		}
		if !found || gap < bestGap {
			best, bestGap, found = e, gap, true
		}
	}
	return best, found
}
