package schedule

import (
	"context"
	"fmt"
	"time"

	"hotelinv/shared/timezone"

	"github.com/rs/zerolog/log"
)

const clockLayout = "15:04"

// ParseClock reads an HH:MM wall-clock time.
func ParseClock(value string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM: %w", value, err)
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Next returns the first moment after now that falls at offset past midnight
// in now's location.
func Next(now time.Time, offset time.Duration) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	next := midnight.Add(offset)
	if !next.After(now) {
		next = midnight.AddDate(0, 0, 1).Add(offset)
	}

	return next
}

// Daily runs job every day at offset past midnight in the application timezone
// until ctx is cancelled. Job errors are logged and do not stop the loop.
func Daily(ctx context.Context, offset time.Duration, job func(ctx context.Context) error) {
	for {
		next := Next(timezone.Now(), offset)
		log.Info().Time("next_run", next).Msg("Scheduled daily job")

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
			if err := job(ctx); err != nil {
				log.Error().Err(err).Msg("Daily job failed")
			}
		}
	}
}
