// Package timezone pins "now" and "today" to the hotel's wall clock, configured
// through APP_TIMEZONE as an IANA name such as "Asia/Ho_Chi_Minh".
package timezone

import (
	"sync"
	"time"

	"hotelinv/config"

	"github.com/rs/zerolog/log"
)

var (
	mu       sync.RWMutex
	location *time.Location
	loadOnce sync.Once
)

// Load resolves an IANA name, falling back to UTC when it is empty or unknown.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")

		return time.UTC
	}

	return loc
}

// SetLocation overrides the configured location.
func SetLocation(loc *time.Location) {
	loadOnce.Do(func() {})

	mu.Lock()
	location = loc
	mu.Unlock()
}

func GetLocation() *time.Location {
	loadOnce.Do(func() {
		loc := Load(config.Get().App.Timezone)

		mu.Lock()
		location = loc
		mu.Unlock()

		log.Debug().Str("timezone", loc.String()).Msg("application timezone loaded")
	})

	mu.RLock()
	defer mu.RUnlock()

	return location
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall-clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is the current hotel calendar day, as UTC midnight.
func Today() time.Time {
	return Day(Now())
}

// Day drops the clock from t, keeping its calendar date as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
