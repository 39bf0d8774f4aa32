package timezone_test

import (
	"testing"
	"time"

	"hotelinv/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, timezone.Load(""))
	assert.Equal(t, time.UTC, timezone.Load("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Ho_Chi_Minh", timezone.Load("Asia/Ho_Chi_Minh").String())
}

func TestWallClock(t *testing.T) {
	saigon := time.FixedZone("ICT", 7*60*60)
	timezone.SetLocation(saigon)
	t.Cleanup(func() { timezone.SetLocation(time.UTC) })

	// 20:30 UTC on the 5th is already the 6th in Saigon.
	late := time.Date(2025, 6, 5, 20, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-06 03:30", timezone.Format(late, "2006-01-02 15:04"))
	assert.Equal(t, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), timezone.Day(timezone.ToAppTime(late)))

	parsed, err := timezone.Parse("2006-01-02 15:04", "2025-06-06 03:30")
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(late))

	assert.Equal(t, saigon, timezone.Now().Location())
	assert.Equal(t, time.UTC, timezone.Today().Location())
}
