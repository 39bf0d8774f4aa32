package schedule_test

import (
	"testing"
	"time"

	"hotelinv/shared/schedule"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "morning", value: "07:30", want: 7*time.Hour + 30*time.Minute},
		{name: "midnight", value: "00:00", want: 0},
		{name: "out of range", value: "25:00", wantErr: true},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.ParseClock(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	offset := 8 * time.Hour

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2024, 3, 10, 6, 0, 0, 0, loc),
			want: time.Date(2024, 3, 10, 8, 0, 0, 0, loc),
		},
		{
			name: "exactly on time rolls to tomorrow",
			now:  time.Date(2024, 3, 10, 8, 0, 0, 0, loc),
			want: time.Date(2024, 3, 11, 8, 0, 0, 0, loc),
		},
		{
			name: "month end",
			now:  time.Date(2024, 3, 31, 21, 0, 0, 0, loc),
			want: time.Date(2024, 4, 1, 8, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(schedule.Next(tt.now, offset)))
		})
	}
}
