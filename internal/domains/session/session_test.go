package session_test

import (
	"context"
	"testing"
	"time"

	"hotelinv/config"
	"hotelinv/internal/domains/session"
	"hotelinv/shared/constant"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newRegistry(c *clock) *session.Registry {
	cfg := &config.Config{}
	cfg.Hotel.SessionIdleMinutes = 30

	return session.NewRegistry(cfg).WithClock(c.now)
}

func TestOpenAndResume(t *testing.T) {
	c := &clock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	r := newRegistry(c)

	s := r.Open("user-1")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0, s.Ledger.Len())

	again := r.Resume(s.ID, "user-1")
	assert.Same(t, s, again)
	assert.Equal(t, 1, r.Len())

	other := r.Resume("restored-id", "user-2")
	assert.Equal(t, "restored-id", other.ID)
	assert.NotSame(t, s.Ledger, other.Ledger)
	assert.Equal(t, 2, r.Len())
}

func TestSweepDropsIdleSessions(t *testing.T) {
	c := &clock{t: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	r := newRegistry(c)

	stale := r.Open("user-1")
	fresh := r.Open("user-2")

	c.t = c.t.Add(20 * time.Minute)
	_, ok := r.Get(fresh.ID)
	assert.True(t, ok)

	c.t = c.t.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, ok = r.Get(stale.ID)
	assert.False(t, ok)
	_, ok = r.Get(fresh.ID)
	assert.True(t, ok)
}

func TestClose(t *testing.T) {
	r := newRegistry(&clock{t: time.Now()})
	s := r.Open("user-1")

	r.Close(s.ID)

	_, ok := r.Get(s.ID)
	assert.False(t, ok)
}

func TestFromContext(t *testing.T) {
	r := newRegistry(&clock{t: time.Now()})

	_, err := r.FromContext(context.Background())
	assert.ErrorIs(t, err, session.ErrMissingSession)

	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, "sess-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")

	s, err := r.FromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", s.ID)
	assert.Equal(t, "user-1", s.UserID)
}
