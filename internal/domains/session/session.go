package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"hotelinv/config"
	"hotelinv/internal/domains/booking/ledger"
	"hotelinv/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultIdle   = 4 * time.Hour
	sweepInterval = time.Minute
)

var ErrMissingSession = errors.New("request carries no session")

// Session owns the ledger of one dashboard login.
type Session struct {
	ID        string
	UserID    string
	Ledger    *ledger.Ledger
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Registry keeps the live sessions in process memory.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idle     time.Duration
	now      func() time.Time
}

func NewRegistry(cfg *config.Config) *Registry {
	idle := time.Duration(cfg.Hotel.SessionIdleMinutes) * time.Minute
	if idle <= 0 {
		idle = defaultIdle
	}

	return &Registry{
		sessions: make(map[string]*Session),
		idle:     idle,
		now:      time.Now,
	}
}

// WithClock replaces the registry clock.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Open starts a session with an empty ledger.
func (r *Registry) Open(userID string) *Session {
	return r.Resume(uuid.NewString(), userID)
}

// Resume returns the session with id, recreating it empty when it was swept or
// the process restarted while the token stayed valid.
func (r *Registry) Resume(id, userID string) *Session {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.touch(now)
		return s
	}

	s := &Session{
		ID:        id,
		UserID:    userID,
		Ledger:    ledger.New(),
		CreatedAt: now,
		lastSeen:  now,
	}
	r.sessions[id] = s

	log.Info().Str("session_id", id).Str("user_id", userID).Msg("session opened")

	return s
}

// FromContext resolves the caller's session from the values set by the auth middleware.
func (r *Registry) FromContext(ctx context.Context) (*Session, error) {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)
	if id == "" {
		return nil, ErrMissingSession
	}
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return r.Resume(id, userID), nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()

	if ok {
		s.touch(r.now())
	}
	return s, ok
}

func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the configured window.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps periodically until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Info().Int("count", n).Msg("idle sessions swept")
			}
		}
	}
}
