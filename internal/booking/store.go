package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Store hands out one Selection per session token and expires idle
// sessions.  It is constructed once at startup and injected into the
// handlers; nothing in the package keeps a hidden process-wide
// selection, so concurrent sessions can never cross-contaminate.
//
// Selections are deliberately process-local and unpersisted: a
// selection is transient scratch state with no durability requirement,
// and only the confirmation step touches shared storage.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
}

type entry struct {
	sel      *Selection
	lastSeen time.Time
}

// NewStore creates a session store whose idle sessions expire after
// ttl.  A non-positive ttl defaults to 30 minutes.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// Get returns the selection for the given session token, creating an
// empty one on first use.  Every access refreshes the idle timer.
func (st *Store) Get(token string) *Selection {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[token]
	if !ok {
		e = &entry{sel: NewSelection()}
		st.sessions[token] = e
	}
	e.lastSeen = time.Now().UTC()
	return e.sel
}

// Delete removes a session outright.  Used after a full reset when the
// client abandons the flow.
func (st *Store) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep removes sessions idle longer than the store TTL and returns how
// many were dropped.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for tok, e := range st.sessions {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.sessions, tok)
			n++
		}
	}
	return n
}

// StartJanitor runs Sweep periodically until the context is cancelled.
// The interval defaults to one minute when non-positive.
func (st *Store) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				st.Sweep(now.UTC())
			}
		}
	}()
}

// NewSessionToken mints an opaque random session token.  Tokens carry
// no claims; they only key the selection map.
func NewSessionToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
