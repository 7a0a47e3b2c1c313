package booking

import (
	"testing"
	"time"

	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SessionsAreIndependent(t *testing.T) {
	st := NewStore(time.Hour)

	a := st.Get("session-a")
	b := st.Get("session-b")
	require.NotSame(t, a, b)

	a.SelectSeat(model.Seat{ID: "A1", Status: model.SeatStatusAvailable, PriceCents: 250})

	assert.Equal(t, uint32(250), a.TotalPriceCents())
	assert.Zero(t, b.TotalPriceCents())
}

func TestStore_GetIsStablePerToken(t *testing.T) {
	st := NewStore(time.Hour)
	first := st.Get("tok")
	first.SelectMovie(&model.Movie{ID: "1"})

	again := st.Get("tok")
	require.Same(t, first, again)
	require.NotNil(t, again.Movie())
	assert.Equal(t, "1", again.Movie().ID)
}

func TestStore_SweepDropsIdleSessions(t *testing.T) {
	st := NewStore(10 * time.Minute)
	st.Get("stale")
	st.Get("fresh")

	// Age the stale session past the TTL by sweeping from the future.
	st.mu.Lock()
	st.sessions["stale"].lastSeen = time.Now().UTC().Add(-time.Hour)
	st.mu.Unlock()

	dropped := st.Sweep(time.Now().UTC())

	assert.Equal(t, 1, dropped)
	assert.Equal(t, 1, st.Len())
}

func TestStore_Delete(t *testing.T) {
	st := NewStore(time.Hour)
	st.Get("tok")
	require.Equal(t, 1, st.Len())

	st.Delete("tok")
	assert.Zero(t, st.Len())
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}
