// Package booking holds the in-progress ticket selection for a single
// client session.  A Selection is the only authoritative representation
// of what the user has picked so far (movie, showtime + theater, seats,
// running total) and is mutated exclusively through the methods below.
// All transitions are synchronous, in-memory and free of I/O; the seat
// inventory is only consulted again when the selection is confirmed
// against the database.
package booking

import (
	"sync"

	"github.com/SagarGautam07/TickBuzz/internal/model"
)

// Result reports the outcome of a seat transition.  Invalid transitions
// do not fault and leave the selection unchanged; callers decide whether
// to surface the rejection to the client or ignore it.
type Result int

const (
	// Applied means the transition mutated the selection.
	Applied Result = iota
	// RejectedBooked means the requested seat is already booked.
	RejectedBooked
	// RejectedDuplicate means the seat is already in the selected set.
	RejectedDuplicate
	// RejectedNotSelected means a deselect referenced an unknown seat id.
	RejectedNotSelected
)

// Selection tracks one session's booking flow.  The zero state (nothing
// selected, zero total, no confirmation code) is the initial state and
// the state Reset returns to.  A mutex guards every accessor because a
// browser may fire overlapping requests for the same session even
// though the flow itself is logically sequential.
type Selection struct {
	mu sync.Mutex

	movie    *model.Movie
	showtime *model.Showtime
	theater  *model.Theater
	seats    []model.Seat
	total    uint32
	code     string
}

// NewSelection returns an empty selection.  Selections are constructed
// per session by the Store and must never be shared across sessions.
func NewSelection() *Selection { return &Selection{} }

// SelectMovie sets the movie and clears every downstream choice:
// showtime, theater, seats and total.  A nil movie is ignored.
func (s *Selection) SelectMovie(m *model.Movie) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.movie = &cp
	s.showtime = nil
	s.theater = nil
	s.seats = nil
	s.total = 0
}

// SelectShowtime sets the showtime and theater pair and clears the seat
// selection.  The movie choice is retained.  Nil arguments are ignored.
func (s *Selection) SelectShowtime(st *model.Showtime, th *model.Theater) {
	if st == nil || th == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stCp, thCp := *st, *th
	s.showtime = &stCp
	s.theater = &thCp
	s.seats = nil
	s.total = 0
}

// SelectSeat appends a seat to the selected set with the SELECTED
// overlay status.  Seats whose inventory status is booked are rejected,
// as are seats already present in the set (matched by id).  The running
// total is recomputed from the selected set on every accepted mutation.
func (s *Selection) SelectSeat(seat model.Seat) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seat.Status == model.SeatStatusBooked {
		return RejectedBooked
	}
	for _, sel := range s.seats {
		if sel.ID == seat.ID {
			return RejectedDuplicate
		}
	}
	seat.Status = model.SeatStatusSelected
	s.seats = append(s.seats, seat)
	s.recomputeTotal()
	return Applied
}

// DeselectSeat removes the seat with the given id from the selected
// set.  An id that was never selected is reported but leaves the state
// unchanged.
func (s *Selection) DeselectSeat(seatID string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sel := range s.seats {
		if sel.ID == seatID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			s.recomputeTotal()
			return Applied
		}
	}
	return RejectedNotSelected
}

// ClearSeats empties the selected set and zeroes the total.
func (s *Selection) ClearSeats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seats = nil
	s.total = 0
}

// Confirm stamps the confirmation code on the selection.  It does not
// clear or freeze the seat set; a subsequent Reset starts a fresh flow.
// Requiring at least one selected seat is the caller's responsibility.
func (s *Selection) Confirm(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
}

// Reset returns the selection to the empty initial state.
func (s *Selection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movie = nil
	s.showtime = nil
	s.theater = nil
	s.seats = nil
	s.total = 0
	s.code = ""
}

// recomputeTotal derives the total from the selected set.  Callers must
// hold the mutex.  The total is never adjusted incrementally so it can
// not drift from the sum of the seat prices.
func (s *Selection) recomputeTotal() {
	var sum uint32
	for _, seat := range s.seats {
		sum += seat.PriceCents
	}
	s.total = sum
}

// Snapshot is a copy of the selection state safe to serialize without
// holding the lock.
type Snapshot struct {
	Movie           *model.Movie    `json:"movie"`
	Showtime        *model.Showtime `json:"showtime"`
	Theater         *model.Theater  `json:"theater"`
	Seats           []model.Seat    `json:"seats"`
	TotalPriceCents uint32          `json:"totalPrice"`
	BookingCode     string          `json:"bookingCode,omitempty"`
}

// Snapshot returns a deep enough copy of the current state for handlers
// to render.  The seat slice is copied so later mutations do not alias
// a response already being encoded.
func (s *Selection) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		TotalPriceCents: s.total,
		BookingCode:     s.code,
	}
	if s.movie != nil {
		m := *s.movie
		snap.Movie = &m
	}
	if s.showtime != nil {
		st := *s.showtime
		snap.Showtime = &st
	}
	if s.theater != nil {
		th := *s.theater
		snap.Theater = &th
	}
	if len(s.seats) > 0 {
		snap.Seats = make([]model.Seat, len(s.seats))
		copy(snap.Seats, s.seats)
	}
	return snap
}

// Seats returns a copy of the currently selected seats.
func (s *Selection) Seats() []model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// TotalPriceCents returns the current derived total.
func (s *Selection) TotalPriceCents() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Showtime returns the selected showtime, or nil.
func (s *Selection) Showtime() *model.Showtime {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.showtime == nil {
		return nil
	}
	st := *s.showtime
	return &st
}

// Theater returns the selected theater, or nil.
func (s *Selection) Theater() *model.Theater {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theater == nil {
		return nil
	}
	th := *s.theater
	return &th
}

// Movie returns the selected movie, or nil.
func (s *Selection) Movie() *model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.movie == nil {
		return nil
	}
	m := *s.movie
	return &m
}

// BookingCode returns the stamped confirmation code, empty when the
// selection has not been confirmed.
func (s *Selection) BookingCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}
