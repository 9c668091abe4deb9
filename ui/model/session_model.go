package model

import (
	"time"
)

// SessionModel tracks the time spent on the current image and since the
// first tick. It is decoupled from the UI; presenters should poll Values()
// and update views. The zero value is ready to use.
type SessionModel struct {
	active     bool
	start      time.Time
	imageStart time.Time
	onImage    time.Duration
	total      time.Duration
	saved      int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the clocks. Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(now time.Time) {
	if m == nil {
		return
	}
	if !m.active { // first tick
		m.active = true
		m.start = now
		m.imageStart = now
	}
	m.onImage = now.Sub(m.imageStart)
	m.total = now.Sub(m.start)
}

// ImageChanged restarts the per-image clock.
func (m *SessionModel) ImageChanged(now time.Time) {
	if m == nil {
		return
	}
	if !m.active {
		m.OnTick(now)
		return
	}
	m.imageStart = now
	m.onImage = 0
}

// AddSaved accumulates the number of patches written during the session.
func (m *SessionModel) AddSaved(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.saved += n
}

// Saved returns the number of patches written so far.
func (m *SessionModel) Saved() int {
	if m == nil {
		return 0
	}
	return m.saved
}

// Values returns the time on the current image and the total session time.
func (m *SessionModel) Values() (onImage, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	return m.onImage, m.total
}
