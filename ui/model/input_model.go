package model

import "image"

// PointerButton identifies a mouse button.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Event is a key press (Key set) or a button press (Button set) at a display position.
type Event struct {
	Key    string
	Button PointerButton
	Pos    image.Point
}

// IsKey reports whether the event is a key press.
func (e Event) IsKey() bool { return e.Key != "" }

// Input is one tick worth of drained input.
type Input struct {
	Events  []Event
	Pointer image.Point
	Moved   bool
}

// InputModel buffers view events between ticks. Pointer motion is coalesced
// to the latest position; keys and clicks keep their relative order.
// The zero value is empty and usable. Not synchronized: Tk callbacks and the
// tick both run on the UI thread.
type InputModel struct {
	pending Input
}

// PushKey queues a keysym.
func (m *InputModel) PushKey(keysym string) {
	if m == nil || keysym == "" {
		return
	}
	m.pending.Events = append(m.pending.Events, Event{Key: keysym})
}

// PushMotion records the latest pointer position.
func (m *InputModel) PushMotion(p image.Point) {
	if m == nil {
		return
	}
	m.pending.Pointer = p
	m.pending.Moved = true
}

// PushClick queues a button press.
func (m *InputModel) PushClick(b PointerButton, p image.Point) {
	if m == nil || b == 0 {
		return
	}
	m.pending.Events = append(m.pending.Events, Event{Button: b, Pos: p})
}

// Pending reports whether anything is queued.
func (m *InputModel) Pending() bool {
	if m == nil {
		return false
	}
	return m.pending.Moved || len(m.pending.Events) > 0
}

// Drain returns and clears the queued input.
func (m *InputModel) Drain() Input {
	if m == nil {
		return Input{}
	}
	in := m.pending
	m.pending = Input{}
	return in
}
