package model

import (
	"image"
	"testing"
)

func TestViewportModel_RoundTrip(t *testing.T) {
	m := NewViewportModel()
	m.Set(image.Rect(0, 0, 2000, 1000), image.Pt(800, 400))
	if p := m.ToImage(image.Pt(400, 200)); p != image.Pt(1000, 500) {
		t.Fatalf("ToImage = %v", p)
	}
	if p := m.ToImage(image.Pt(799, 399)); p.X >= 2000 || p.Y >= 1000 {
		t.Fatalf("last display pixel mapped outside the image: %v", p)
	}
	r := m.ToDisplay(image.Rect(500, 250, 1012, 762))
	if r != image.Rect(200, 100, 405, 305) {
		t.Fatalf("ToDisplay = %v", r)
	}
}

func TestViewportModel_ZeroAndNil(t *testing.T) {
	var m ViewportModel
	if m.ToImage(image.Pt(0, 0)) != image.Pt(0, 0) || m.ToImage(image.Pt(3, 4)) != image.Pt(3, 4) {
		t.Fatalf("zero value should map identically")
	}
	var nilModel *ViewportModel
	if nilModel.ToDisplay(image.Rect(1, 2, 3, 4)) != image.Rect(1, 2, 3, 4) {
		t.Fatalf("nil model should map identically")
	}
	nilModel.Set(image.Rect(0, 0, 1, 1), image.Pt(1, 1))
}

func TestViewportModel_NonZeroOrigin(t *testing.T) {
	m := NewViewportModel()
	m.Set(image.Rect(10, 20, 110, 120), image.Pt(100, 100))
	if p := m.ToImage(image.Pt(0, 0)); p != image.Pt(10, 20) {
		t.Fatalf("ToImage origin = %v", p)
	}
	if r := m.ToDisplay(image.Rect(10, 20, 30, 40)); r != image.Rect(0, 0, 20, 20) {
		t.Fatalf("ToDisplay = %v", r)
	}
}

func TestInputModel_CoalescesMotion(t *testing.T) {
	var m InputModel
	if m.Pending() {
		t.Fatalf("zero value should be empty")
	}
	m.PushMotion(image.Pt(1, 1))
	m.PushMotion(image.Pt(5, 6))
	m.PushKey("d")
	m.PushKey("")
	m.PushClick(ButtonPrimary, image.Pt(7, 8))
	m.PushKey("s")
	if !m.Pending() {
		t.Fatalf("expected pending input")
	}
	in := m.Drain()
	if !in.Moved || in.Pointer != image.Pt(5, 6) {
		t.Fatalf("motion not coalesced: %+v", in)
	}
	if len(in.Events) != 3 {
		t.Fatalf("expected 3 events, got %v", in.Events)
	}
	if in.Events[0].Key != "d" || in.Events[1].IsKey() || in.Events[1].Button != ButtonPrimary || in.Events[2].Key != "s" {
		t.Fatalf("events out of order: %v", in.Events)
	}
	if in.Events[1].Pos != image.Pt(7, 8) {
		t.Fatalf("click position lost: %v", in.Events[1])
	}
	if m.Pending() {
		t.Fatalf("drain must clear the queue")
	}
}
