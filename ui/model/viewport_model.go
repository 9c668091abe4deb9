package model

import "image"

// ViewportModel maps between image pixels and the pixels of the displayed,
// scaled-down frame. Each axis keeps its own ratio since both display
// dimensions are rounded independently. The zero value is an identity mapping.
// No synchronization needed: updates occur on the UI thread tick.
type ViewportModel struct {
	image   image.Rectangle
	display image.Point
}

func NewViewportModel() *ViewportModel { return &ViewportModel{} }

// Set records the image bounds and the size it is displayed at.
func (m *ViewportModel) Set(imageBounds image.Rectangle, display image.Point) {
	if m == nil {
		return
	}
	m.image = imageBounds
	m.display = display
}

func (m *ViewportModel) identity() bool {
	return m == nil || m.image.Dx() <= 0 || m.image.Dy() <= 0 || m.display.X <= 0 || m.display.Y <= 0
}

// ToImage converts a display position into image coordinates.
// Positions outside the frame map outside the image; the placement engine clamps.
func (m *ViewportModel) ToImage(p image.Point) image.Point {
	if m.identity() {
		return p
	}
	return image.Pt(
		m.image.Min.X+p.X*m.image.Dx()/m.display.X,
		m.image.Min.Y+p.Y*m.image.Dy()/m.display.Y,
	)
}

// ToDisplay converts an image-space rectangle into display coordinates, rounding to nearest.
func (m *ViewportModel) ToDisplay(r image.Rectangle) image.Rectangle {
	if m.identity() {
		return r
	}
	r = r.Sub(m.image.Min)
	w, h := m.image.Dx(), m.image.Dy()
	sx := func(v int) int { return (v*m.display.X + w/2) / w }
	sy := func(v int) int { return (v*m.display.Y + h/2) / h }
	return image.Rect(sx(r.Min.X), sy(r.Min.Y), sx(r.Max.X), sy(r.Max.Y))
}
