package placement

import "image"

// Square is an axis-aligned patch box in image coordinates. Min is the
// top-left corner and Max the bottom-right one; Max-Min equals the patch size
// on both axes.
type Square struct {
	Min, Max image.Point
}

// Rect returns the square as a half-open image.Rectangle suitable for cropping.
func (s Square) Rect() image.Rectangle { return image.Rectangle{Min: s.Min, Max: s.Max} }

// Size returns the side length.
func (s Square) Size() int { return s.Max.X - s.Min.X }

// Contains reports whether p lies inside the square, edges included.
func (s Square) Contains(p image.Point) bool {
	return s.Min.X <= p.X && p.X <= s.Max.X && s.Min.Y <= p.Y && p.Y <= s.Max.Y
}

// Overlaps reports whether a and b share any point. Two boxes are disjoint only
// when one lies entirely left, right, above or below the other, so boxes that
// merely touch along an edge overlap.
func Overlaps(a, b Square) bool {
	if a.Max.X < b.Min.X || a.Min.X > b.Max.X || a.Max.Y < b.Min.Y || a.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Fits reports whether a patch of the given size can be placed inside bounds.
func Fits(patchSize int, bounds image.Rectangle) bool {
	return patchSize > 0 && bounds.Dx() >= patchSize && bounds.Dy() >= patchSize
}

// ClampCenter moves (x, y) so that a patch centred on it stays inside bounds.
// The result is undefined when the patch does not fit; check Fits first.
func ClampCenter(x, y, patchSize int, bounds image.Rectangle) (int, int) {
	half := patchSize / 2
	return clamp(x, bounds.Min.X+half, bounds.Max.X-(patchSize-half)),
		clamp(y, bounds.Min.Y+half, bounds.Max.Y-(patchSize-half))
}

// SquareAt returns the patch centred on the clamped pointer position.
// ok is false when the image is smaller than the patch on either axis.
func SquareAt(x, y, patchSize int, bounds image.Rectangle) (sq Square, ok bool) {
	if !Fits(patchSize, bounds) {
		return Square{}, false
	}
	cx, cy := ClampCenter(x, y, patchSize, bounds)
	half := patchSize / 2
	min := image.Pt(cx-half, cy-half)
	return Square{Min: min, Max: min.Add(image.Pt(patchSize, patchSize))}, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
