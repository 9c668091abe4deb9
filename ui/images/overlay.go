package images

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Box is an outlined rectangle drawn over the frame.
type Box struct {
	Rect  image.Rectangle
	Color color.RGBA
	Width int
}

// DrawOutline strokes r with the given width, growing inwards. Parts outside
// dst are clipped.
func DrawOutline(dst draw.Image, r image.Rectangle, col color.Color, width int) {
	if dst == nil || r.Empty() {
		return
	}
	if width < 1 {
		width = 1
	}
	if width*2 >= r.Dx() || width*2 >= r.Dy() {
		fill(dst, r, col)
		return
	}
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	fill(dst, image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), col)
	fill(dst, image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), col)
}

func fill(dst draw.Image, r image.Rectangle, col color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

const (
	captionPad    = 4
	captionHeight = 13 + 2*captionPad
)

// DrawCaption writes text on a filled strip along the top edge of dst.
func DrawCaption(dst *image.RGBA, text string, fg, bg color.Color) {
	if dst == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	meas := &font.Drawer{Face: face}
	w := meas.MeasureString(text).Ceil() + 2*captionPad
	strip := image.Rect(dst.Rect.Min.X, dst.Rect.Min.Y, dst.Rect.Min.X+w, dst.Rect.Min.Y+captionHeight)
	fill(dst, strip, bg)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(strip.Min.X+captionPad, strip.Min.Y+captionPad+face.Ascent),
	}
	d.DrawString(text)
}

// Compose copies base and draws boxes (in order) and an optional caption on top.
func Compose(base *image.RGBA, boxes []Box, caption string, captionFg, captionBg color.Color) *image.RGBA {
	if base == nil {
		return nil
	}
	out := Clone(base)
	for _, b := range boxes {
		DrawOutline(out, b.Rect, b.Color, b.Width)
	}
	DrawCaption(out, caption, captionFg, captionBg)
	return out
}
