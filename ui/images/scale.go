package images

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
// Speed is favoured over size since the bytes only feed a Tk photo.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// FitSize returns the dimensions of a w x h image scaled down to fit within
// maxW x maxH preserving aspect ratio, and the scale factor used. Images that
// already fit keep their size (scale 1).
func FitSize(w, h, maxW, maxH int) (int, int, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0, 1
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	if w <= maxW && h <= maxH {
		return w, h, 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	newW := int(float64(w)*ratio + 0.5)
	newH := int(float64(h)*ratio + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return newW, newH, ratio
}

// ScaleToFit returns an RGBA copy of src scaled down (bilinear) so it fits
// within maxW x maxH. The copy is always fresh, origin at 0,0.
func ScaleToFit(src image.Image, maxW, maxH int) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	newW, newH, _ := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	if newW == b.Dx() && newH == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Clone returns a fresh RGBA copy of src.
func Clone(src *image.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}
	dst := &image.RGBA{Pix: make([]byte, len(src.Pix)), Stride: src.Stride, Rect: src.Rect}
	copy(dst.Pix, src.Pix)
	return dst
}
