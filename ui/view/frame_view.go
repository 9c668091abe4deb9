package view

import (
	"fmt"
	"image"
	"runtime"

	"github.com/soocke/patch-cropper-go/ui/images"
	"github.com/soocke/patch-cropper-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// FrameView shows the rendered image frame and reports pointer input in
// frame pixel coordinates.
type FrameView interface {
	ShowFrame(img image.Image)
}

type frameView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

// NewFrameView creates the frame label at (row, 0) and binds pointer events.
// The label has no border or padding so event coordinates equal frame pixels.
func NewFrameView(row int, onMotion func(x, y int), onButton func(b model.PointerButton, x, y int)) FrameView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	lbl := Label(Image(photo), Borderwidth(0), Highlightthickness(0), Padx("0"), Pady("0"), Cursor("crosshair"))
	Grid(lbl, Row(row), Column(0), Columnspan(6), Sticky("nw"))
	v := &frameView{label: lbl, prevPhoto: photo}

	if onMotion != nil {
		Bind(lbl, "<Motion>", Command(func(e *Event) { onMotion(e.X, e.Y) }))
	}
	if onButton != nil {
		for n := 1; n <= 3; n++ {
			b := pointerButton(n, runtime.GOOS)
			Bind(lbl, fmt.Sprintf("<ButtonPress-%d>", n), Command(func(e *Event) { onButton(b, e.X, e.Y) }))
		}
	}
	return v
}

func (v *frameView) ShowFrame(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevPhoto = newPhoto
	v.label.Configure(Image(newPhoto))
}

// pointerButton maps a Tk button number to a pointer button. Tk on Aqua
// (macOS) numbers the right button 2 and the middle button 3; X11 and
// Windows use 2 for middle and 3 for right.
func pointerButton(tkButton int, goos string) model.PointerButton {
	switch tkButton {
	case 1:
		return model.ButtonPrimary
	case 2:
		if goos == "darwin" {
			return model.ButtonSecondary
		}
		return model.ButtonMiddle
	case 3:
		if goos == "darwin" {
			return model.ButtonMiddle
		}
		return model.ButtonSecondary
	}
	return 0
}
