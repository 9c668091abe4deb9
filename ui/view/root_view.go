package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/patch-cropper-go/config"
	"github.com/soocke/patch-cropper-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the frame and status subviews and satisfies the presenter view contracts.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Frame  FrameView
	Status StatusBar
}

// Handlers groups the callbacks the view forwards Tk events to.
type Handlers struct {
	OnKey    func(keysym string)
	OnMotion func(x, y int)
	OnButton func(b model.PointerButton, x, y int)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: the image frame on row 0 and the status bar below.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	rv.Frame = NewFrameView(0, h.OnMotion, h.OnButton)
	rv.Status = NewStatusBar(1)
	if h.OnKey != nil {
		Bind(App, "<KeyPress>", Command(func(e *Event) { h.OnKey(e.Keysym) }))
	}
}

// MaxFrameSize is the largest frame the configured window can show, leaving
// room for the status bar.
func (rv *RootView) MaxFrameSize() image.Point {
	if rv == nil || rv.cfg == nil {
		return image.Pt(800, 800)
	}
	const statusHeight = 60
	w, h := rv.cfg.WindowW, rv.cfg.WindowH-statusHeight
	if h < 100 {
		h = 100
	}
	return image.Pt(w, h)
}

// RestoreGeometry applies the configured window position and size.
func (rv *RootView) RestoreGeometry() {
	if rv == nil || rv.cfg == nil {
		return
	}
	r := image.Rect(rv.cfg.WindowX, rv.cfg.WindowY, rv.cfg.WindowX+rv.cfg.WindowW, rv.cfg.WindowY+rv.cfg.WindowH)
	WmGeometry(App, FormatGeometry(r))
}

// CaptureGeometry copies the current window geometry into the config.
// Returns false when Tk reports an unparsable geometry.
func (rv *RootView) CaptureGeometry() bool {
	if rv == nil || rv.cfg == nil {
		return false
	}
	r, ok := ParseGeometry(WmGeometry(App))
	if !ok {
		if rv.logger != nil {
			rv.logger.Debug("window geometry not parsable")
		}
		return false
	}
	rv.cfg.WindowX, rv.cfg.WindowY = r.Min.X, r.Min.Y
	rv.cfg.WindowW, rv.cfg.WindowH = r.Dx(), r.Dy()
	return true
}

// ShowFrame proxies to the frame view.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Frame != nil {
		rv.Frame.ShowFrame(img)
	}
}

func (rv *RootView) SetStatus(position, total int, name string, patches int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(position, total, name, patches)
	}
}

func (rv *RootView) SetMessage(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetMessage(text)
	}
}

// SetSession updates both the per-image and total durations.
func (rv *RootView) SetSession(onImage, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(onImage, total)
	}
}

func (rv *RootView) SetSaved(n int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSaved(n)
	}
}
