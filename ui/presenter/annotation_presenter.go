package presenter

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/soocke/patch-cropper-go/domain/session"
	"github.com/soocke/patch-cropper-go/ui/images"
	"github.com/soocke/patch-cropper-go/ui/model"
)

// AnnotationView describes the UI surface updated by the presenter.
type AnnotationView interface {
	ShowFrame(img image.Image)
	SetStatus(position, total int, name string, patches int)
	SetMessage(text string)
}

// Style holds overlay colors and stroke width, in display pixels.
type Style struct {
	Preview     color.RGBA
	Committed   color.RGBA
	StrokeWidth int
	ShowCaption bool
	CaptionFg   color.RGBA
	CaptionBg   color.RGBA
	Placeholder color.RGBA
}

// SessionTimer receives image changes and save counts.
type SessionTimer interface {
	ImageChanged(now time.Time)
	AddSaved(n int)
}

// AnnotationPresenter applies queued view input to the session once per tick
// and redraws the frame when something changed.
type AnnotationPresenter struct {
	sess   session.Contract
	input  *model.InputModel
	vp     *model.ViewportModel
	timer  SessionTimer
	view   AnnotationView
	keys   Keymap
	style  Style
	maxW   int
	maxH   int
	logger *slog.Logger

	base       *image.RGBA
	baseIndex  int
	pointer    image.Point
	hasPointer bool
	dirty      bool
	closed     bool
}

// NewAnnotationPresenter constructs the presenter. maxSize bounds the displayed frame.
func NewAnnotationPresenter(sess session.Contract, input *model.InputModel, vp *model.ViewportModel, timer SessionTimer, view AnnotationView, keys Keymap, style Style, maxSize image.Point, logger *slog.Logger) *AnnotationPresenter {
	if input == nil {
		input = &model.InputModel{}
	}
	if vp == nil {
		vp = model.NewViewportModel()
	}
	if style.StrokeWidth < 1 {
		style.StrokeWidth = 1
	}
	return &AnnotationPresenter{
		sess:   sess,
		input:  input,
		vp:     vp,
		timer:  timer,
		view:   view,
		keys:   keys,
		style:  style,
		maxW:   maxSize.X,
		maxH:   maxSize.Y,
		logger: logger,
		dirty:  true,
	}
}

// OnKey queues a key press from the view.
func (p *AnnotationPresenter) OnKey(keysym string) { p.input.PushKey(keysym) }

// OnMotion queues a pointer move (display coordinates).
func (p *AnnotationPresenter) OnMotion(x, y int) { p.input.PushMotion(image.Pt(x, y)) }

// OnButton queues a button press (display coordinates).
func (p *AnnotationPresenter) OnButton(b model.PointerButton, x, y int) {
	p.input.PushClick(b, image.Pt(x, y))
}

// Closed reports whether the user quit.
func (p *AnnotationPresenter) Closed() bool { return p == nil || p.closed }

// Quit closes the session outside of the key path (window close button).
func (p *AnnotationPresenter) Quit() {
	if p == nil || p.closed {
		return
	}
	if p.sess != nil {
		_, _ = p.sess.Dispatch(session.CmdQuit)
	}
	p.closed = true
}

// Tick drains queued input, applies it in order, and redraws when dirty.
func (p *AnnotationPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.view == nil || p.closed {
		return
	}
	if p.base == nil || p.baseIndex != p.sess.Index() {
		p.rebase(now)
	}
	in := p.input.Drain()
	for _, ev := range in.Events {
		if ev.IsKey() {
			p.handleKey(ev.Key, now)
			if p.closed {
				return
			}
			continue
		}
		p.handleClick(ev)
	}
	if in.Moved {
		p.pointer, p.hasPointer = in.Pointer, true
		if p.sess.PointerMove(p.vp.ToImage(in.Pointer)) {
			p.dirty = true
		}
	}
	if p.dirty {
		p.render()
		p.dirty = false
	}
}

func (p *AnnotationPresenter) handleKey(keysym string, now time.Time) {
	cmd := p.keys.Lookup(keysym)
	switch cmd {
	case session.CmdNone:
		return
	case session.CmdQuit:
		p.Quit()
		if p.logger != nil {
			p.logger.Info("quit requested", "key", keysym)
		}
	case session.CmdSave:
		want := len(p.sess.Squares())
		res, err := p.sess.Save()
		name := filepath.Base(p.sess.Path())
		// a failed save may still have written the leading patches
		if p.timer != nil && res.Count > 0 {
			p.timer.AddSaved(res.Count)
		}
		if err != nil {
			if p.logger != nil {
				p.logger.Error("save failed", "image", name, "written", res.Count, "error", err)
			}
			if res.Count > 0 {
				p.view.SetMessage(fmt.Sprintf("Save failed after %d of %d patches for %s: %v", res.Count, want, name, err))
			} else {
				p.view.SetMessage(fmt.Sprintf("Save failed: %v", err))
			}
			return
		}
		p.view.SetMessage(fmt.Sprintf("Patches saved for %s: %d", name, res.Count))
	default:
		changed, err := p.sess.Dispatch(cmd)
		if err != nil {
			if p.logger != nil {
				p.logger.Error("command failed", "command", cmd.String(), "error", err)
			}
			p.view.SetMessage(err.Error())
		} else if changed {
			p.view.SetMessage("")
		}
		if changed {
			p.rebase(now)
		}
	}
}

func (p *AnnotationPresenter) handleClick(ev model.Event) {
	p.pointer, p.hasPointer = ev.Pos, true
	pos := p.vp.ToImage(ev.Pos)
	var changed bool
	switch ev.Button {
	case model.ButtonPrimary:
		changed = p.sess.PrimaryClick(pos)
	case model.ButtonMiddle:
		changed = p.sess.MiddleClick(pos)
	}
	if changed {
		p.dirty = true
	}
}

// rebase rebuilds the scaled frame for the current image and replays the
// last pointer position so the preview follows immediately.
func (p *AnnotationPresenter) rebase(now time.Time) {
	img := p.sess.Image()
	if img == nil {
		w, h, _ := images.FitSize(400, 300, p.maxW, p.maxH)
		p.base = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(p.base, p.base.Bounds(), image.NewUniform(p.style.Placeholder), image.Point{}, draw.Src)
		p.vp.Set(image.Rectangle{}, image.Point{})
	} else {
		p.base = images.ScaleToFit(img, p.maxW, p.maxH)
		p.vp.Set(img.Bounds(), p.base.Bounds().Size())
	}
	p.baseIndex = p.sess.Index()
	if p.timer != nil {
		p.timer.ImageChanged(now)
	}
	if p.hasPointer {
		p.sess.PointerMove(p.vp.ToImage(p.pointer))
	}
	p.dirty = true
}

func (p *AnnotationPresenter) render() {
	squares := p.sess.Squares()
	boxes := make([]images.Box, 0, len(squares)+1)
	if pv, ok := p.sess.Preview(); ok {
		boxes = append(boxes, images.Box{Rect: p.vp.ToDisplay(pv.Rect()), Color: p.style.Preview, Width: p.style.StrokeWidth})
	}
	for _, sq := range squares {
		boxes = append(boxes, images.Box{Rect: p.vp.ToDisplay(sq.Rect()), Color: p.style.Committed, Width: p.style.StrokeWidth})
	}
	name := filepath.Base(p.sess.Path())
	caption := ""
	if p.style.ShowCaption {
		caption = fmt.Sprintf("%d/%d %s [%d]", p.sess.Index()+1, p.sess.Len(), name, len(squares))
	}
	p.view.ShowFrame(images.Compose(p.base, boxes, caption, p.style.CaptionFg, p.style.CaptionBg))
	p.view.SetStatus(p.sess.Index()+1, p.sess.Len(), name, len(squares))
}
