package presenter

import (
	"time"

	"github.com/soocke/patch-cropper-go/ui/model"
)

// SessionView displays the time on the current image, the session total and
// the number of patches saved.
type SessionView interface {
	SetSession(onImage, total time.Duration)
	SetSaved(n int)
}

// SessionPresenter formats session timings from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	view SessionView

	lastImage, lastTotal int64
	lastSaved            int
	shown                bool
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, view: view}
}

// Tick advances the session model and pushes values to the view. The view is
// only touched when a displayed value changes (whole seconds).
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.view == nil {
		return
	}
	p.sess.OnTick(now)
	img, total := p.sess.Values()
	is, ts := int64(img/time.Second), int64(total/time.Second)
	if !p.shown || is != p.lastImage || ts != p.lastTotal {
		p.view.SetSession(img, total)
		p.lastImage, p.lastTotal = is, ts
	}
	if saved := p.sess.Saved(); !p.shown || saved != p.lastSaved {
		p.view.SetSaved(saved)
		p.lastSaved = saved
	}
	p.shown = true
}
