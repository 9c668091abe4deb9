package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback,
// or OnClosed once the annotation presenter reports the user quit.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Annotation *AnnotationPresenter
	Session    *SessionPresenter
	Schedule   func()
	OnClosed   func()
}

func NewLoop(annotation *AnnotationPresenter, sess *SessionPresenter, schedule func(), onClosed func()) *Loop {
	return &Loop{Annotation: annotation, Session: sess, Schedule: schedule, OnClosed: onClosed}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Annotation != nil {
		l.Annotation.Tick(now)
		if l.Annotation.Closed() {
			if l.OnClosed != nil {
				l.OnClosed()
			}
			return
		}
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
