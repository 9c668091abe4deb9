package view

import (
	"fmt"
	"time"

	"github.com/soocke/patch-cropper-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the current position, patch counts, timings and the last message.
type StatusBar interface {
	SetStatus(position, total int, name string, patches int)
	SetSession(onImage, total time.Duration)
	SetSaved(n int)
	SetMessage(text string)
}

type statusBar struct {
	positionLbl *TLabelWidget
	nameLbl     *TLabelWidget
	patchesLbl  *TLabelWidget
	timeLbl     *TLabelWidget
	savedLbl    *TLabelWidget
	messageLbl  *TLabelWidget
}

// NewStatusBar lays the labels out on two rows starting at row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		positionLbl: TLabel(Style(theme.StyleStatusLabel), Width(12)),
		nameLbl:     TLabel(Style(theme.StyleStatusLabel), Width(28)),
		patchesLbl:  TLabel(Style(theme.StyleStatusLabel), Width(12)),
		timeLbl:     TLabel(Style(theme.StyleStatusLabel), Width(26)),
		savedLbl:    TLabel(Style(theme.StyleStatusLabel), Width(12)),
		messageLbl:  TLabel(Style(theme.StyleMessageLabel)),
	}
	for col, w := range []*TLabelWidget{s.positionLbl, s.nameLbl, s.patchesLbl, s.timeLbl, s.savedLbl} {
		Grid(w, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	}
	Grid(s.messageLbl, Row(row+1), Column(0), Columnspan(6), Sticky("we"), Padx("0.2m"))
	s.positionLbl.Configure(Txt("Image -/-"))
	s.patchesLbl.Configure(Txt("Patches: 0"))
	s.timeLbl.Configure(Txt("Image 00:00 Total 00:00"))
	s.savedLbl.Configure(Txt("Saved: 0"))
	return s
}

func (s *statusBar) SetStatus(position, total int, name string, patches int) {
	if s == nil || s.positionLbl == nil {
		return
	}
	s.positionLbl.Configure(Txt(fmt.Sprintf("Image %d/%d", position, total)))
	s.nameLbl.Configure(Txt(name))
	s.patchesLbl.Configure(Txt(fmt.Sprintf("Patches: %d", patches)))
}

// SetSession updates the per-image and total durations.
func (s *statusBar) SetSession(onImage, total time.Duration) {
	if s == nil || s.timeLbl == nil {
		return
	}
	s.timeLbl.Configure(Txt(fmt.Sprintf("Image %s Total %s", clock(onImage), clock(total))))
}

func (s *statusBar) SetSaved(n int) {
	if s == nil || s.savedLbl == nil {
		return
	}
	s.savedLbl.Configure(Txt(fmt.Sprintf("Saved: %d", n)))
}

func (s *statusBar) SetMessage(text string) {
	if s == nil || s.messageLbl == nil {
		return
	}
	s.messageLbl.Configure(Txt(text))
}

// clock formats d as MM:SS, switching to H:MM:SS past an hour.
func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	h, m, sec := seconds/3600, (seconds/60)%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
