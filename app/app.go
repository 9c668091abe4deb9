package app

import (
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/patch-cropper-go/config"
	"github.com/soocke/patch-cropper-go/ui/theme"
	"github.com/soocke/patch-cropper-go/ui/view"
)

type app struct {
	container *AppContainer
	logger    *slog.Logger
	tick      time.Duration
	afterID   string
	exited    bool
}

// NewApp sets up the main window for c. Start runs the Tk event loop.
func NewApp(title string, c *AppContainer) *app {
	a := &app{container: c, logger: c.Logger, tick: time.Duration(c.Config.TickMillis) * time.Millisecond}

	App.WmTitle(title)
	theme.SetDark(c.Config.DarkMode)
	c.RootView.RestoreGeometry()
	WmProtocol(App, "WM_DELETE_WINDOW", a.closeHandler)
	return a
}

// Start builds the layout, starts the update loop and blocks until the window closes.
func (a *app) Start() {
	c := a.container
	c.RootView.Build(view.Handlers{
		OnKey:    c.Annotation.OnKey,
		OnMotion: c.Annotation.OnMotion,
		OnButton: c.Annotation.OnButton,
	})
	c.Loop.Schedule = a.scheduleUpdate
	c.Loop.OnClosed = a.exitHandler

	// First tick right away so the image shows without waiting a period.
	c.Loop.Tick()

	App.Wait()
}

// closeHandler handles the window manager close button like the quit key.
func (a *app) closeHandler() {
	a.container.Annotation.Quit()
	a.exitHandler()
}

func (a *app) exitHandler() {
	if a.exited {
		return
	}
	a.exited = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.persistGeometry()
	Destroy(App)
}

// persistGeometry stores the last window geometry in the config file. Only
// the window fields are written back; flag overrides stay out of the file.
func (a *app) persistGeometry() {
	c := a.container
	if c.ConfigPath == "" || !c.RootView.CaptureGeometry() {
		return
	}
	stored, err := config.Load(c.ConfigPath)
	if err != nil {
		a.logger.Warn("config file unreadable, window geometry not saved", "path", c.ConfigPath, "error", err)
		return
	}
	stored.WindowX, stored.WindowY = c.Config.WindowX, c.Config.WindowY
	stored.WindowW, stored.WindowH = c.Config.WindowW, c.Config.WindowH
	if err := stored.Save(c.ConfigPath); err != nil {
		a.logger.Warn("saving window geometry failed", "path", c.ConfigPath, "error", err)
	}
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.container.Loop.Tick() })
}
