package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/patch-cropper-go/config"
	"github.com/soocke/patch-cropper-go/domain/catalog"
	"github.com/soocke/patch-cropper-go/domain/export"
	"github.com/soocke/patch-cropper-go/domain/session"
	"github.com/soocke/patch-cropper-go/ui/model"
	"github.com/soocke/patch-cropper-go/ui/presenter"
	"github.com/soocke/patch-cropper-go/ui/theme"
	"github.com/soocke/patch-cropper-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Images     []string

	Loader   *catalog.Loader
	Writer   *export.Writer
	Session  *session.Session
	Input    *model.InputModel
	Viewport *model.ViewportModel
	Timing   *model.SessionModel
	RootView *view.RootView

	// Presenters
	Annotation       *presenter.AnnotationPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. No Tk calls are made; the
// loop's Schedule and OnClosed hooks are set by the app once the window exists.
// A failed load of the first image is logged and shown, not returned.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, images []string) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, Images: images}

	loader, err := catalog.NewLoader(cfg.CacheSize, nil)
	if err != nil {
		return nil, err
	}
	c.Loader = loader
	c.Writer = export.NewWriter(cfg.OutputPath, logger)

	sess, err := session.New(logger, images, cfg.PatchSize, loader, c.Writer)
	if sess == nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if err != nil {
		logger.Error("initial image load failed", "path", sess.Path(), "error", err)
	}
	c.Session = sess
	sess.AddListener(c.prefetchNext)
	c.prefetchNext(sess.Index(), sess.Path())

	c.Input = &model.InputModel{}
	c.Viewport = model.NewViewportModel()
	c.Timing = model.NewSessionModel()
	c.RootView = view.NewRootView(cfg, logger)

	keys := presenter.NewKeymap(cfg.KeyNext, cfg.KeyPrev, cfg.KeySave, cfg.KeyQuit)
	style := presenter.Style{
		Preview:     theme.PreviewColor,
		Committed:   theme.CommittedColor,
		StrokeWidth: cfg.StrokeWidth,
		ShowCaption: cfg.ShowCaption,
		CaptionFg:   theme.CaptionFg,
		CaptionBg:   theme.CaptionBg,
		Placeholder: theme.PlaceholderColor,
	}
	c.Annotation = presenter.NewAnnotationPresenter(sess, c.Input, c.Viewport, c.Timing, c.RootView, keys, style, c.RootView.MaxFrameSize(), logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Timing, c.RootView)
	c.Loop = presenter.NewLoop(c.Annotation, c.SessionPresenter, nil, nil)
	return c, nil
}

// prefetchNext warms the cache with the image after index in the background.
func (c *AppContainer) prefetchNext(index int, _ string) {
	next := index + 1
	if next >= len(c.Images) {
		return
	}
	path := c.Images[next]
	go func() {
		if err := c.Loader.Prefetch(path); err != nil {
			c.Logger.Debug("prefetch failed", "path", path, "error", err)
		}
	}()
}
