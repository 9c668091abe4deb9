package session

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/patch-cropper-go/domain/export"
	"github.com/soocke/patch-cropper-go/domain/placement"
)

// ErrClosed is returned by operations attempted after Quit.
var ErrClosed = errors.New("session closed")

// Session holds the browsing state: the ordered image list, the current
// index, the squares committed on the current image and the preview square.
// Not safe for concurrent use; it is driven from the UI tick only.
type Session struct {
	logger    *slog.Logger
	images    []string
	patchSize int
	source    ImageSource
	writer    PatchWriter

	state      State
	index      int
	img        image.Image
	bounds     image.Rectangle
	squares    *placement.Set
	preview    placement.Square
	hasPreview bool
	listeners  []Listener
}

// New creates a session over images and opens the first one. The returned
// error reports a failed initial load; the session is usable regardless.
func New(logger *slog.Logger, images []string, patchSize int, source ImageSource, writer PatchWriter) (*Session, error) {
	if len(images) == 0 {
		return nil, errors.New("session needs at least one image")
	}
	s := &Session{
		logger:    logger,
		images:    append([]string(nil), images...),
		patchSize: patchSize,
		source:    source,
		writer:    writer,
		squares:   placement.NewSet(),
	}
	return s, s.open(0)
}

// AddListener registers l for image changes.
func (s *Session) AddListener(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// open switches to image i, clearing squares and preview.
func (s *Session) open(i int) error {
	s.index = i
	s.squares.Clear()
	s.preview, s.hasPreview = placement.Square{}, false
	s.img, s.bounds = nil, image.Rectangle{}
	path := s.images[i]
	if s.logger != nil {
		s.logger.Info("displaying image", "path", path, "index", i+1, "total", len(s.images))
	}
	var err error
	if s.source != nil {
		var img image.Image
		img, err = s.source.Load(path)
		if err == nil {
			s.img = img
			s.bounds = img.Bounds()
			if !placement.Fits(s.patchSize, s.bounds) && s.logger != nil {
				s.logger.Warn("image smaller than patch, placement disabled", "path", path, "size", s.bounds.Size(), "patch", s.patchSize)
			}
		} else if s.logger != nil {
			s.logger.Error("image load failed", "path", path, "error", err)
		}
	}
	for _, l := range s.listeners {
		l(i, path)
	}
	return err
}

// Next advances to the following image. Returns false at the last image.
func (s *Session) Next() (bool, error) {
	if s.state == StateClosed {
		return false, ErrClosed
	}
	if s.index >= len(s.images)-1 {
		return false, nil
	}
	return true, s.open(s.index + 1)
}

// Prev goes back one image. Like Next it discards the current squares.
func (s *Session) Prev() (bool, error) {
	if s.state == StateClosed {
		return false, ErrClosed
	}
	if s.index == 0 {
		return false, nil
	}
	return true, s.open(s.index - 1)
}

// Save crops every committed square out of a fresh read of the current image.
func (s *Session) Save() (export.Result, error) {
	if s.state == StateClosed {
		return export.Result{}, ErrClosed
	}
	if s.writer == nil {
		return export.Result{}, errors.New("no patch writer configured")
	}
	path := s.images[s.index]
	squares := s.squares.Squares()
	var img image.Image
	if len(squares) > 0 {
		var err error
		img, err = s.source.Reload(path)
		if err != nil {
			return export.Result{}, fmt.Errorf("reload %s: %w", path, err)
		}
	}
	return s.writer.WritePatches(path, img, squares)
}

// Quit closes the session. Further commands return ErrClosed.
func (s *Session) Quit() {
	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	if s.logger != nil {
		s.logger.Debug("session state transition", "from", StateBrowsing.String(), "to", StateClosed.String())
	}
}

// Dispatch runs a keyboard command and reports whether a redraw is due.
func (s *Session) Dispatch(cmd Command) (bool, error) {
	switch cmd {
	case CmdNext:
		return s.Next()
	case CmdPrev:
		return s.Prev()
	case CmdSave:
		_, err := s.Save()
		return false, err
	case CmdQuit:
		s.Quit()
		return false, nil
	default:
		return false, nil
	}
}

// PointerMove recomputes the preview square for the pointer at p (image coordinates).
func (s *Session) PointerMove(p image.Point) bool {
	if s.state == StateClosed {
		return false
	}
	sq, ok := placement.SquareAt(p.X, p.Y, s.patchSize, s.bounds)
	if ok == s.hasPreview && sq == s.preview {
		return false
	}
	s.preview, s.hasPreview = sq, ok
	return true
}

// PrimaryClick commits the square at p unless it overlaps a committed one.
func (s *Session) PrimaryClick(p image.Point) bool {
	if s.state == StateClosed {
		return false
	}
	moved := s.PointerMove(p)
	if !s.hasPreview {
		return moved
	}
	return s.squares.TryAdd(s.preview) || moved
}

// MiddleClick removes the first committed square containing p. Like the
// preview, p is clamped first, so a click in the strip between the image
// edge and a square still hits it.
func (s *Session) MiddleClick(p image.Point) bool {
	if s.state == StateClosed {
		return false
	}
	if placement.Fits(s.patchSize, s.bounds) {
		p.X, p.Y = placement.ClampCenter(p.X, p.Y, s.patchSize, s.bounds)
	}
	return s.squares.RemoveAt(p)
}

func (s *Session) State() State { return s.state }
func (s *Session) Index() int   { return s.index }
func (s *Session) Len() int     { return len(s.images) }
func (s *Session) Path() string { return s.images[s.index] }

// Image returns the decoded current image, nil when it failed to load.
func (s *Session) Image() image.Image { return s.img }

// Squares returns the committed squares in insertion order.
func (s *Session) Squares() []placement.Square { return s.squares.Squares() }

// Preview returns the square following the pointer, if any.
func (s *Session) Preview() (placement.Square, bool) { return s.preview, s.hasPreview }

var _ Contract = (*Session)(nil)
