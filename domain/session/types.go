package session

import (
	"image"

	"github.com/soocke/patch-cropper-go/domain/export"
	"github.com/soocke/patch-cropper-go/domain/placement"
)

// State enumerates the session lifecycle.
type State int

const (
	StateBrowsing State = iota
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Command is a keyboard-level action.
type Command int

const (
	CmdNone Command = iota
	CmdNext
	CmdPrev
	CmdSave
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdNext:
		return "next"
	case CmdPrev:
		return "prev"
	case CmdSave:
		return "save"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// ImageSource loads images by path. Reload must bypass any cache.
type ImageSource interface {
	Load(path string) (image.Image, error)
	Reload(path string) (image.Image, error)
}

// PatchWriter persists the squares of one image.
type PatchWriter interface {
	WritePatches(srcPath string, img image.Image, squares []placement.Square) (export.Result, error)
}

// Listener is notified after the current image changes.
type Listener func(index int, path string)

// Contract is the surface the presenter drives.
type Contract interface {
	State() State
	Index() int
	Len() int
	Path() string
	Image() image.Image
	Squares() []placement.Square
	Preview() (placement.Square, bool)
	Dispatch(cmd Command) (bool, error)
	Save() (export.Result, error)
	PointerMove(p image.Point) bool
	PrimaryClick(p image.Point) bool
	MiddleClick(p image.Point) bool
}
