package theme

// Centralized theming and styling initialization for the cropper UI.
// Provides palette constants, overlay colors and SetDark to activate a base
// theme and configure semantic widget styles.

import (
	"image/color"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg      = "#f7f9fb" // app background
	ColorSurface = "#ffffff" // status bar
	ColorPrimary = "#2563eb"
	ColorText    = "#1e293b"
)

// Overlay colors drawn on top of the image.
var (
	PreviewColor     = color.RGBA{0, 255, 0, 255} // square following the pointer
	CommittedColor   = color.RGBA{255, 0, 0, 255} // placed squares
	CaptionFg        = color.RGBA{255, 255, 255, 255}
	CaptionBg        = color.RGBA{15, 23, 42, 200}
	PlaceholderColor = color.RGBA{100, 116, 139, 255}
)

// PaletteSnapshot represents resolved colors for one mode.
type PaletteSnapshot struct {
	AppBg   string
	Surface string
	Primary string
	Text    string
}

// PaletteFor returns the colors for dark or light mode.
func PaletteFor(dark bool) PaletteSnapshot {
	if dark {
		return PaletteSnapshot{
			AppBg:   "#0f172a",
			Surface: "#1e293b",
			Primary: "#3b82f6",
			Text:    "#f1f5f9",
		}
	}
	return PaletteSnapshot{
		AppBg:   ColorBg,
		Surface: ColorSurface,
		Primary: ColorPrimary,
		Text:    ColorText,
	}
}

// style names used with Style("status.TLabel") etc.
const (
	StyleStatusLabel  = "status.TLabel"
	StyleMessageLabel = "message.TLabel"
)

// SetDark activates the base theme and applies the light or dark styles.
func SetDark(dark bool) {
	_ = ActivateTheme("azure light") // baseline metrics
	p := PaletteFor(dark)
	App.Configure(Background(p.AppBg))

	StyleConfigure(StyleStatusLabel,
		Foreground(p.Text),
		Background(p.Surface),
		Padding("4p 2p"),
	)
	StyleConfigure(StyleMessageLabel,
		Foreground(p.Primary),
		Background(p.Surface),
		Padding("4p 2p"),
	)
}
