package theme

import "testing"

func TestPalette_ModesDiffer(t *testing.T) {
	light, dark := PaletteFor(false), PaletteFor(true)
	if light.AppBg != ColorBg || light.Text != ColorText {
		t.Fatalf("light palette not built from the constants: %+v", light)
	}
	if dark.AppBg == light.AppBg || dark.Text == light.Text || dark.Surface == light.Surface {
		t.Fatalf("dark palette must differ from light: %+v", dark)
	}
}
