package export

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/soocke/patch-cropper-go/domain/placement"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func square(x, y, size int) placement.Square {
	return placement.Square{Min: image.Pt(x, y), Max: image.Pt(x+size, y+size)}
}

func TestPatchName(t *testing.T) {
	cases := map[string]string{
		"/data/in/scan_001.jpg": "scan_001_3.png",
		"a.b.png":               "a.b_3.png",
		"noext":                 "noext_3.png",
	}
	for in, want := range cases {
		if got := PatchName(in, 3); got != want {
			t.Fatalf("PatchName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrepareOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "patches")
	nonEmpty, err := PrepareOutputDir(dir)
	if err != nil || nonEmpty {
		t.Fatalf("fresh dir: nonEmpty=%v err=%v", nonEmpty, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "old.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	nonEmpty, err = PrepareOutputDir(dir)
	if err != nil || !nonEmpty {
		t.Fatalf("populated dir: nonEmpty=%v err=%v", nonEmpty, err)
	}
}

func TestWritePatches_WritesOneFilePerSquare(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(100, 60, color.NRGBA{10, 20, 30, 255})
	// mark the second patch so its content can be checked
	for y := 0; y < 20; y++ {
		for x := 50; x < 70; x++ {
			src.Set(x, y+30, color.NRGBA{255, 0, 0, 255})
		}
	}
	squares := []placement.Square{square(0, 0, 20), square(50, 30, 20), square(75, 5, 20)}
	w := NewWriter(dir, discardLogger)
	res, err := w.WritePatches("/in/photo.jpg", src, squares)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if res.Count != 3 || res.Bytes <= 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	entries, _ := os.ReadDir(dir)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	sort.Strings(got)
	want := []string{"photo_0.png", "photo_1.png", "photo_2.png"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("files %v, want %v", got, want)
		}
	}
	patch, err := imaging.Open(filepath.Join(dir, "photo_1.png"))
	if err != nil {
		t.Fatal(err)
	}
	if b := patch.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("patch size %v", b)
	}
	r, g, _, _ := patch.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 0 {
		t.Fatalf("patch 1 should be red, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestWritePatches_NoSquares(t *testing.T) {
	dir := t.TempDir()
	res, err := NewWriter(dir, nil).WritePatches("x.png", imaging.New(8, 8, color.Black), nil)
	if err != nil || res.Count != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", res, err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("expected no files, got %d", len(entries))
	}
}

func TestWritePatches_RejectsOutOfBounds(t *testing.T) {
	w := NewWriter(t.TempDir(), nil)
	if _, err := w.WritePatches("x.png", imaging.New(10, 10, color.Black), []placement.Square{square(5, 5, 10)}); err == nil {
		t.Fatalf("expected error for a patch crossing the image edge")
	}
	if _, err := w.WritePatches("x.png", nil, []placement.Square{square(0, 0, 2)}); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestWritePatches_StopsAtFirstFailureKeepingCount(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(60, 60, color.NRGBA{0, 0, 0, 255})
	squares := []placement.Square{square(0, 0, 20), square(50, 50, 20), square(20, 20, 20)}
	res, err := NewWriter(dir, discardLogger).WritePatches("/in/p.png", src, squares)
	if err == nil {
		t.Fatalf("expected an error for the out-of-bounds square")
	}
	if res.Count != 1 || res.Bytes <= 0 {
		t.Fatalf("result must report the file written before the failure: %+v", res)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 || entries[0].Name() != "p_0.png" {
		t.Fatalf("unexpected files %v", entries)
	}
}
