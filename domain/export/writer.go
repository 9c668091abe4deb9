package export

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"

	"github.com/soocke/patch-cropper-go/domain/placement"
)

// PrepareOutputDir creates dir if needed and reports whether it already held entries.
func PrepareOutputDir(dir string) (nonEmpty bool, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Open(dir)
	if err != nil {
		return false, fmt.Errorf("open output dir: %w", err)
	}
	defer f.Close()
	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("list output dir: %w", err)
	}
	return true, nil
}

// PatchName returns the file name of the i-th patch cut from srcPath.
func PatchName(srcPath string, i int) string {
	base := filepath.Base(srcPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%d.png", base, i)
}

// Result summarizes one WritePatches call.
type Result struct {
	Count int
	Bytes int64
}

// Writer crops patches out of a source image and stores them as PNG files.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter returns a writer targeting dir. The directory is expected to exist
// (see PrepareOutputDir).
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// WritePatches saves one file per square, in order, named after srcPath.
// It stops at the first failure and returns what was written so far.
func (w *Writer) WritePatches(srcPath string, img image.Image, squares []placement.Square) (Result, error) {
	var res Result
	if img == nil && len(squares) > 0 {
		return res, fmt.Errorf("write patches for %s: nil image", srcPath)
	}
	for i, sq := range squares {
		b, r := img.Bounds(), sq.Rect()
		if !r.In(b) {
			return res, fmt.Errorf("patch %d %v outside image %v", i, r, b)
		}
		out := filepath.Join(w.dir, PatchName(srcPath, i))
		if err := imaging.Save(imaging.Crop(img, r), out); err != nil {
			return res, fmt.Errorf("save %s: %w", out, err)
		}
		if fi, err := os.Stat(out); err == nil {
			res.Bytes += fi.Size()
		}
		res.Count++
	}
	if w.logger != nil {
		w.logger.Info("patches saved",
			"source", filepath.Base(srcPath),
			"count", res.Count,
			"size", humanize.Bytes(uint64(res.Bytes)),
			"dir", w.dir,
		)
	}
	return res, nil
}
