package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// ErrNoImages is returned by Scan when the directory holds no usable image.
var ErrNoImages = errors.New("no images found in the directory")

// Order selects how Scan sorts file names.
type Order int

const (
	// Lexical compares names byte-wise ("img10" < "img2").
	Lexical Order = iota
	// Natural compares embedded numbers by value ("img2" < "img10").
	Natural
)

// ParseOrder maps a config value onto an Order. Unknown values fall back to Lexical.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "natural") {
		return Natural
	}
	return Lexical
}

func (o Order) String() string {
	if o == Natural {
		return "natural"
	}
	return "lexical"
}

// IsImage reports whether name carries one of the accepted extensions.
func IsImage(name string) bool {
	return strings.HasSuffix(name, ".jpg") || strings.HasSuffix(name, ".png")
}

// Scan lists the images directly inside dir, sorted by order.
// Subdirectories are not descended into.
func Scan(dir string, order Order) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read images dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	if len(out) == 0 {
		return nil, ErrNoImages
	}
	switch order {
	case Natural:
		sort.SliceStable(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	default:
		sort.Strings(out)
	}
	return out, nil
}
