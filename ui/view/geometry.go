package view

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]-?\d+)([+-]-?\d+)$`)

// ParseGeometry parses a Tk geometry string and returns the corresponding rectangle.
func ParseGeometry(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := geomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, okX := parseOffset(m[3])
	y, okY := parseOffset(m[4])
	if w <= 0 || h <= 0 || !okX || !okY {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// parseOffset handles "+N", "-N" and "+-N".
func parseOffset(s string) (int, bool) {
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.Atoi(s)
	return v, err == nil
}

// FormatGeometry is the inverse of ParseGeometry.
func FormatGeometry(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}
