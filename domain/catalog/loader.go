package catalog

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DecodeFunc decodes the image stored at path.
type DecodeFunc func(path string) (image.Image, error)

// CacheStats is a snapshot of the loader cache counters.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Loader decodes images from disk and keeps the most recently used ones in memory
// so that stepping back and forth between images stays responsive.
type Loader struct {
	cache  *lru.Cache[string, image.Image]
	decode DecodeFunc
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewLoader returns a loader caching up to size decoded images.
// A nil decode uses imaging.Open with EXIF auto-orientation.
func NewLoader(size int, decode DecodeFunc) (*Loader, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[string, image.Image](size)
	if err != nil {
		return nil, fmt.Errorf("image cache: %w", err)
	}
	if decode == nil {
		decode = openImage
	}
	return &Loader{cache: c, decode: decode}, nil
}

func openImage(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// Load returns the decoded image at path, from cache when possible.
func (l *Loader) Load(path string) (image.Image, error) {
	if img, ok := l.cache.Get(path); ok {
		l.hits.Add(1)
		return img, nil
	}
	l.misses.Add(1)
	return l.Reload(path)
}

// Reload decodes path from disk, bypassing and then refreshing the cache.
func (l *Loader) Reload(path string) (image.Image, error) {
	img, err := l.decode(path)
	if err != nil {
		l.cache.Remove(path)
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	l.cache.Add(path, img)
	return img, nil
}

// Stats returns the current cache counters. Safe for concurrent use.
func (l *Loader) Stats() CacheStats {
	if l == nil {
		return CacheStats{}
	}
	return CacheStats{Hits: l.hits.Load(), Misses: l.misses.Load(), Entries: l.cache.Len()}
}

// Prefetch decodes path into the cache unless it is already there. It does
// not touch the hit/miss counters and is safe to call from a goroutine.
func (l *Loader) Prefetch(path string) error {
	if l == nil || l.cache.Contains(path) {
		return nil
	}
	img, err := l.decode(path)
	if err != nil {
		return fmt.Errorf("prefetch %s: %w", path, err)
	}
	l.cache.Add(path, img)
	return nil
}
