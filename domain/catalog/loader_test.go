package catalog

import (
	"errors"
	"image"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/disintegration/imaging"
)

func TestLoader_CachesDecodedImages(t *testing.T) {
	calls := map[string]int{}
	decode := func(path string) (image.Image, error) {
		calls[path]++
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	}
	l, err := NewLoader(2, decode)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := l.Load("a.png"); err != nil {
			t.Fatal(err)
		}
	}
	if calls["a.png"] != 1 {
		t.Fatalf("expected a single decode, got %d", calls["a.png"])
	}
	_, _ = l.Load("b.png")
	_, _ = l.Load("c.png") // evicts a.png
	_, _ = l.Load("a.png")
	if calls["a.png"] != 2 {
		t.Fatalf("expected re-decode after eviction, got %d", calls["a.png"])
	}
	st := l.Stats()
	if st.Hits != 2 || st.Misses != 4 || st.Entries != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestLoader_ReloadBypassesCache(t *testing.T) {
	calls := 0
	l, _ := NewLoader(4, func(string) (image.Image, error) {
		calls++
		return image.NewGray(image.Rect(0, 0, 1, 1)), nil
	})
	_, _ = l.Load("x.jpg")
	_, _ = l.Reload("x.jpg")
	if calls != 2 {
		t.Fatalf("reload should hit the decoder, calls=%d", calls)
	}
}

func TestLoader_DecodeError(t *testing.T) {
	boom := errors.New("boom")
	l, _ := NewLoader(1, func(string) (image.Image, error) { return nil, boom })
	if _, err := l.Load("bad.png"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}
	if l.Stats().Entries != 0 {
		t.Fatalf("failed decode must not be cached")
	}
}

func TestLoader_DefaultDecoderReadsFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := imaging.Save(imaging.New(30, 20, image.Black.C), path); err != nil {
		t.Fatal(err)
	}
	l, err := NewLoader(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := l.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestLoader_PrefetchWarmsCache(t *testing.T) {
	var calls atomic.Int32
	l, _ := NewLoader(2, func(string) (image.Image, error) {
		calls.Add(1)
		return image.NewGray(image.Rect(0, 0, 1, 1)), nil
	})
	done := make(chan error, 1)
	go func() { done <- l.Prefetch("next.png") }()
	if err := <-done; err != nil {
		t.Fatalf("prefetch: %v", err)
	}
	if err := l.Prefetch("next.png"); err != nil {
		t.Fatalf("second prefetch: %v", err)
	}
	if _, err := l.Load("next.png"); err != nil {
		t.Fatal(err)
	}
	st := l.Stats()
	if calls.Load() != 1 || st.Hits != 1 || st.Misses != 0 {
		t.Fatalf("calls=%d stats=%+v", calls.Load(), st)
	}
}
