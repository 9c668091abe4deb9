package placement

import (
	"image"
	"math/rand"
	"testing"
	"testing/quick"
)

func sq(x0, y0, x1, y1 int) Square {
	return Square{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

func TestOverlaps_Symmetric(t *testing.T) {
	f := func(a, b Square) bool { return Overlaps(a, b) == Overlaps(b, a) }
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestOverlaps_Cases(t *testing.T) {
	base := sq(10, 10, 20, 20)
	cases := []struct {
		name string
		b    Square
		want bool
	}{
		{"identical", base, true},
		{"inside", sq(12, 12, 18, 18), true},
		{"partial", sq(15, 15, 25, 25), true},
		{"touching right edge", sq(20, 10, 30, 20), true},
		{"touching bottom edge", sq(10, 20, 20, 30), true},
		{"touching corner", sq(20, 20, 30, 30), true},
		{"left", sq(0, 10, 9, 20), false},
		{"right", sq(21, 10, 31, 20), false},
		{"above", sq(10, 0, 20, 9), false},
		{"below", sq(10, 21, 20, 31), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(base, c.b); got != c.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", base, c.b, got, c.want)
			}
		})
	}
}

// A box separated on one axis never overlaps, whatever the other axis says.
func TestOverlaps_SeparatedOnOneAxis(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := sq(rng.Intn(100), rng.Intn(100), 0, 0)
		a.Max = a.Min.Add(image.Pt(1+rng.Intn(50), 1+rng.Intn(50)))
		w, h := 1+rng.Intn(50), 1+rng.Intn(50)
		var b Square
		switch i % 4 {
		case 0: // left
			b.Max.X = a.Min.X - 1 - rng.Intn(20)
			b.Min.X = b.Max.X - w
			b.Min.Y = rng.Intn(200) - 50
			b.Max.Y = b.Min.Y + h
		case 1: // right
			b.Min.X = a.Max.X + 1 + rng.Intn(20)
			b.Max.X = b.Min.X + w
			b.Min.Y = rng.Intn(200) - 50
			b.Max.Y = b.Min.Y + h
		case 2: // above
			b.Max.Y = a.Min.Y - 1 - rng.Intn(20)
			b.Min.Y = b.Max.Y - h
			b.Min.X = rng.Intn(200) - 50
			b.Max.X = b.Min.X + w
		case 3: // below
			b.Min.Y = a.Max.Y + 1 + rng.Intn(20)
			b.Max.Y = b.Min.Y + h
			b.Min.X = rng.Intn(200) - 50
			b.Max.X = b.Min.X + w
		}
		if Overlaps(a, b) {
			t.Fatalf("case %d: %v and %v reported overlapping", i%4, a, b)
		}
	}
}

func TestSquareAt_CentersAndClamps(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 80)
	cases := []struct {
		name   string
		x, y   int
		wantTL image.Point
	}{
		{"center", 50, 40, image.Pt(30, 20)},
		{"top-left corner", 0, 0, image.Pt(0, 0)},
		{"bottom-right corner", 100, 80, image.Pt(60, 40)},
		{"beyond bounds", 500, -30, image.Pt(60, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := SquareAt(c.x, c.y, 40, bounds)
			if !ok {
				t.Fatalf("expected square to fit")
			}
			if s.Min != c.wantTL {
				t.Fatalf("top-left = %v, want %v", s.Min, c.wantTL)
			}
			if s.Size() != 40 || s.Max.Y-s.Min.Y != 40 {
				t.Fatalf("expected 40x40, got %v", s)
			}
		})
	}
}

func TestSquareAt_OddPatchStaysInside(t *testing.T) {
	bounds := image.Rect(0, 0, 64, 48)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		size := 1 + rng.Intn(48)
		s, ok := SquareAt(rng.Intn(200)-70, rng.Intn(200)-70, size, bounds)
		if !ok {
			t.Fatalf("size %d should fit in %v", size, bounds)
		}
		if !s.Rect().In(bounds) {
			t.Fatalf("square %v escapes %v", s, bounds)
		}
		if s.Rect().Dx() != size || s.Rect().Dy() != size {
			t.Fatalf("square %v is not %dx%d", s, size, size)
		}
	}
}

func TestSquareAt_PatchLargerThanImage(t *testing.T) {
	if _, ok := SquareAt(5, 5, 512, image.Rect(0, 0, 300, 900)); ok {
		t.Fatalf("expected no square when the patch is wider than the image")
	}
	if _, ok := SquareAt(5, 5, 0, image.Rect(0, 0, 300, 900)); ok {
		t.Fatalf("expected no square for a zero patch size")
	}
}

func TestSquareAt_ExactFit(t *testing.T) {
	s, ok := SquareAt(3, 90, 32, image.Rect(0, 0, 32, 32))
	if !ok || s.Min != image.Pt(0, 0) || s.Max != image.Pt(32, 32) {
		t.Fatalf("expected the whole image, got %v ok=%v", s, ok)
	}
}
