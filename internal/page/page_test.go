package page

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSequenceIndex(t *testing.T) {
	tests := []struct {
		path string
		want uint64
	}{
		{"page1.png", 1},
		{"page10.png", 10},
		{"page002.png", 2},
		{"cover.png", 0},
		{"", 0},
		{"ch3/p12.jpg", 312},
		{"/scans/vol2/page_04.png", 204},
		{"a1b2c3.png", 123},
		{"99999999999999999999999.png", 0}, // overflows uint64
		{"page١.png", 0},                    // non-ASCII digit
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := SequenceIndex(tt.path); got != tt.want {
				t.Errorf("SequenceIndex(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	img := solid(4, 4, color.White)
	p := New("/scans/page7.png", img, "png", 3)

	if p.Index != 7 {
		t.Errorf("Index = %d, want 7", p.Index)
	}
	if p.Half != None {
		t.Errorf("Half = %v, want none", p.Half)
	}
	if p.Position != 3 || p.Source != "/scans/page7.png" || p.SourceFormat != "png" {
		t.Errorf("unexpected fields: %+v", p)
	}
	if p.Modified {
		t.Error("new page should not be marked modified")
	}
}

func TestCompare_IndexDominatesHalf(t *testing.T) {
	for _, ha := range []Half{None, Right, Left} {
		for _, hb := range []Half{None, Right, Left} {
			a := &Page{Index: 1, Half: ha, Position: 9}
			b := &Page{Index: 2, Half: hb, Position: 0}
			if Compare(a, b) >= 0 || Compare(b, a) <= 0 {
				t.Errorf("index 1/%v should sort before index 2/%v", ha, hb)
			}
		}
	}
}

func TestCompare_HalfPrecedence(t *testing.T) {
	none := &Page{Index: 5, Half: None}
	right := &Page{Index: 5, Half: Right}
	left := &Page{Index: 5, Half: Left}

	if Compare(none, right) >= 0 || Compare(right, left) >= 0 || Compare(none, left) >= 0 {
		t.Error("precedence should be none < right < left")
	}
	if Compare(right, right) != 0 {
		t.Error("a page should be order-equivalent to itself")
	}
}

func TestCompare_IgnoresPixels(t *testing.T) {
	a := &Page{Index: 1, Image: solid(2, 2, color.Black)}
	b := &Page{Index: 1, Image: solid(9, 9, color.White)}
	if Compare(a, b) != 0 {
		t.Error("pixel content must not affect ordering")
	}
}

func TestSort(t *testing.T) {
	pages := []*Page{
		{Index: 10, Half: None, Position: 0, Source: "page10"},
		{Index: 2, Half: Left, Position: 1, Source: "page2-L"},
		{Index: 2, Half: Right, Position: 1, Source: "page2-R"},
		{Index: 1, Half: None, Position: 2, Source: "page1"},
		{Index: 0, Half: None, Position: 4, Source: "cover-b"},
		{Index: 0, Half: None, Position: 3, Source: "cover-a"},
	}
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(pages), func(i, j int) { pages[i], pages[j] = pages[j], pages[i] })

	Sort(pages)

	got := make([]string, len(pages))
	for i, p := range pages {
		got[i] = p.Source
	}
	want := []string{"cover-a", "cover-b", "page1", "page2-R", "page2-L", "page10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestHalfString(t *testing.T) {
	want := map[Half]string{None: "none", Right: "right", Left: "left", Half(7): "half(7)"}
	for h, s := range want {
		if h.String() != s {
			t.Errorf("Half(%d).String() = %q, want %q", h, h.String(), s)
		}
	}
}
