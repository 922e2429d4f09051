package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		w, h         uint32
		wantW, wantH int
	}{
		{"both set", 400, 300, 200, 100, 200, 100},
		{"derive width", 200, 400, 0, 300, 150, 300},
		{"derive height", 200, 400, 100, 0, 100, 200},
		{"derive width truncates", 333, 100, 0, 50, 166, 50},
		{"derive height truncates", 100, 333, 50, 0, 50, 166},
		{"upscale", 100, 50, 0, 100, 200, 100},
		{"never below one pixel", 1, 1000, 0, 10, 1, 10},
		{"square exact width 29", 100, 100, 0, 29, 29, 29},
		{"square exact width 57", 100, 100, 0, 57, 57, 57},
		{"square exact height 58", 100, 100, 58, 0, 58, 58},
		{"large source", 30000, 20000, 0, 4000, 6000, 4000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := TargetSize(tt.srcW, tt.srcH, tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("TargetSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResize_DerivedWidth(t *testing.T) {
	img := createPatternImage(200, 400)

	got, resized := Resize(img, 0, 300)
	if !resized {
		t.Fatal("Resize should report a resize")
	}
	if got.Bounds().Dx() != 150 || got.Bounds().Dy() != 300 {
		t.Errorf("size: got %dx%d, want 150x300", got.Bounds().Dx(), got.Bounds().Dy())
	}
}

func TestResize_DerivedWidthExact(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 0, 255, 255})

	for _, h := range []uint32{29, 57, 58} {
		got, resized := Resize(img, 0, h)
		if !resized {
			t.Fatal("Resize should report a resize")
		}
		if want := image.Rect(0, 0, int(h), int(h)); got.Bounds() != want {
			t.Errorf("Resize(0x%d) bounds: got %v, want %v", h, got.Bounds(), want)
		}
	}
}

func TestResize_BothSet(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	got, resized := Resize(img, 40, 60)
	if !resized {
		t.Fatal("Resize should report a resize")
	}
	if got.Bounds() != image.Rect(0, 0, 40, 60) {
		t.Errorf("bounds: got %v, want (0,0)-(40,60)", got.Bounds())
	}
}

func TestResize_Passthrough(t *testing.T) {
	img := createPatternImage(64, 48)

	got, resized := Resize(img, 0, 0)
	if resized {
		t.Error("Resize(0,0) should not resize")
	}
	if got != image.Image(img) {
		t.Error("Resize(0,0) should return the input image itself")
	}
}
