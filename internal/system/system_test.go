package system

import (
	"image"
	"testing"
)

func TestImagePool(t *testing.T) {
	p := NewImagePool()
	rect := image.Rect(0, 0, 4, 3)

	img := p.Get(rect)
	if img.Bounds() != rect {
		t.Fatalf("expected bounds %v, got %v", rect, img.Bounds())
	}
	p.Put(img)

	other := p.Get(image.Rect(0, 0, 8, 8))
	if other.Bounds().Dx() != 8 {
		t.Errorf("expected 8px wide image, got %v", other.Bounds())
	}

	// Foreign sizes are dropped silently.
	p.Put(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	p.Put(nil)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTakeSnapshot(t *testing.T) {
	s := TakeSnapshot()
	if s.CPUs < 1 {
		t.Errorf("expected at least one CPU, got %d", s.CPUs)
	}
	t.Logf("snapshot: %s", s)
}

func TestDefaultQuality(t *testing.T) {
	tests := map[string]int{
		"h264_videotoolbox": 75,
		"h264_nvenc":        28,
		"libx264":           23,
		"":                  23,
	}
	for name, want := range tests {
		if got := DefaultQuality(name); got != want {
			t.Errorf("DefaultQuality(%q) = %d, want %d", name, got, want)
		}
	}
}
