package imageutil

import "testing"

func TestInvert(t *testing.T) {
	img := NewGrayImage(3, 1)
	img.SetGrayValue(0, 0, 0)
	img.SetGrayValue(1, 0, 255)
	img.SetGrayValue(2, 0, 100)

	out := Invert(img)
	want := []uint8{255, 0, 155}
	for x, w := range want {
		if got := out.GetGray(x, 0); got != w {
			t.Errorf("x=%d: got %d, want %d", x, got, w)
		}
	}
	if img.GetGray(0, 0) != 0 {
		t.Error("Invert should not modify its input")
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		in   uint8
		want uint8
	}{
		{0, 0},
		{199, 0},
		{200, 0}, // strictly greater than
		{201, 255},
		{255, 255},
	}

	img := NewGrayImage(len(tests), 1)
	for x, tt := range tests {
		img.SetGrayValue(x, 0, tt.in)
	}
	out := Threshold(img, 200, 255)
	for x, tt := range tests {
		if got := out.GetGray(x, 0); got != tt.want {
			t.Errorf("Threshold(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAddSaturate(t *testing.T) {
	a := CreateSolidImage(4, 4, RGB{200, 0, 10})
	b := CreateSolidImage(4, 4, RGB{100, 255, 20})

	sum, err := AddSaturate(a, b)
	if err != nil {
		t.Fatalf("AddSaturate: %v", err)
	}
	if got := sum.GetRGB(2, 2); got != (RGB{255, 255, 30}) {
		t.Errorf("Expected (255,255,30), got %v", got)
	}
	if got := sum.RGBAAt(2, 2).A; got != 255 {
		t.Errorf("Expected opaque result, got alpha %d", got)
	}
}

func TestAddSaturateSizeMismatch(t *testing.T) {
	if _, err := AddSaturate(NewRGBAImage(4, 4), NewRGBAImage(4, 5)); err == nil {
		t.Error("Expected error for mismatched sizes")
	}
}

func TestRedEdgesOverWhiteBackground(t *testing.T) {
	// The stylizer's composite: red edges plus an inverted, thresholded mask.
	edges := NewGrayImage(4, 1)
	edges.SetGrayValue(1, 0, 255)

	red := Recolor(edges, Red, Black)
	mask := GrayscaleToRGBA(Threshold(Invert(edges), 200, 255))
	out, err := AddSaturate(red, mask)
	if err != nil {
		t.Fatal(err)
	}

	want := []RGB{White, Red, White, White}
	for x, w := range want {
		if got := out.GetRGB(x, 0); got != w {
			t.Errorf("x=%d: got %v, want %v", x, got, w)
		}
	}
}

func TestDistinctValues(t *testing.T) {
	img := NewGrayImage(4, 4)
	if n := DistinctValues(img); n != 1 {
		t.Errorf("Blank image should have 1 value, got %d", n)
	}
	img.SetGrayValue(0, 0, 7)
	img.SetGrayValue(1, 0, 7)
	img.SetGrayValue(2, 0, 9)
	if n := DistinctValues(img); n != 3 {
		t.Errorf("Expected 3 values, got %d", n)
	}
	if n := CountValue(img, 7); n != 2 {
		t.Errorf("Expected 2 pixels of 7, got %d", n)
	}
}
