package imageutil

import "testing"

// stepImage returns a width×height gray image that is lo left of column
// split and hi from split onwards.
func stepImage(width, height, split int, lo, hi uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := lo
			if x >= split {
				v = hi
			}
			img.SetGrayValue(x, y, v)
		}
	}
	return img
}

var stylizerCanny = CannyOptions{Low: 50, High: 70}

func TestCannyUniformHasNoEdges(t *testing.T) {
	gray := ToGrayscale(CreateSolidImage(64, 64, RGB{90, 160, 30}))
	edges := Canny(gray, stylizerCanny)
	if n := CountEdges(edges); n != 0 {
		t.Errorf("Uniform image should have no edges, got %d", n)
	}
}

func TestCannyOutputIsBinary(t *testing.T) {
	gray := ToGrayscale(CreateEdgeImage(100, 100))
	edges := Canny(gray, stylizerCanny)

	if edges.Width() != 100 || edges.Height() != 100 {
		t.Fatalf("Edge image should have same dimensions, got %dx%d", edges.Width(), edges.Height())
	}
	for _, v := range edges.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("Edge map should only hold 0 and 255, found %d", v)
		}
	}
	if CountEdges(edges) == 0 {
		t.Error("Canny should detect some edges in edge test image")
	}
}

func TestCannyStepEdgeIsOnePixelWide(t *testing.T) {
	edges := Canny(stepImage(20, 20, 10, 0, 255), stylizerCanny)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			want := uint8(0)
			if x == 9 {
				want = 255
			}
			if got := edges.GetGray(x, y); got != want {
				t.Fatalf("(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestCannyThresholds(t *testing.T) {
	tests := []struct {
		name     string
		contrast uint8
		want     bool
	}{
		// |gx| of a step is 4*contrast.
		{"below low", 10, false},
		{"weak only", 15, false},
		{"strong", 20, true},
	}
	for _, tt := range tests {
		edges := Canny(stepImage(20, 20, 10, 100, 100+tt.contrast), stylizerCanny)
		if got := CountEdges(edges) > 0; got != tt.want {
			t.Errorf("%s: edges found = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHysteresisFollowsWeakChains(t *testing.T) {
	const width, height = 8, 3
	state := make([]uint8, width*height)
	// Row 1: strong at x=0 followed by a weak chain to x=3, then a gap
	// and an isolated weak pixel at x=6.
	state[1*width+0] = pixelStrong
	for x := 1; x <= 3; x++ {
		state[1*width+x] = pixelWeak
	}
	state[1*width+6] = pixelWeak

	edges := NewGrayImage(width, height)
	hysteresis(state, edges)

	for x := 0; x < width; x++ {
		want := uint8(0)
		if x <= 3 {
			want = 255
		}
		if got := edges.GetGray(x, 1); got != want {
			t.Errorf("x=%d: got %d, want %d", x, got, want)
		}
	}
	if n := CountEdges(edges); n != 4 {
		t.Errorf("Expected 4 edge pixels, got %d", n)
	}
}

func TestCannyDeterministic(t *testing.T) {
	gray := ToGrayscale(CreateEdgeImage(80, 80))
	a := Canny(gray, stylizerCanny)
	b := Canny(gray, stylizerCanny)
	if CalculateMSEGray(a, b) != 0 {
		t.Error("Canny should be deterministic")
	}
}
