package pixelart

import (
	"errors"
	"math"
	"testing"

	"github.com/wbrown/pixelart/imageutil"
)

func TestCaption(t *testing.T) {
	img := imageutil.CreateSolidImage(800, 800, imageutil.White)
	img.SetRGB(400, 400, imageutil.Red)

	out, err := Caption(img, AmountLabel(5000))
	if err != nil {
		t.Fatalf("Caption: %v", err)
	}
	if out.Width() != 800 {
		t.Errorf("Width = %d, want 800", out.Width())
	}
	if out.Height() <= 800 {
		t.Errorf("Height = %d, want more than 800", out.Height())
	}
	if got := out.GetRGB(400, 400); got != imageutil.Red {
		t.Errorf("Image area should be copied, got %v", got)
	}

	dark := 0
	for y := 800; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if out.GetRGB(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("Expected text pixels in the caption strip")
	}
	if img.Height() != 800 {
		t.Error("Caption should not modify its input")
	}
}

func TestCaptionEmptyText(t *testing.T) {
	img := imageutil.CreateColorBarsImage(64, 32)
	out, err := Caption(img, "")
	if err != nil {
		t.Fatal(err)
	}
	if !imageutil.Equal(out, img) {
		t.Error("Empty caption should return an unchanged copy")
	}
	if out == img {
		t.Error("Empty caption should not alias its input")
	}
}

func TestCaptionInvalid(t *testing.T) {
	if _, err := Caption(nil, "x"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Caption(nil) error = %v, want ErrInvalidParameter", err)
	}
}

func TestAmountLabel(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "Target: 0 JPY"},
		{999, "Target: 999 JPY"},
		{1000, "Target: 1,000 JPY"},
		{50000, "Target: 50,000 JPY"},
		{1234567, "Target: 1,234,567 JPY"},
		{-3000, "Target: -3,000 JPY"},
		{math.MinInt64, "Target: -9,223,372,036,854,775,808 JPY"},
		{math.MaxInt64, "Target: 9,223,372,036,854,775,807 JPY"},
	}
	for _, tt := range tests {
		if got := AmountLabel(tt.amount); got != tt.want {
			t.Errorf("AmountLabel(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
