package imageutil

import "math"

// CannyOptions controls Canny edge detection.
type CannyOptions struct {
	// Low and High are the hysteresis thresholds on gradient magnitude.
	// Pixels above High seed edges; pixels above Low extend them.
	Low, High float64
}

// tan(22.5°), used to bucket gradient directions without atan2.
var tan22 = math.Tan(math.Pi / 8)

// Canny performs Canny edge detection on a grayscale image and returns a
// binary edge map: edge pixels are 255, everything else is 0.
//
// The stages follow OpenCV's implementation: 3x3 Sobel gradients with
// replicated borders, non-maximum suppression along four quantized
// directions (strict on one side, so a step edge yields a one pixel
// wide line), double threshold, and 8-connected hysteresis.
func Canny(gray *GrayImage, opts CannyOptions) *GrayImage {
	width, height := gray.Width(), gray.Height()
	edges := NewGrayImage(width, height)
	if width == 0 || height == 0 {
		return edges
	}

	gx := ConvolveGrayFloat(gray, SobelXKernel())
	gy := ConvolveGrayFloat(gray, SobelYKernel())

	magnitude := make([]float64, width*height)
	for i := range magnitude {
		magnitude[i] = math.Abs(gx[i]) + math.Abs(gy[i])
	}

	state := nonMaxSuppression(magnitude, gx, gy, width, height, opts.Low, opts.High)
	hysteresis(state, edges)

	return edges
}

// Pixel classes produced by non-maximum suppression.
const (
	pixelNone uint8 = iota
	pixelWeak
	pixelStrong
)

// nonMaxSuppression keeps pixels that are local maxima along their
// gradient direction and classifies them against the two thresholds.
func nonMaxSuppression(mag, gx, gy []float64, width, height int, low, high float64) []uint8 {
	state := make([]uint8, width*height)

	at := func(x, y int) float64 {
		if x < 0 || y < 0 || x >= width || y >= height {
			return 0
		}
		return mag[y*width+x]
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			m := mag[i]
			if m <= low {
				continue
			}

			ax, ay := math.Abs(gx[i]), math.Abs(gy[i])
			tg22x := ax * tan22
			var keep bool
			switch {
			case ay < tg22x:
				// Gradient is horizontal; compare left and right.
				keep = m > at(x-1, y) && m >= at(x+1, y)
			case ay > tg22x+2*ax:
				// tan(67.5°) = tan(22.5°) + 2; gradient is vertical.
				keep = m > at(x, y-1) && m >= at(x, y+1)
			default:
				s := 1
				if (gx[i] < 0) != (gy[i] < 0) {
					s = -1
				}
				keep = m > at(x-s, y-1) && m > at(x+s, y+1)
			}
			if !keep {
				continue
			}

			if m > high {
				state[i] = pixelStrong
			} else {
				state[i] = pixelWeak
			}
		}
	}

	return state
}

// hysteresis marks every strong pixel as an edge and grows edges into
// weak pixels that are 8-connected to them.
func hysteresis(state []uint8, edges *GrayImage) {
	width, height := edges.Width(), edges.Height()
	stack := make([]int, 0, 1024)

	mark := func(i int) {
		state[i] = pixelNone
		edges.Pix[(i/width)*edges.Stride+i%width] = 255
		stack = append(stack, i)
	}

	for i, s := range state {
		if s == pixelStrong {
			mark(i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width
		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= height {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				if nx < 0 || nx >= width {
					continue
				}
				if n := ny*width + nx; state[n] == pixelWeak {
					mark(n)
				}
			}
		}
	}
}

// CountEdges returns the number of edge pixels (value 255) in an edge map.
func CountEdges(edges *GrayImage) int {
	return CountValue(edges, 255)
}
