package imageutil

import "fmt"

// Invert returns the bitwise complement of a grayscale image
// (OpenCV's bitwise_not): every value v becomes 255 - v.
func Invert(img *GrayImage) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x, v := range src {
			out[x] = ^v
		}
	}
	return dst
}

// Threshold binarizes a grayscale image the way OpenCV's THRESH_BINARY
// does: values strictly greater than thresh become maxVal, everything
// else becomes 0.
func Threshold(img *GrayImage, thresh, maxVal uint8) *GrayImage {
	width, height := img.Width(), img.Height()
	dst := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x, v := range src {
			if v > thresh {
				out[x] = maxVal
			}
		}
	}
	return dst
}

// AddSaturate adds two RGBA images channel by channel, clamping at 255
// (OpenCV's Core.add on 8-bit matrices). Alpha is forced opaque. The
// images must have identical dimensions.
func AddSaturate(a, b *RGBAImage) (*RGBAImage, error) {
	if !SameSize(a, b) {
		return nil, fmt.Errorf("add: size mismatch %dx%d vs %dx%d",
			a.Width(), a.Height(), b.Width(), b.Height())
	}
	width, height := a.Width(), a.Height()
	dst := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		pa := a.Pix[y*a.Stride : y*a.Stride+width*4]
		pb := b.Pix[y*b.Stride : y*b.Stride+width*4]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for i := 0; i < len(out); i += 4 {
			out[i] = addSat(pa[i], pb[i])
			out[i+1] = addSat(pa[i+1], pb[i+1])
			out[i+2] = addSat(pa[i+2], pb[i+2])
			out[i+3] = 255
		}
	}
	return dst, nil
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// CountValue returns how many pixels of img equal v.
func CountValue(img *GrayImage, v uint8) int {
	width, height := img.Width(), img.Height()
	n := 0
	for y := 0; y < height; y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+width] {
			if p == v {
				n++
			}
		}
	}
	return n
}

// DistinctValues returns the number of distinct gray levels in img.
func DistinctValues(img *GrayImage) int {
	var seen [256]bool
	width, height := img.Width(), img.Height()
	n := 0
	for y := 0; y < height; y++ {
		for _, p := range img.Pix[y*img.Stride : y*img.Stride+width] {
			if !seen[p] {
				seen[p] = true
				n++
			}
		}
	}
	return n
}
