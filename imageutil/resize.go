package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR, the cv::resize default.
	InterpolationLinear Interpolation = iota

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Equivalent to OpenCV's INTER_NEAREST. Preserves hard block edges.
	InterpolationNearest
)

// scaler maps an Interpolation onto an x/image/draw scaler.
func (i Interpolation) scaler() draw.Scaler {
	switch i {
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.BiLinear
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. A zero-area source or destination yields
// an empty image of the requested size.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	if img.Empty() || width <= 0 || height <= 0 {
		return dst
	}
	interp.scaler().Scale(dst.RGBA, image.Rect(0, 0, width, height), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray resizes a grayscale image to the specified dimensions.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	dst := NewGrayImage(width, height)
	if img.Bounds().Empty() || width <= 0 || height <= 0 {
		return dst
	}
	interp.scaler().Scale(dst.Gray, image.Rect(0, 0, width, height), img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// Pixelate downsamples a grayscale image to tiles×tiles with nearest
// neighbor sampling and scales it back to its original size, again with
// nearest neighbor. The result is made of constant-intensity square
// blocks, and every value in it was sampled from the source, so it holds
// at most tiles² distinct values.
func Pixelate(img *GrayImage, tiles int) *GrayImage {
	small := ResizeGray(img, tiles, tiles, InterpolationNearest)
	return ResizeGray(small, img.Width(), img.Height(), InterpolationNearest)
}
