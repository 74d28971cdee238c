//go:build gocv

package pixelart

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/wbrown/pixelart/imageutil"
)

// OpenCVStylize runs the default pipeline through OpenCV. It is the
// reference the pure-Go Stylizer is measured against and requires
// building with -tags gocv.
func OpenCVStylize(img *imageutil.RGBAImage, tileSize int) (*imageutil.RGBAImage, error) {
	return NewStylizer().StylizeOpenCV(img, tileSize)
}

// StylizeOpenCV is Stylize implemented with OpenCV primitives: Resize,
// CvtColor, Canny, BitwiseNot, Threshold, Add and Dilate.
func (s *Stylizer) StylizeOpenCV(img *imageutil.RGBAImage, tileSize int) (*imageutil.RGBAImage, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if tileSize < 0 {
		return nil, fmt.Errorf("%w: tile size %d must not be negative", ErrInvalidParameter, tileSize)
	}
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidParameter)
	}
	tileSize = min(tileSize, s.CanonicalSize)

	src, err := rgbaToMat(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompute, err)
	}
	defer src.Close()

	size := image.Point{X: s.CanonicalSize, Y: s.CanonicalSize}

	normalized := gocv.NewMat()
	defer normalized.Close()
	gocv.Resize(src, &normalized, size, 0, 0, gocv.InterpolationLinear)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(normalized, &gray, gocv.ColorBGRToGray)

	pixelated := gocv.NewMat()
	defer pixelated.Close()
	if tileSize > 0 {
		small := gocv.NewMat()
		defer small.Close()
		gocv.Resize(gray, &small, image.Point{X: tileSize, Y: tileSize}, 0, 0, gocv.InterpolationNearestNeighbor)
		gocv.Resize(small, &pixelated, size, 0, 0, gocv.InterpolationNearestNeighbor)
	} else {
		gray.CopyTo(&pixelated)
	}

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(pixelated, &edges, float32(s.CannyLow), float32(s.CannyHigh))

	c := s.EdgeColor
	fill := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0),
		s.CanonicalSize, s.CanonicalSize, gocv.MatTypeCV8UC3)
	defer fill.Close()
	colored := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		s.CanonicalSize, s.CanonicalSize, gocv.MatTypeCV8UC3)
	defer colored.Close()
	fill.CopyToWithMask(&colored, edges)

	inverted := gocv.NewMat()
	defer inverted.Close()
	gocv.BitwiseNot(edges, &inverted)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(inverted, &mask, float32(s.MaskThreshold), 255, gocv.ThresholdBinary)

	maskBGR := gocv.NewMat()
	defer maskBGR.Close()
	gocv.CvtColor(mask, &maskBGR, gocv.ColorGrayToBGR)

	composite := gocv.NewMat()
	defer composite.Close()
	gocv.Add(colored, maskBGR, &composite)

	// Thickened edges are never composited.
	if s.ThickenSize > 0 {
		kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: s.ThickenSize, Y: s.ThickenSize})
		defer kernel.Close()
		thick := gocv.NewMat()
		defer thick.Close()
		gocv.Dilate(colored, &thick, kernel)
	}

	final := gocv.NewMat()
	defer final.Close()
	gocv.Resize(composite, &final, image.Point{X: s.OutputSize, Y: s.OutputSize}, 0, 0, gocv.InterpolationLinear)

	return matToRGBA(final), nil
}

// rgbaToMat converts an RGBAImage to a BGR gocv.Mat.
func rgbaToMat(img *imageutil.RGBAImage) (gocv.Mat, error) {
	width, height := img.Width(), img.Height()
	bgr := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.GetRGB(x, y)
			bgr = append(bgr, c.B, c.G, c.R)
		}
	}
	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, bgr)
}

// matToRGBA converts a BGR gocv.Mat to an RGBAImage.
func matToRGBA(mat gocv.Mat) *imageutil.RGBAImage {
	height, width := mat.Rows(), mat.Cols()
	img := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			vec := mat.GetVecbAt(y, x)
			img.SetRGB(x, y, imageutil.RGB{R: vec[2], G: vec[1], B: vec[0]})
		}
	}
	return img
}

// grayToMat converts a GrayImage to a single channel gocv.Mat.
func grayToMat(img *imageutil.GrayImage) (gocv.Mat, error) {
	width, height := img.Width(), img.Height()
	data := make([]byte, 0, width*height)
	for y := 0; y < height; y++ {
		data = append(data, img.Pix[y*img.Stride:y*img.Stride+width]...)
	}
	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8U, data)
}

// matToGray converts a single channel gocv.Mat to a GrayImage.
func matToGray(mat gocv.Mat) *imageutil.GrayImage {
	height, width := mat.Rows(), mat.Cols()
	img := imageutil.NewGrayImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGrayValue(x, y, mat.GetUCharAt(y, x))
		}
	}
	return img
}
