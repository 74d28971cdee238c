// Package pixelart converts photos into the two stylized renderings used
// by the coloring screens: a dot-grid mosaic (DotGrid) and a pixel-art
// image whose block boundaries are traced in red over a white background
// (Stylizer).
//
// Both transforms are pure: they read the source image, allocate fresh
// output, and keep no state between calls.
package pixelart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wbrown/pixelart/imageutil"
)

// Stylizer runs the pixel-art and edge-overlay pipeline:
//
//  1. resize the source to CanonicalSize×CanonicalSize (bilinear)
//  2. convert to grayscale (BT.601)
//  3. pixelate: nearest-neighbor down to tile×tile and back up
//  4. Canny edge detection with CannyLow/CannyHigh
//  5. paint edge pixels EdgeColor on black
//  6. invert the edge map and threshold it at MaskThreshold
//  7. add the mask to the painted edges, saturating at 255
//  8. optionally dilate the painted edges by ThickenSize (not composited)
//  9. resize the composite to OutputSize×OutputSize (bilinear)
//
// A Stylizer holds only configuration, so one value can serve concurrent
// calls.
type Stylizer struct {
	CanonicalSize int
	OutputSize    int
	CannyLow      float64
	CannyHigh     float64
	MaskThreshold uint8
	EdgeColor     imageutil.RGB

	// ThickenSize is the side of the square structuring element used to
	// dilate the painted edges into Stages.Thickened. Zero skips it. The
	// dilated image never feeds the composite.
	ThickenSize int

	Logger *log.Logger
}

// StylizerOption is a functional option for configuring a Stylizer.
type StylizerOption func(*Stylizer)

// NewStylizer creates a Stylizer with the given options.
// Default values: CanonicalSize=1024, OutputSize=800, CannyLow=50,
// CannyHigh=70, MaskThreshold=200, EdgeColor=red, ThickenSize=0.
func NewStylizer(opts ...StylizerOption) *Stylizer {
	s := &Stylizer{
		CanonicalSize: 1024,
		OutputSize:    800,
		CannyLow:      50,
		CannyHigh:     70,
		MaskThreshold: 200,
		EdgeColor:     imageutil.Red,
		Logger:        log.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCanonicalSize sets the working resolution of the pipeline.
func WithCanonicalSize(size int) StylizerOption {
	return func(s *Stylizer) {
		s.CanonicalSize = size
	}
}

// WithOutputSize sets the side of the square output image.
func WithOutputSize(size int) StylizerOption {
	return func(s *Stylizer) {
		s.OutputSize = size
	}
}

// WithCannyThresholds sets the hysteresis thresholds for edge detection.
func WithCannyThresholds(low, high float64) StylizerOption {
	return func(s *Stylizer) {
		s.CannyLow = low
		s.CannyHigh = high
	}
}

// WithMaskThreshold sets the binarization threshold of the background mask.
func WithMaskThreshold(t uint8) StylizerOption {
	return func(s *Stylizer) {
		s.MaskThreshold = t
	}
}

// WithEdgeColor sets the color edges are painted with.
func WithEdgeColor(c imageutil.RGB) StylizerOption {
	return func(s *Stylizer) {
		s.EdgeColor = c
	}
}

// WithThickening enables the edge dilation stage with a size×size kernel.
func WithThickening(size int) StylizerOption {
	return func(s *Stylizer) {
		s.ThickenSize = size
	}
}

// WithLogger sets the logger used for debug timings.
func WithLogger(l *log.Logger) StylizerOption {
	return func(s *Stylizer) {
		if l != nil {
			s.Logger = l
		}
	}
}

// Validate reports configuration that would make the pipeline meaningless.
func (s *Stylizer) Validate() error {
	switch {
	case s.CanonicalSize < 1:
		return fmt.Errorf("%w: canonical size %d", ErrInvalidParameter, s.CanonicalSize)
	case s.OutputSize < 1:
		return fmt.Errorf("%w: output size %d", ErrInvalidParameter, s.OutputSize)
	case s.CannyLow < 0 || s.CannyHigh < s.CannyLow:
		return fmt.Errorf("%w: canny thresholds %v/%v", ErrInvalidParameter, s.CannyLow, s.CannyHigh)
	case s.ThickenSize < 0:
		return fmt.Errorf("%w: thicken size %d", ErrInvalidParameter, s.ThickenSize)
	}
	return nil
}

// Stages holds every intermediate image of one Stylize call.
type Stages struct {
	TileSize   int
	Normalized *imageutil.RGBAImage // step 1
	Gray       *imageutil.GrayImage // step 2
	Pixelated  *imageutil.GrayImage // step 3, same as Gray when TileSize is 0
	Edges      *imageutil.GrayImage // step 4, values are 0 or 255
	RedEdges   *imageutil.RGBAImage // step 5
	Mask       *imageutil.GrayImage // step 6
	Composite  *imageutil.RGBAImage // step 7
	Thickened  *imageutil.RGBAImage // step 8, nil unless ThickenSize > 0
	Final      *imageutil.RGBAImage // step 9
}

// Stylize runs the pipeline with the default configuration.
func Stylize(img image.Image, tileSize int) (*imageutil.RGBAImage, error) {
	return NewStylizer().Stylize(img, tileSize)
}

// Stylize converts img into an OutputSize×OutputSize pixel-art image
// with traced block edges. tileSize is the number of pixel-art blocks
// along each side; 0 skips pixelation and traces the edges of the
// grayscale image directly.
func (s *Stylizer) Stylize(img image.Image, tileSize int) (*imageutil.RGBAImage, error) {
	stages, err := s.StylizeStages(img, tileSize)
	if err != nil {
		return nil, err
	}
	return stages.Final, nil
}

// StylizeStages is Stylize, returning every intermediate image.
func (s *Stylizer) StylizeStages(img image.Image, tileSize int) (*Stages, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if tileSize < 0 {
		return nil, fmt.Errorf("%w: tile size %d must not be negative", ErrInvalidParameter, tileSize)
	}
	src, err := sourceImage(img)
	if err != nil {
		return nil, err
	}
	// More tiles than canonical pixels is already full resolution.
	tileSize = min(tileSize, s.CanonicalSize)

	start := time.Now()
	size := s.CanonicalSize
	st := &Stages{TileSize: tileSize}

	st.Normalized = imageutil.Resize(src, size, size, imageutil.InterpolationLinear)
	st.Gray = imageutil.ToGrayscale(st.Normalized)

	if tileSize > 0 {
		st.Pixelated = imageutil.Pixelate(st.Gray, tileSize)
	} else {
		st.Pixelated = st.Gray
	}

	st.Edges = imageutil.Canny(st.Pixelated, imageutil.CannyOptions{
		Low:  s.CannyLow,
		High: s.CannyHigh,
	})
	st.RedEdges = imageutil.Recolor(st.Edges, s.EdgeColor, imageutil.Black)

	st.Mask = imageutil.Threshold(imageutil.Invert(st.Edges), s.MaskThreshold, 255)
	if st.Mask.Width() != size || st.Mask.Height() != size {
		st.Mask = imageutil.ResizeGray(st.Mask, size, size, imageutil.InterpolationNearest)
	}

	st.Composite, err = imageutil.AddSaturate(st.RedEdges, imageutil.GrayscaleToRGBA(st.Mask))
	if err != nil {
		return nil, fmt.Errorf("%w: composite: %v", ErrCompute, err)
	}

	if s.ThickenSize > 0 {
		st.Thickened = imageutil.Dilate(st.RedEdges, s.ThickenSize, s.ThickenSize)
	}

	st.Final = imageutil.Resize(st.Composite, s.OutputSize, s.OutputSize, imageutil.InterpolationLinear)

	s.Logger.Debug("stylized image",
		"source", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"tile", tileSize,
		"edges", imageutil.CountEdges(st.Edges),
		"duration", time.Since(start).Round(time.Millisecond))

	return st, nil
}

// sourceImage validates img and returns it as an RGBAImage without
// copying when it already is one. The pipeline never writes to it.
func sourceImage(img image.Image) (*imageutil.RGBAImage, error) {
	switch v := img.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil image", ErrInvalidParameter)
	case *imageutil.RGBAImage:
		if v.Empty() {
			return nil, fmt.Errorf("%w: empty image", ErrInvalidParameter)
		}
		return v, nil
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidParameter)
	}
	return imageutil.RGBAImageFromImage(img), nil
}

// WriteDir saves each stage as a numbered PNG in dir, creating it if
// needed. Stages that were not computed are skipped.
func (st *Stages) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	files := []struct {
		name string
		img  image.Image
	}{
		{"1-normalized.png", rgbaOrNil(st.Normalized)},
		{"2-gray.png", grayOrNil(st.Gray)},
		{"3-pixelated.png", grayOrNil(st.Pixelated)},
		{"4-edges.png", grayOrNil(st.Edges)},
		{"5-red-edges.png", rgbaOrNil(st.RedEdges)},
		{"6-mask.png", grayOrNil(st.Mask)},
		{"7-composite.png", rgbaOrNil(st.Composite)},
		{"8-thickened.png", rgbaOrNil(st.Thickened)},
		{"9-final.png", rgbaOrNil(st.Final)},
	}
	for _, f := range files {
		if f.img == nil {
			continue
		}
		if err := imageutil.SavePNG(f.img, filepath.Join(dir, f.name)); err != nil {
			return err
		}
	}
	return nil
}

func rgbaOrNil(img *imageutil.RGBAImage) image.Image {
	if img == nil {
		return nil
	}
	return img.RGBA
}

func grayOrNil(img *imageutil.GrayImage) image.Image {
	if img == nil {
		return nil
	}
	return img.Gray
}
