package pixelart

import (
	"fmt"
	"image"

	"github.com/wbrown/pixelart/imageutil"
)

// DefaultDotSize is the cell size used when no dot size is configured.
const DefaultDotSize = 10

// DotGrid renders a mosaic with the same dimensions as img: the image is
// cut into dotSize×dotSize cells starting at (0, 0), and each cell is
// drawn as a one pixel black ring around a white interior. The source
// colors are discarded.
//
// Cells clipped by the right or bottom edge draw only their in-bounds
// pixels, so a clipped cell whose far border lies outside the image has
// no black ring on that side.
func DotGrid(img image.Image, dotSize int) (*imageutil.RGBAImage, error) {
	if dotSize < 1 {
		return nil, fmt.Errorf("%w: dot size %d must be at least 1", ErrInvalidParameter, dotSize)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidParameter)
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	dot := imageutil.NewRGBAImage(width, height)

	for y := 0; y < height; y += dotSize {
		for x := 0; x < width; x += dotSize {
			for dy := 0; dy < dotSize && y+dy < height; dy++ {
				for dx := 0; dx < dotSize && x+dx < width; dx++ {
					if dy == 0 || dy == dotSize-1 || dx == 0 || dx == dotSize-1 {
						dot.SetRGB(x+dx, y+dy, imageutil.Black)
					} else {
						dot.SetRGB(x+dx, y+dy, imageutil.White)
					}
				}
			}
		}
	}

	return dot, nil
}
