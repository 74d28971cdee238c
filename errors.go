package pixelart

import (
	"errors"

	"github.com/wbrown/pixelart/imageutil"
)

// Sentinel errors returned by the stylizers. Callers should test for
// them with errors.Is; the returned errors wrap them with context.
var (
	// ErrInvalidParameter is returned for a nil or empty source image, a
	// non-positive dot size, or a negative tile size.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDecode is returned when an input byte stream is not an image.
	ErrDecode = imageutil.ErrDecode

	// ErrCompute is returned when a pipeline stage produces something
	// the next stage cannot consume, such as mismatched dimensions.
	ErrCompute = errors.New("compute failure")
)
