package imageutil

// Kernel represents a convolution kernel.
type Kernel struct {
	Values [][]float64
	Width  int
	Height int
}

// NewKernel creates a new kernel from a 2D slice.
func NewKernel(values [][]float64) *Kernel {
	height := len(values)
	width := 0
	if height > 0 {
		width = len(values[0])
	}
	return &Kernel{
		Values: values,
		Width:  width,
		Height: height,
	}
}

// SobelXKernel returns the 3x3 horizontal Sobel derivative kernel.
func SobelXKernel() *Kernel {
	return NewKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})
}

// SobelYKernel returns the 3x3 vertical Sobel derivative kernel.
func SobelYKernel() *Kernel {
	return NewKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})
}

// ConvolveGrayFloat applies a convolution kernel to a grayscale image
// and returns the unclamped sums as a row-major slice of width*height
// values. Border pixels are handled by replicating edge values.
func ConvolveGrayFloat(img *GrayImage, kernel *Kernel) []float64 {
	width, height := img.Width(), img.Height()
	dst := make([]float64, width*height)

	halfKW := kernel.Width / 2
	halfKH := kernel.Height / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64

			for ky := 0; ky < kernel.Height; ky++ {
				sy := clampInt(y+ky-halfKH, 0, height-1)
				row := img.Pix[sy*img.Stride:]
				for kx := 0; kx < kernel.Width; kx++ {
					k := kernel.Values[ky][kx]
					if k == 0 {
						continue
					}
					sx := clampInt(x+kx-halfKW, 0, width-1)
					sum += float64(row[sx]) * k
				}
			}

			dst[y*width+x] = sum
		}
	}

	return dst
}

// clampInt clamps an integer to the given range.
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
