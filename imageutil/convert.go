package imageutil

// ToGrayscale converts an RGBA image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This matches the BT.601 weights used by OpenCV's COLOR_BGR2GRAY.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range dst {
			r, g, b := int(src[x*4]), int(src[x*4+1]), int(src[x*4+2])
			// Integer math scaled by 1000, rounded.
			lum := (299*r + 587*g + 114*b + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			dst[x] = uint8(lum)
		}
	}

	return gray
}

// GrayscaleToRGBA expands a single-channel image to opaque RGBA with
// R = G = B = the gray value (OpenCV's COLOR_GRAY2BGR).
func GrayscaleToRGBA(gray *GrayImage) *RGBAImage {
	width, height := gray.Width(), gray.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		dst := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		for x, v := range src {
			dst[x*4] = v
			dst[x*4+1] = v
			dst[x*4+2] = v
			dst[x*4+3] = 255
		}
	}

	return rgba
}

// Recolor builds an opaque RGBA image from a binary mask: pixels whose
// mask value equals 255 take fg, all others take bg.
func Recolor(mask *GrayImage, fg, bg RGB) *RGBAImage {
	width, height := mask.Width(), mask.Height()
	rgba := NewRGBAImage(width, height)

	for y := 0; y < height; y++ {
		src := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		dst := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		for x, v := range src {
			c := bg
			if v == 255 {
				c = fg
			}
			dst[x*4] = c.R
			dst[x*4+1] = c.G
			dst[x*4+2] = c.B
			dst[x*4+3] = 255
		}
	}

	return rgba
}
