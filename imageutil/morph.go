package imageutil

// Dilate applies morphological dilation with a width×height rectangular
// structuring element, taking the per-channel maximum over the window.
// The anchor sits at (width/2, height/2) like OpenCV's default, and
// out-of-bounds pixels are ignored. A rectangle is separable, so the
// maximum is taken along rows first and then along columns.
func Dilate(img *RGBAImage, width, height int) *RGBAImage {
	w, h := img.Width(), img.Height()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rows := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := rows.Pix[y*rows.Stride : y*rows.Stride+w*4]
		for x := 0; x < w; x++ {
			lo, hi := window(x, width, w)
			for c := 0; c < 4; c++ {
				var m uint8
				for sx := lo; sx < hi; sx++ {
					if v := src[sx*4+c]; v > m {
						m = v
					}
				}
				dst[x*4+c] = m
			}
		}
	}

	dst := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		lo, hi := window(y, height, h)
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for i := range out {
			var m uint8
			for sy := lo; sy < hi; sy++ {
				if v := rows.Pix[sy*rows.Stride+i]; v > m {
					m = v
				}
			}
			out[i] = m
		}
	}
	return dst
}

// window returns the half-open source range covered by a kernel of the
// given size anchored at its center, clipped to [0, limit).
func window(pos, size, limit int) (lo, hi int) {
	anchor := size / 2
	lo = clampInt(pos-anchor, 0, limit)
	hi = clampInt(pos-anchor+size, 0, limit)
	return lo, hi
}
