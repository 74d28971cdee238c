package pixelart

import (
	"fmt"
	"image"
	"strconv"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/pixelart/imageutil"
)

var (
	captionFontOnce sync.Once
	captionFont     *truetype.Font
	captionFontErr  error
)

func loadCaptionFont() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = freetype.ParseFont(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// AmountLabel formats a target amount for Caption, e.g. "Target: 5,000 JPY".
func AmountLabel(amount int) string {
	sign := ""
	mag := uint64(amount)
	if amount < 0 {
		sign = "-"
		mag = -mag
	}
	digits := strconv.FormatUint(mag, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, digits[i])
	}
	return fmt.Sprintf("Target: %s%s JPY", sign, grouped)
}

// Caption returns a copy of img with a white strip appended below it and
// text centered in the strip in black. The font size scales with the
// image width. An empty text returns an unmodified copy.
func Caption(img *imageutil.RGBAImage, text string) (*imageutil.RGBAImage, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidParameter)
	}
	if text == "" {
		return img.Clone(), nil
	}

	ttf, err := loadCaptionFont()
	if err != nil {
		return nil, fmt.Errorf("%w: parse caption font: %v", ErrCompute, err)
	}

	width, height := img.Width(), img.Height()
	size := max(float64(width)/24, 12)
	strip := int(size * 2)

	out := imageutil.NewRGBAImage(width, height+strip)
	out.Fill(imageutil.White)
	for y := 0; y < height; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+width*4], img.Pix[y*img.Stride:y*img.Stride+width*4])
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	textWidth := font.MeasureString(face, text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(size)
	ctx.SetClip(out.Bounds())
	ctx.SetDst(out.RGBA)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	x := max((width-textWidth)/2, 0)
	baseline := height + (strip+ascent-descent)/2
	if _, err := ctx.DrawString(text, freetype.Pt(x, baseline)); err != nil {
		return nil, fmt.Errorf("%w: draw caption: %v", ErrCompute, err)
	}

	return out, nil
}
