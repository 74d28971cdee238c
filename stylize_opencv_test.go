//go:build gocv

package pixelart

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/wbrown/pixelart/imageutil"
)

// These tests need OpenCV installed. Run with: go test -tags gocv -run OpenCV

// edgeMask marks pixels of a stylized image that are not white.
func edgeMask(img *imageutil.RGBAImage) *imageutil.GrayImage {
	mask := imageutil.NewGrayImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.GetRGB(x, y).G < 128 {
				mask.SetGrayValue(x, y, 255)
			}
		}
	}
	return mask
}

func TestCompareOpenCVGrayscale(t *testing.T) {
	img := imageutil.CreateColorBarsImage(256, 256)
	mat, err := rgbaToMat(img)
	if err != nil {
		t.Fatal(err)
	}
	defer mat.Close()

	grayMat := gocv.NewMat()
	defer grayMat.Close()
	gocv.CvtColor(mat, &grayMat, gocv.ColorBGRToGray)

	mse := imageutil.CalculateMSEGray(matToGray(grayMat), imageutil.ToGrayscale(img))
	t.Logf("Grayscale conversion MSE: %f", mse)
	if mse > 1.0 {
		t.Errorf("Grayscale MSE too high: %f (threshold: 1.0)", mse)
	}
}

func TestCompareOpenCVCanny(t *testing.T) {
	testCases := []struct {
		name       string
		image      *imageutil.GrayImage
		minJaccard float64
	}{
		{"Edges", imageutil.ToGrayscale(imageutil.CreateEdgeImage(256, 256)), 0.8},
		{"Checkerboard", imageutil.ToGrayscale(imageutil.CreateCheckerboardImage(256, 256, 32)), 0.8},
		{"Pixelated gradient", imageutil.Pixelate(imageutil.CreateGrayGradient(256, 256), 16), 0.8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mat, err := grayToMat(tc.image)
			if err != nil {
				t.Fatal(err)
			}
			defer mat.Close()

			edgesMat := gocv.NewMat()
			defer edgesMat.Close()
			gocv.Canny(mat, &edgesMat, 50, 70)

			ocv := matToGray(edgesMat)
			pure := imageutil.Canny(tc.image, imageutil.CannyOptions{Low: 50, High: 70})

			jaccard := imageutil.CalculateJaccardIndex(ocv, pure)
			t.Logf("%s Canny Jaccard index: %f (edges gocv %d, pure Go %d)",
				tc.name, jaccard, imageutil.CountEdges(ocv), imageutil.CountEdges(pure))
			if jaccard < tc.minJaccard {
				t.Errorf("Canny Jaccard too low: %f (min: %f)", jaccard, tc.minJaccard)
			}
		})
	}
}

func TestCompareOpenCVStylize(t *testing.T) {
	testCases := []struct {
		name       string
		image      *imageutil.RGBAImage
		tile       int
		minJaccard float64
	}{
		{"Checkerboard tile 16", imageutil.CreateCheckerboardImage(1024, 1024, 64), 16, 0.6},
		{"Color bars tile 32", imageutil.CreateColorBarsImage(640, 480), 32, 0.4},
		{"Gradient no tile", imageutil.CreateGradientImage(512, 512), 0, 0.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ocv, err := OpenCVStylize(tc.image, tc.tile)
			if err != nil {
				t.Fatal(err)
			}
			pure, err := Stylize(tc.image, tc.tile)
			if err != nil {
				t.Fatal(err)
			}

			if ocv.Width() != pure.Width() || ocv.Height() != pure.Height() {
				t.Fatalf("Size mismatch: gocv %dx%d, pure Go %dx%d",
					ocv.Width(), ocv.Height(), pure.Width(), pure.Height())
			}

			mse := imageutil.CalculateMSE(ocv, pure)
			jaccard := imageutil.CalculateJaccardIndex(edgeMask(ocv), edgeMask(pure))
			t.Logf("%s: MSE %f, edge Jaccard %f", tc.name, mse, jaccard)

			// Both renderings of an edgeless input are pure white.
			if imageutil.CountEdges(edgeMask(pure)) == 0 && imageutil.CountEdges(edgeMask(ocv)) == 0 {
				return
			}
			if jaccard < tc.minJaccard {
				t.Errorf("Edge Jaccard too low: %f (min: %f)", jaccard, tc.minJaccard)
			}
		})
	}
}

func TestCompareOpenCVUniform(t *testing.T) {
	img := imageutil.CreateSolidImage(300, 200, imageutil.RGB{R: 90, G: 140, B: 30})
	ocv, err := OpenCVStylize(img, 24)
	if err != nil {
		t.Fatal(err)
	}
	white := imageutil.CreateSolidImage(800, 800, imageutil.White)
	if !imageutil.Equal(ocv, white) {
		t.Error("OpenCV rendering of a uniform image should be pure white")
	}
}
