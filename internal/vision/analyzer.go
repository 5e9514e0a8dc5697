package vision

import (
	"image"

	"golang.org/x/image/draw"
)

// SampleSize is the edge length of the square the image is reduced to
// before channel statistics are taken.
const SampleSize = 128

// Color names a channel that dominates an image.
type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

// Stats holds the channel means of a downsampled image.
type Stats struct {
	MeanRed    float64
	MeanGreen  float64
	MeanBlue   float64
	Brightness float64
	Dominant   Color
}

// Analyze downsamples img, measures it and runs the decision table.
// It is a pure function of the pixel data.
func Analyze(img image.Image) Result {
	return Classify(Measure(img))
}

// Measure reduces img to SampleSize x SampleSize and returns its channel means.
func Measure(img image.Image) Stats {
	dst := image.NewRGBA(image.Rect(0, 0, SampleSize, SampleSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sumR, sumG, sumB uint64
	for i := 0; i < len(dst.Pix); i += 4 {
		sumR += uint64(dst.Pix[i])
		sumG += uint64(dst.Pix[i+1])
		sumB += uint64(dst.Pix[i+2])
	}

	n := float64(SampleSize * SampleSize)
	return NewStats(float64(sumR)/n, float64(sumG)/n, float64(sumB)/n)
}

// NewStats derives brightness and the dominant channel from channel means.
// Ties go to the channel listed first: red, then green, then blue.
func NewStats(r, g, b float64) Stats {
	dominant, best := Red, r
	if g > best {
		dominant, best = Green, g
	}
	if b > best {
		dominant = Blue
	}
	return Stats{
		MeanRed:    r,
		MeanGreen:  g,
		MeanBlue:   b,
		Brightness: (r + g + b) / 3,
		Dominant:   dominant,
	}
}

// Classify walks the decision table in order; the last rule always matches.
func Classify(s Stats) Result {
	switch {
	case s.Dominant == Green && s.Brightness > 90:
		return cannedResult(CategoryFreshSalad)
	case s.Dominant == Red && s.Brightness > 60:
		return cannedResult(CategoryTomatoDish)
	case s.Brightness < 70:
		return cannedResult(CategoryHeartyStew)
	default:
		return cannedResult(CategorySweetDessert)
	}
}
