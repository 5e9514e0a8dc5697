package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAnalyzeUniformImages(t *testing.T) {
	tests := []struct {
		name       string
		pixel      color.NRGBA
		category   string
		confidence int
	}{
		{"bright green", color.NRGBA{50, 220, 50, 255}, CategoryFreshSalad, 78},
		{"bright red", color.NRGBA{200, 60, 60, 255}, CategoryTomatoDish, 74},
		{"dark", color.NRGBA{30, 30, 30, 255}, CategoryHeartyStew, 70},
		{"mid blue", color.NRGBA{80, 80, 150, 255}, CategorySweetDessert, 65},
		// green dominant but brightness 73.3 misses both the salad and the stew rule
		{"green below salad threshold", color.NRGBA{10, 200, 10, 255}, CategorySweetDessert, 65},
		// dark green is a stew, the colour rule needs brightness > 90
		{"dark green", color.NRGBA{10, 100, 10, 255}, CategoryHeartyStew, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(uniform(320, 240, tt.pixel))
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.NotEmpty(t, got.Recipe.Title)
			assert.NotEmpty(t, got.Recipe.Ingredients)
			assert.NotEmpty(t, got.Recipe.Steps)
			assert.Positive(t, got.Portions.EstimatedCalories)
		})
	}
}

func TestMeasureUniformImage(t *testing.T) {
	s := Measure(uniform(640, 480, color.NRGBA{10, 200, 10, 255}))

	assert.InDelta(t, 10, s.MeanRed, 0.01)
	assert.InDelta(t, 200, s.MeanGreen, 0.01)
	assert.InDelta(t, 10, s.MeanBlue, 0.01)
	assert.InDelta(t, 73.33, s.Brightness, 0.01)
	assert.Equal(t, Green, s.Dominant)
}

func TestMeasureSmallImageIsUpsampled(t *testing.T) {
	s := Measure(uniform(3, 2, color.NRGBA{200, 60, 60, 255}))

	assert.InDelta(t, 200, s.MeanRed, 0.01)
	assert.Equal(t, Red, s.Dominant)
}

func TestNewStatsTieBreaking(t *testing.T) {
	assert.Equal(t, Red, NewStats(100, 100, 100).Dominant)
	assert.Equal(t, Red, NewStats(120, 120, 10).Dominant)
	assert.Equal(t, Green, NewStats(10, 120, 120).Dominant)
	assert.Equal(t, Red, NewStats(120, 10, 120).Dominant)
	assert.Equal(t, Blue, NewStats(10, 20, 30).Dominant)
}

func TestClassifyRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		category string
	}{
		{"salad boundary is exclusive", NewStats(80, 110, 80), CategorySweetDessert},
		{"salad just above boundary", NewStats(80, 111, 80), CategoryFreshSalad},
		{"red at brightness 60 is not tomato", NewStats(80, 50, 50), CategoryHeartyStew},
		{"red just above 60", NewStats(82, 50, 50), CategoryTomatoDish},
		// red with brightness in (60, 70) takes the tomato rule before the stew rule
		{"tomato beats stew", NewStats(120, 40, 40), CategoryTomatoDish},
		{"stew boundary is exclusive", NewStats(60, 70, 80), CategorySweetDessert},
		{"grey tie goes to red", NewStats(100, 100, 100), CategoryTomatoDish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, Classify(tt.stats).Category)
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	confidences := map[string]int{
		CategoryFreshSalad:   78,
		CategoryTomatoDish:   74,
		CategoryHeartyStew:   70,
		CategorySweetDessert: 65,
	}

	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				got := Classify(NewStats(float64(r), float64(g), float64(b)))
				want, ok := confidences[got.Category]
				require.True(t, ok, "unexpected category %q", got.Category)
				require.Equal(t, want, got.Confidence)
			}
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 5), uint8(y * 5), 90, 255})
		}
	}

	first := Analyze(img)
	second := Analyze(img)
	assert.Equal(t, first, second)
}

func TestResultsDoNotShareTableSlices(t *testing.T) {
	got := Analyze(uniform(10, 10, color.NRGBA{30, 30, 30, 255}))
	got.Recipe.Ingredients[0] = "changed"

	again := Analyze(uniform(10, 10, color.NRGBA{30, 30, 30, 255}))
	assert.Equal(t, "150 g meat or plant protein", again.Recipe.Ingredients[0])
}

func TestCategoriesCoverCannedResults(t *testing.T) {
	require.Len(t, cannedResults, len(Categories))
	for _, c := range Categories {
		assert.Equal(t, c, cannedResults[c].Category)
	}
}
