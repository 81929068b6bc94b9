package favicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/favicache/internal/domain/entity"
)

const colorEpsilon = 1e-9

func TestExtractDominantColor_Solid(t *testing.T) {
	for _, size := range []int{1, 7, 10, 64, 100} {
		got := ExtractDominantColor(solidImage(size, size, orange))

		assert.InDelta(t, 200.0/255, got.R, colorEpsilon, "size %d", size)
		assert.InDelta(t, 100.0/255, got.G, colorEpsilon, "size %d", size)
		assert.InDelta(t, 50.0/255, got.B, colorEpsilon, "size %d", size)
	}
}

func TestExtractDominantColor_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{name: "fully transparent", img: solidImage(16, 16, transparent)},
		{name: "mostly transparent", img: solidImage(16, 16, color.NRGBA{R: 200, G: 100, B: 50, A: 100})},
		{name: "black", img: solidImage(16, 16, color.NRGBA{A: 255})},
		{name: "white", img: solidImage(16, 16, color.NRGBA{R: 255, G: 255, B: 255, A: 255})},
		{name: "zero area", img: image.NewNRGBA(image.Rect(0, 0, 0, 0))},
		{name: "nil", img: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, entity.NeutralColor, ExtractDominantColor(tt.img))
		})
	}
}

func TestExtractDominantColor_IgnoresBackground(t *testing.T) {
	// Orange logo on white: left half orange, right half white.
	img := solidImage(20, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, orange)
		}
	}

	got := ExtractDominantColor(img)

	assert.InDelta(t, 200.0/255, got.R, colorEpsilon)
	assert.InDelta(t, 100.0/255, got.G, colorEpsilon)
	assert.InDelta(t, 50.0/255, got.B, colorEpsilon)
}

func TestExtractDominantColor_LumaBandEdges(t *testing.T) {
	// Mean 32 is kept, mean 223 is kept.
	dark := ExtractDominantColor(solidImage(4, 4, color.NRGBA{R: 32, G: 32, B: 32, A: 255}))
	assert.InDelta(t, 32.0/255, dark.R, colorEpsilon)

	light := ExtractDominantColor(solidImage(4, 4, color.NRGBA{R: 223, G: 223, B: 223, A: 255}))
	assert.InDelta(t, 223.0/255, light.R, colorEpsilon)

	// Mean 31 falls out of the band.
	assert.Equal(t, entity.NeutralColor, ExtractDominantColor(solidImage(4, 4, color.NRGBA{R: 31, G: 31, B: 31, A: 255})))
}
