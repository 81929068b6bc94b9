package favicon

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/bnema/favicache/internal/domain/entity"
)

const (
	// colorGridSize is the edge length of the sampling grid.
	colorGridSize = 10
	// Samples with alpha below this are treated as transparent.
	minSampleAlpha = 128
	// Samples whose channel mean falls outside [minSampleLuma, maxSampleLuma] are dropped.
	minSampleLuma = 32
	maxSampleLuma = 223
)

// ExtractDominantColor samples img on a small nearest-neighbour grid and
// averages the samples that are neither mostly transparent nor near black
// or white. Returns entity.NeutralColor when nothing qualifies.
func ExtractDominantColor(img image.Image) entity.Color {
	if img == nil || img.Bounds().Empty() {
		return entity.NeutralColor
	}

	// imaging returns non-premultiplied NRGBA.
	grid := imaging.Resize(img, colorGridSize, colorGridSize, imaging.NearestNeighbor)

	var sumR, sumG, sumB, count int
	for i := 0; i+3 < len(grid.Pix); i += 4 {
		r, g, b, a := int(grid.Pix[i]), int(grid.Pix[i+1]), int(grid.Pix[i+2]), int(grid.Pix[i+3])
		if a < minSampleAlpha {
			continue
		}
		luma := (r + g + b) / 3
		if luma < minSampleLuma || luma > maxSampleLuma {
			continue
		}
		sumR += r
		sumG += g
		sumB += b
		count++
	}

	if count == 0 {
		return entity.NeutralColor
	}

	n := float64(count) * 255
	return entity.Color{
		R: float64(sumR) / n,
		G: float64(sumG) / n,
		B: float64(sumB) / n,
	}
}
