package favicon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"

	"github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp" // Register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// DefaultIconSize is the canonical edge length of every cached icon.
	DefaultIconSize = 64
	// maxSourceDimension bounds decoded source images on either axis.
	maxSourceDimension = 4096
)

// Normalizer decodes arbitrary fetched bytes and converts them to the
// canonical square PNG stored in both cache tiers.
type Normalizer struct {
	size int
}

// NewNormalizer creates a Normalizer producing size×size icons.
// Non-positive sizes use DefaultIconSize.
func NewNormalizer(size int) *Normalizer {
	if size <= 0 {
		size = DefaultIconSize
	}
	return &Normalizer{size: size}
}

// Size returns the canonical edge length.
func (n *Normalizer) Size() int {
	return n.size
}

// Normalize decodes data, center-crops it to a square, scales it to the
// canonical size with Catmull-Rom and re-encodes it as PNG.
func (n *Normalizer) Normalize(data []byte) (image.Image, []byte, error) {
	src, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	cropped := cropImage(src, squareRect(src.Bounds()))

	dst := image.NewNRGBA(image.Rect(0, 0, n.size, n.size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, nil, fmt.Errorf("%w: encode png: %v", ErrUndecodableImage, err)
	}

	return dst, buf.Bytes(), nil
}

// Decode turns data into a raster image. Registered formats (PNG, JPEG, GIF,
// BMP, WebP) are tried first, then ICO. Empty input, zero-area images and
// images larger than maxSourceDimension on either axis are rejected.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUndecodableImage)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		cfg, err = ico.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: unknown format", ErrUndecodableImage)
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: zero area", ErrUndecodableImage)
	}
	if cfg.Width > maxSourceDimension || cfg.Height > maxSourceDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed %d",
			ErrUndecodableImage, cfg.Width, cfg.Height, maxSourceDimension)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		img, err = ico.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
		}
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: zero area", ErrUndecodableImage)
	}

	return img, nil
}

// squareRect returns the centered square inside bounds.
func squareRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	switch {
	case w > h:
		offset := (w - h) / 2
		return image.Rect(b.Min.X+offset, b.Min.Y, b.Min.X+offset+h, b.Max.Y)
	case h > w:
		offset := (h - w) / 2
		return image.Rect(b.Min.X, b.Min.Y+offset, b.Max.X, b.Min.Y+offset+w)
	default:
		return b
	}
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, src, rect, draw.Src, nil)
	return dst
}
