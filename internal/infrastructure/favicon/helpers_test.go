package favicon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	return encodePNG(t, solidImage(w, h, c))
}

// pngICO wraps PNG data in a single-entry ICO container.
func pngICO(t *testing.T, w, h int, pngData []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	// ICONDIR: reserved, type (1 = icon), count
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 1}))
	// ICONDIRENTRY
	buf.WriteByte(byte(w))
	buf.WriteByte(byte(h))
	buf.WriteByte(0) // palette
	buf.WriteByte(0) // reserved
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1)))  // planes
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(32))) // bpp
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(pngData))))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(6+16)))
	buf.Write(pngData)
	return buf.Bytes()
}

var (
	orange      = color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	transparent = color.NRGBA{}
)
