package sstv

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterAccessors(t *testing.T) {
	var r = NewRaster(4, 3)
	require.Len(t, r.Pix, 12)

	r.Set(2, 1, RGB{R: 10, G: 20, B: 30})
	assert.Equal(t, RGB{R: 10, G: 20, B: 30}, r.At(2, 1))
	assert.Equal(t, RGB{}, r.At(0, 0))
}

func TestRasterImageRoundTrip(t *testing.T) {
	var r = NewRaster(8, 8)
	for i := range r.Pix {
		r.Pix[i] = RGB{R: uint8(i * 3), G: uint8(i * 5), B: uint8(i * 7)}
	}

	var back = RasterFromImage(r.Image())

	assert.Equal(t, r.Width, back.Width)
	assert.Equal(t, r.Height, back.Height)
	assert.Equal(t, r.Pix, back.Pix)
}

func TestRasterFromImageDropsAlpha(t *testing.T) {
	var img = image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	var r = RasterFromImage(img)
	assert.Equal(t, RGB{R: 200, G: 100, B: 50}, r.At(0, 0))
	// A fully transparent pixel has no color left after
	// premultiplication; it must still land somewhere valid.
	assert.NotNil(t, r.At(1, 0))
}

func TestPNGRoundTrip(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "out.png")

	var r = NewRaster(16, 9)
	for i := range r.Pix {
		r.Pix[i] = RGB{R: uint8(i), G: uint8(255 - i), B: 128}
	}

	require.NoError(t, r.WritePNG(path))

	var back, err = ReadPNG(path)
	require.NoError(t, err)

	assert.Equal(t, r.Width, back.Width)
	assert.Equal(t, r.Height, back.Height)
	assert.Equal(t, r.Pix, back.Pix)
}

func TestReadPNGMissing(t *testing.T) {
	var _, err = ReadPNG(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestYCbCrToRGB(t *testing.T) {
	tests := []struct {
		name      string
		y, cb, cr float32
		want      RGB
	}{
		{"mid gray", 128, 128, 128, RGB{128, 128, 128}},
		{"black", 0, 128, 128, RGB{0, 0, 0}},
		{"white", 255, 128, 128, RGB{255, 255, 255}},
		{"red-ish", 81, 90, 240, RGB{238, 14, 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got = ycbcrToRGB(tt.y, tt.cb, tt.cr)
			assert.InDelta(t, int(tt.want.R), int(got.R), 1)
			assert.InDelta(t, int(tt.want.G), int(got.G), 1)
			assert.InDelta(t, int(tt.want.B), int(got.B), 1)
		})
	}
}

func TestYCbCrToRGBClamps(t *testing.T) {
	var high = ycbcrToRGB(250, 255, 255)
	assert.Equal(t, uint8(255), high.R)

	var low = ycbcrToRGB(5, 0, 0)
	assert.Equal(t, uint8(0), low.R)
	assert.Equal(t, uint8(0), low.B)
}

func TestClamp255(t *testing.T) {
	assert.Equal(t, uint8(0), clamp255(-1000))
	assert.Equal(t, uint8(0), clamp255(-0.4))
	assert.Equal(t, uint8(128), clamp255(127.6))
	assert.Equal(t, uint8(255), clamp255(255))
	assert.Equal(t, uint8(255), clamp255(10000))
}
