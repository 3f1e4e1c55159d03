package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Raster type shared by the decoder and encoder.
 *
 * Description:	A plain RGB pixel array, 8 bits per channel.  Decode
 *		output uses the mode's logical dimensions; encode
 *		input is arbitrary and gets resized before modulation.
 *		Alpha from source images is dropped and every raster
 *		written out is opaque.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

type RGB struct {
	R, G, B uint8
}

type Raster struct {
	Width  int
	Height int
	Pix    []RGB // row major, Width*Height entries
}

// NewRaster returns an all black raster of the given size.
func NewRaster(width int, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (r *Raster) At(x int, y int) RGB {
	return r.Pix[y*r.Width+x]
}

func (r *Raster) Set(x int, y int, p RGB) {
	r.Pix[y*r.Width+x] = p
}

// Image converts the raster to an opaque image.RGBA.
func (r *Raster) Image() *image.RGBA {
	var img = image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := range r.Height {
		for x := range r.Width {
			var p = r.Pix[y*r.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}

// RasterFromImage flattens any image into a Raster, ignoring alpha.
func RasterFromImage(img image.Image) *Raster {
	var bounds = img.Bounds()
	var r = NewRaster(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			var cr, cg, cb, _ = img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			r.Set(x, y, RGB{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)})
		}
	}
	return r
}

// ReadPNG loads an image file into a Raster.  Any format registered
// with the image package works; PNG is registered here.
func ReadPNG(path string) (*Raster, error) {
	var fp, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	img, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return RasterFromImage(img), nil
}

// WritePNG saves the raster as an opaque PNG file.
func (r *Raster) WritePNG(path string) error {
	var fp, err = os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(fp, r.Image()); err != nil {
		fp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return fp.Close()
}

/*------------------------------------------------------------------
 *
 * Name:	ycbcrToRGB
 *
 * Purpose:	ITU-R BT.601 conversion used by the PD modes.
 *
 * Inputs:	y, cb, cr	- As transmitted, 0..255 with the
 *				  chroma channels centered on 128.
 *
 * Returns:	The clamped RGB pixel.
 *
 *----------------------------------------------------------------*/

func ycbcrToRGB(y float32, cb float32, cr float32) RGB {
	return RGB{
		R: clamp255(y + 1.402*(cr-128.0)),
		G: clamp255(y - 0.344*(cb-128.0) - 0.714*(cr-128.0)),
		B: clamp255(y + 1.772*(cb-128.0)),
	}
}

func clamp255(v float32) uint8 {
	var r = math.Round(float64(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
