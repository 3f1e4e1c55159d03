package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Resize an input raster to a mode's logical dimensions
 *		before modulation.
 *
 *---------------------------------------------------------------*/

import (
	"image"

	"golang.org/x/image/draw"
)

// ResizeRaster scales the raster to width x height with a low pass
// bicubic kernel.  A same size input comes back as a copy.
func ResizeRaster(src *Raster, width int, height int) *Raster {

	if src == nil || src.Width == 0 || src.Height == 0 {
		return NewRaster(width, height)
	}

	if src.Width == width && src.Height == height {
		var dup = NewRaster(width, height)
		copy(dup.Pix, src.Pix)
		return dup
	}

	var dst = image.NewRGBA(image.Rect(0, 0, width, height))
	var srcImg = src.Image()
	draw.CatmullRom.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)

	return RasterFromImage(dst)
}
