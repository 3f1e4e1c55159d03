package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Sync driven line decoder: frequency sequence in,
 *		raster out.
 *
 * Description:	A small state machine walks the demodulated
 *		frequencies.  The 1900 Hz leader arms it, every
 *		1200 Hz sync pulse terminates a scanline, and the
 *		samples in between are mapped onto the 1500..2300 Hz
 *		luminance ramp.  Rows survive only when they carry at
 *		least a full raw line of samples, which throws away
 *		partial captures after a lost sync.
 *
 *		After the last sync the rows are resampled to the
 *		mode's raw width and split into channels: plain
 *		luminance for RAW, G/B/R thirds for Martin,
 *		Y1/Cr/Cb/Y2 quarters for PD.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

type lineState int

const (
	stateReady lineState = iota
	stateSyncWait
	stateSyncStart
	stateDone
)

// DecodeOptions adjusts decoder behavior away from the defaults.
type DecodeOptions struct {
	// PDSingleRow emits one raster row per sync pulse for the PD
	// modes, using only the first luminance field.  The default
	// emits two rows per sync, one from Y1 and one from Y2, which
	// is what the PD line format actually carries.
	PDSingleRow bool

	// LowCut/HighCut override the Hilbert pass band in Hz for
	// DecodeAudio.  Zero selects the defaults.
	LowCut  float32
	HighCut float32
}

// DecodeImage recovers a raster from a demodulated frequency sequence
// with default options.
func DecodeImage(freqs []float32, mode Mode) (*Raster, error) {
	return DecodeImageOptions(freqs, mode, DecodeOptions{})
}

// DecodeAudio runs the whole receive chain over real audio samples:
// Hilbert transform, phase demodulation, then line decoding.
func DecodeAudio(samples []complex64, sampleRate float32, mode Mode, opts DecodeOptions) (*Raster, error) {
	var freqs, err = DemodulateAudio(samples, sampleRate, opts.LowCut, opts.HighCut)
	if err != nil {
		return NewRaster(mode.Width(), 0), err
	}
	return DecodeImageOptions(freqs, mode, opts)
}

// DecodeImageOptions recovers a raster from a demodulated frequency
// sequence.  The result width is the mode's logical width and the
// height is the number of decoded scanlines, capped at the mode's
// line budget.  On failure the raster is empty and the error says
// why; the call never panics.
func DecodeImageOptions(freqs []float32, mode Mode, opts DecodeOptions) (*Raster, error) {

	var info = mode.info()

	if len(freqs) == 0 {
		return NewRaster(info.width, 0), ErrEmptyInput
	}

	var rawLen = info.width * info.channels

	// PD pairs two raster rows per captured scanline, so the
	// capture budget is half the line budget.
	var maxRows = info.maxLines
	if info.pd && !opts.PDSingleRow {
		maxRows = info.maxLines / 2
	}

	var state = stateReady
	var rowBuf []float32
	var rows [][]float32
	var blank = 0

	for i, f := range freqs {

		if i == len(freqs)-1 {
			state = stateDone
		}

		switch state {

		case stateReady:
			if within(f, leaderFreq, leaderTolerance) {
				state = stateSyncWait
			}

		case stateSyncWait:
			if within(f, syncFreq, syncTolerance) {
				if len(rowBuf) >= rawLen {
					rows = append(rows, rowBuf)
					rowBuf = nil
					blank = blankSamples
					state = stateSyncStart
					if len(rows) >= maxRows {
						state = stateDone
					}
				} else {
					rowBuf = rowBuf[:0]
				}
			} else {
				rowBuf = append(rowBuf, luminance(f))
			}

		case stateSyncStart:
			// Sit out the tail of the sync pulse so it can't
			// retrigger, then wait for the tone to leave the
			// sync band.
			if blank > 0 {
				blank--
			} else if !within(f, syncFreq, popTolerance) {
				state = stateSyncWait
			}
		}

		if state == stateDone {
			break
		}
	}

	if len(rows) == 0 {
		return NewRaster(info.width, 0), ErrShortInput
	}

	return packRaster(rows, mode, opts), nil
}

/*------------------------------------------------------------------
 *
 * Name:	packRaster
 *
 * Purpose:	Turn captured scanlines into the output raster.
 *
 * Inputs:	rows	- Luminance rows, each at least rawLen long
 *			  except for malformed stragglers.
 *
 * Description:	Each row is resampled to the raw width, quantized,
 *		and split into the mode's channel layout.
 *
 *----------------------------------------------------------------*/

func packRaster(rows [][]float32, mode Mode, opts DecodeOptions) *Raster {

	var info = mode.info()
	var rawLen = info.width * info.channels

	var grid = make([][]uint8, len(rows))
	for i, row := range rows {
		grid[i] = quantizeRow(resampleRow(row, rawLen))
	}

	switch {

	case info.channels == 1:
		var r = NewRaster(info.width, len(grid))
		for y, row := range grid {
			for x, v := range row {
				r.Set(x, y, RGB{R: v, G: v, B: v})
			}
		}
		return r

	case info.pd:
		return packPD(grid, info, opts.PDSingleRow)

	default:
		return packMartin(grid, info)
	}
}

// packMartin splits each raw row into G, B, R thirds.
func packMartin(grid [][]uint8, info modeInfo) *Raster {
	var w = info.width
	var r = NewRaster(w, len(grid))
	for y, row := range grid {
		for x := range w {
			r.Set(x, y, RGB{
				R: row[x+2*w],
				G: row[x],
				B: row[x+w],
			})
		}
	}
	return r
}

// packPD splits each raw row into Y1, Cr, Cb, Y2 quarters.  The
// shared chroma applies to both luminance fields, giving two raster
// rows per scanline unless the caller asked for the legacy single
// row behavior.
func packPD(grid [][]uint8, info modeInfo, singleRow bool) *Raster {

	var w = info.width
	var rowsPer = 2
	if singleRow {
		rowsPer = 1
	}

	var height = len(grid) * rowsPer
	if height > info.maxLines {
		height = info.maxLines
	}

	var r = NewRaster(w, height)

	for y, row := range grid {
		var out = y * rowsPer
		if out >= height {
			break
		}

		for x := range w {
			var cr = float32(row[x+w])
			var cb = float32(row[x+2*w])

			r.Set(x, out, ycbcrToRGB(float32(row[x]), cb, cr))

			if !singleRow && out+1 < height {
				r.Set(x, out+1, ycbcrToRGB(float32(row[x+3*w]), cb, cr))
			}
		}
	}

	return r
}

/*------------------------------------------------------------------
 *
 * Name:	resampleRow
 *
 * Purpose:	Squeeze a captured row down to exactly width cells.
 *
 * Description:	Proportional mapping: target cell i averages the
 *		source slice [i*(L-1)/W, (i+1)*(L-1)/W).  When the
 *		slice is empty the nearest source sample is used.
 *		Rows shorter than the target width fall back to
 *		nearest neighbour on the normalized index.
 *
 *----------------------------------------------------------------*/

func resampleRow(row []float32, width int) []float32 {

	var out = make([]float32, width)
	var l = len(row)

	if l == 0 {
		return out
	}

	if l < width {
		if width == 1 {
			out[0] = row[0]
			return out
		}
		for i := range out {
			out[i] = row[i*(l-1)/(width-1)]
		}
		return out
	}

	for i := range out {
		var lo = i * (l - 1) / width
		var hi = (i + 1) * (l - 1) / width

		if hi <= lo {
			out[i] = row[lo]
			continue
		}

		var sum float32
		for _, v := range row[lo:hi] {
			sum += v
		}
		out[i] = sum / float32(hi-lo)
	}

	return out
}

func quantizeRow(row []float32) []uint8 {
	var out = make([]uint8, len(row))
	for i, v := range row {
		out[i] = clamp255(v)
	}
	return out
}

// luminance maps a tone onto the 1500..2300 Hz ramp, 0 for black and
// 255 for white.  Out of band tones land outside 0..255 and get
// clamped at quantization.
func luminance(f float32) float32 {
	return float32(math.Round(math.Abs(float64(255.0 * (f - blackFreq) / (whiteFreq - blackFreq)))))
}

func within(value float32, target float32, tolerance float32) bool {
	return float32(math.Abs(float64(value-target))) <= tolerance
}
