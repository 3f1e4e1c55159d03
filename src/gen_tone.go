package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Convert a frequency sequence to PCM for writing to a
 *		.WAV sound file.
 *
 * Description:	Phase accumulator sine oscillator.  The phase carries
 *		over between samples, so frequency transitions are
 *		click free - an abrupt phase jump would splatter
 *		energy across the band and upset the receiver's sync
 *		detector.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

// Synthesize turns a frequency sequence into signed 16 bit PCM, one
// output sample per input frequency.  The phase accumulator is kept
// reduced modulo 2 pi.
func Synthesize(freqs []float32, sampleRate float32) []int16 {

	var pcm = make([]int16, len(freqs))
	var phase float64

	for i, f := range freqs {
		phase += float64(f) * 2 * math.Pi / float64(sampleRate)
		if phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
		pcm[i] = int16(math.Round(math.Sin(phase) * math.MaxInt16))
	}

	return pcm
}
