package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Band limited Hilbert transform.
 *
 * Description:	Converts real audio into its analytic signal so the
 *		phase demodulator can track the instantaneous
 *		frequency of the SSTV tones.  Everything outside the
 *		pass band is discarded in the frequency domain at the
 *		same time, which kills hum and hiss before it can
 *		confuse the sync detector.
 *
 *---------------------------------------------------------------*/

// Pass band applied by the decoder front end.  The SSTV signal lives
// between the 1100 Hz VIS space tone and the 2300 Hz white level, with
// a little margin either side.
const (
	DefaultLowCut  = 900.0  // Hz
	DefaultHighCut = 2500.0 // Hz
)

// Hilbert returns the band limited analytic signal of the input.
//
// The input is real audio stored in the real part of each sample.  The
// result length is the input length rounded up to the next power of
// two because of FFT padding; callers normally truncate back to the
// original length.
func Hilbert(samples []complex64, sampleRate float32, lowCut float32, highCut float32) []complex64 {

	var bins = FFT(samples)
	var n = len(bins)

	for i, z := range bins {
		var h float32 = 1.0
		if i > 0 && i < n/2 {
			h = 2.0
		} else if i > n/2 {
			h = 0.0
		}
		bins[i] = complex(real(z)*h, imag(z)*h)
	}

	return IFFT(bandpass(bins, sampleRate, lowCut, highCut))
}

/*------------------------------------------------------------------
 *
 * Name:	bandpass
 *
 * Purpose:	Zero every frequency bin whose center lies outside
 *		[lowCut, highCut].
 *
 * Inputs:	bins	- Frequency bins, modified in place.
 *		sampleRate, lowCut, highCut - all in Hz.
 *
 * Description:	Bins above n/2 represent negative frequencies, so the
 *		Hilbert weighting has normally zeroed them already.
 *
 *----------------------------------------------------------------*/

func bandpass(bins []complex64, sampleRate float32, lowCut float32, highCut float32) []complex64 {

	var n = float32(len(bins))

	for i := range bins {
		var f float32
		if float32(i) <= n/2 {
			f = float32(i) * sampleRate / n
		} else {
			f = (float32(i) - n) * sampleRate / n
		}

		if f < lowCut || f > highCut {
			bins[i] = 0
		}
	}

	return bins
}
