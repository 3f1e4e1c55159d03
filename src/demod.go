package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Phase difference demodulator.
 *
 * Description:	Multiplying each analytic sample by the conjugate of
 *		its predecessor gives a phasor whose argument is the
 *		phase advance per sample, i.e. the instantaneous
 *		frequency.  The magnitude of the argument is used
 *		because the Hilbert stage leaves the sign ambiguous
 *		and SSTV tones are known positive; the sync detector
 *		tolerances are calibrated for it.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

// Demodulate converts analytic samples into instantaneous frequencies
// in Hz.  The result has one fewer element than the input; fewer than
// two input samples yield an empty result.
func Demodulate(iq []complex64, sampleRate float32) []float32 {

	if len(iq) < 2 {
		return []float32{}
	}

	var freqs = make([]float32, len(iq)-1)

	for i := 1; i < len(iq); i++ {
		var z = iq[i] * complex(real(iq[i-1]), -imag(iq[i-1]))
		var diff = math.Atan2(float64(imag(z)), float64(real(z)))
		freqs[i-1] = float32(math.Abs(diff)) * sampleRate / (2 * math.Pi)
	}

	return freqs
}

// DemodulateAudio runs the full front end over real audio samples:
// band limited Hilbert transform, truncation back to the input length,
// then phase difference demodulation.  Pass 0 for lowCut/highCut to
// get the decoder defaults.
func DemodulateAudio(samples []complex64, sampleRate float32, lowCut float32, highCut float32) ([]float32, error) {

	if len(samples) == 0 {
		return []float32{}, ErrEmptyInput
	}

	if lowCut <= 0 {
		lowCut = DefaultLowCut
	}
	if highCut <= 0 {
		highCut = DefaultHighCut
	}

	var iq = Hilbert(samples, sampleRate, lowCut, highCut)

	// FFT padding makes the analytic signal longer than the input.
	// The padded tail demodulates to nonsense, so cut it off.
	if len(iq) > len(samples) {
		iq = iq[:len(samples)]
	}

	return Demodulate(iq, sampleRate), nil
}
