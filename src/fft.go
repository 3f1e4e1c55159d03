package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Radix-2 FFT and inverse FFT for the demodulator
 *		front end.
 *
 * Description:	Inputs of arbitrary length are zero padded on the
 *		right to the next power of two, then transformed with
 *		the recursive Cooley-Tukey decimation in time
 *		algorithm.  Single precision is plenty for audio band
 *		work; the round trip error stays well under 1e-3 for
 *		transforms up to 2^16 points.
 *
 *---------------------------------------------------------------*/

import (
	"math"
)

// FFT returns the discrete Fourier transform of timeSamples.
//
// When the input length is not a power of two it is zero padded up to
// the next one, so the result may be longer than the input.  An empty
// input yields an empty result.
func FFT(timeSamples []complex64) []complex64 {

	var n = len(timeSamples)
	if n == 0 {
		return []complex64{}
	}

	var samples = make([]complex64, nextPow2(n))
	copy(samples, timeSamples)
	return subdivide(samples)
}

// IFFT returns the inverse transform, computed by conjugating around a
// forward FFT and dividing by the input length.  Inputs of length 0 or
// 1 are returned unchanged.
func IFFT(freqBins []complex64) []complex64 {

	var n = len(freqBins)
	if n <= 1 {
		return freqBins
	}

	var conj = make([]complex64, n)
	for i, z := range freqBins {
		conj[i] = complex(real(z), -imag(z))
	}

	var transformed = FFT(conj)

	var scale = 1.0 / float32(n)
	var result = make([]complex64, len(transformed))
	for i, z := range transformed {
		result[i] = complex(real(z)*scale, -imag(z)*scale)
	}

	return result
}

/*------------------------------------------------------------------
 *
 * Name:	subdivide
 *
 * Purpose:	One level of the decimation in time recursion.
 *
 * Inputs:	samples	- Power of two length.  Modified freely; the
 *			  public entry points hand over a copy.
 *
 * Returns:	The frequency bins, lowest first.
 *
 *----------------------------------------------------------------*/

func subdivide(samples []complex64) []complex64 {

	var n = len(samples)
	if n <= 1 {
		return samples
	}

	var m = n / 2

	var even = make([]complex64, m)
	var odd = make([]complex64, m)
	for i := range m {
		even[i] = samples[2*i]
		odd[i] = samples[2*i+1]
	}

	var fEven = subdivide(even)
	var fOdd = subdivide(odd)

	var bins = make([]complex64, n)
	for k := range m {
		var sin, cos = math.Sincos(-2 * math.Pi * float64(k) / float64(n))
		var twiddle = fOdd[k] * complex(float32(cos), float32(sin))
		bins[k] = fEven[k] + twiddle
		bins[k+m] = fEven[k] - twiddle
	}

	return bins
}

func nextPow2(n int) int {
	var m = 1
	for m < n {
		m <<= 1
	}
	return m
}
