package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Line encoder: raster in, frequency sequence out.
 *
 * Description:	Emits the calibration header every SSTV receiver
 *		expects - leader, break, leader, break, 7 bit VIS
 *		code LSB first with even parity and a stop bit - then
 *		the per mode scan section.  Martin M1 and M2 carry a
 *		full G, B, R scan; the other modes stop after the
 *		header because no modulator is defined for them here.
 *
 *---------------------------------------------------------------*/

import (
	"math"
	"math/bits"
)

// freqSeq accumulates tone segments as repeated frequency samples at
// the synthesizer rate.
type freqSeq struct {
	freqs []float32
}

// toneSamples converts a duration to a whole sample count at the
// synthesizer rate.  The nudge keeps exact multiples, like the 30 ms
// VIS bit, from landing a hair under the integer and losing a sample
// to the floor.
func toneSamples(seconds float64) int {
	return int(math.Floor(SampleRate*seconds + 1e-6))
}

// add appends seconds worth of samples at the given frequency.
func (s *freqSeq) add(freq float64, seconds float64) {
	for range toneSamples(seconds) {
		s.freqs = append(s.freqs, float32(freq))
	}
}

// EncodeFrequencies produces the frequency sequence for transmitting
// the raster in the given mode.  The raster is resized to the mode's
// logical dimensions first, so any input size works.
//
// Modes without a scan modulator return the header prefix alone
// together with ErrUnsupportedMode.
func EncodeFrequencies(img *Raster, mode Mode) ([]float32, error) {

	var info = mode.info()
	var seq freqSeq

	seq.add(leaderFreq, leaderSeconds)
	seq.add(syncFreq, breakSeconds)
	seq.add(leaderFreq, leaderSeconds)
	seq.add(syncFreq, visBreakSeconds)

	var vis = info.vis
	for i := range 7 {
		if vis&(1<<i) != 0 {
			seq.add(visOneFreq, visBitSeconds)
		} else {
			seq.add(visZeroFreq, visBitSeconds)
		}
	}

	// Parity bit: a one when the 7 data bits hold an even number
	// of ones, a zero otherwise.
	if bits.OnesCount8(vis&0x7f)%2 == 0 {
		seq.add(visOneFreq, visBitSeconds)
	} else {
		seq.add(visZeroFreq, visBitSeconds)
	}

	seq.add(syncFreq, visBitSeconds) // stop bit

	if info.lineSeconds == 0 {
		return seq.freqs, ErrUnsupportedMode
	}

	encodeMartinScan(&seq, img, info)

	return seq.freqs, nil
}

// EncodeImage is the full transmit chain: frequency encoding followed
// by tone synthesis to 16 bit PCM at 44.1 kHz.  On an unsupported
// mode the prefix PCM is still returned with the error.
func EncodeImage(img *Raster, mode Mode) ([]int16, error) {
	var freqs, err = EncodeFrequencies(img, mode)
	return Synthesize(freqs, SampleRate), err
}

/*------------------------------------------------------------------
 *
 * Name:	encodeMartinScan
 *
 * Purpose:	The Martin scan section.
 *
 * Description:	Per scanline: horizontal sync, porch, then the G, B
 *		and R channels back to back, each pixel held for the
 *		mode's pixel time on the 1500..2300 Hz ramp and each
 *		channel followed by a 1500 Hz separator.
 *
 *		Only the first maxLines-1 scanlines go out.  The
 *		receiver captures the leader tones as spurious rows,
 *		so a full height scan would push the last lines past
 *		the raster budget anyway.
 *
 *----------------------------------------------------------------*/

func encodeMartinScan(seq *freqSeq, img *Raster, info modeInfo) {

	var scaled = ResizeRaster(img, info.width, info.maxLines)
	var tPix = info.lineSeconds / float64(info.width)

	for line := 0; line < info.maxLines-1; line++ {

		seq.add(syncFreq, syncSeconds)
		seq.add(porchFreq, porchSeconds)

		for _, channel := range [3]func(RGB) uint8{
			func(p RGB) uint8 { return p.G },
			func(p RGB) uint8 { return p.B },
			func(p RGB) uint8 { return p.R },
		} {
			for x := range info.width {
				var c = float64(channel(scaled.At(x, line))) / 255.0
				seq.add(blackFreq+(whiteFreq-blackFreq)*c, tPix)
			}
			seq.add(porchFreq, separatorSeconds)
		}
	}
}
