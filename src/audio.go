package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Audio sample handling between the WAV container and
 *		the demodulator.
 *
 * Description:	The decoder wants mono samples normalized to [-1, 1]
 *		in the real part of a complex buffer.  Integer PCM is
 *		divided by the native max of its bit depth and stereo
 *		is down mixed by averaging the two channels.  The
 *		demodulator only looks at phase, so absolute level
 *		does not matter much, but normalizing keeps the FFT
 *		away from float32 range trouble.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// NormalizePCM converts interleaved integer PCM into mono complex
// samples in [-1, 1].  bitDepth is the native sample width (8, 16, 24
// or 32); channels beyond the first two are ignored.
func NormalizePCM(data []int, channels int, bitDepth int) []complex64 {

	if channels < 1 {
		channels = 1
	}

	var div = float32(int64(1) << (bitDepth - 1))
	var out = make([]complex64, 0, len(data)/channels)

	for i := 0; i+channels <= len(data); i += channels {
		var v float32
		if channels >= 2 {
			v = 0.5 * (float32(data[i]) + float32(data[i+1])) / div
		} else {
			v = float32(data[i]) / div
		}
		out = append(out, complex(v, 0))
	}

	return out
}

// NormalizeFloatPCM converts interleaved 32 bit float PCM, already in
// [-1, 1], into mono complex samples.
func NormalizeFloatPCM(data []float32, channels int) []complex64 {

	if channels < 1 {
		channels = 1
	}

	var out = make([]complex64, 0, len(data)/channels)

	for i := 0; i+channels <= len(data); i += channels {
		var v = data[i]
		if channels >= 2 {
			v = 0.5 * (data[i] + data[i+1])
		}
		out = append(out, complex(v, 0))
	}

	return out
}

// ReadWAV loads an entire integer PCM .WAV file as normalized mono
// complex samples, returning the container's sample rate with them.
func ReadWAV(path string) ([]complex64, float32, error) {

	var fp, err = os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer fp.Close()

	var decoder = wav.NewDecoder(fp)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a usable WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	var bitDepth = buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(decoder.BitDepth)
	}

	var samples = NormalizePCM(buf.Data, buf.Format.NumChannels, bitDepth)

	return samples, float32(buf.Format.SampleRate), nil
}

// WriteWAV saves synthesized PCM as a mono 16 bit .WAV file.
func WriteWAV(path string, pcm []int16, sampleRate int) error {

	var fp, err = os.Create(path)
	if err != nil {
		return err
	}

	var encoder = wav.NewEncoder(fp, sampleRate, 16, 1, 1)

	var data = make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	var buf = &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := encoder.Write(buf); err != nil {
		fp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := encoder.Close(); err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}
