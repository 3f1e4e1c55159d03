package sstv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample counts for the header sections at 44.1 kHz.
var (
	leaderSamples   = toneSamples(leaderSeconds)   // 13230
	breakSamples    = toneSamples(breakSeconds)    // 441
	visBreakSamples = toneSamples(visBreakSeconds) // 1323
	visBitSamples   = toneSamples(visBitSeconds)   // 1323

	headerSamples = leaderSamples + breakSamples + leaderSamples + visBreakSamples +
		8*visBitSamples + visBitSamples
)

func TestEncodeHeaderStructure(t *testing.T) {
	var freqs, err = EncodeFrequencies(NewRaster(320, 256), ModeMartinM1)
	require.NoError(t, err)
	require.Greater(t, len(freqs), headerSamples)

	var segments = []struct {
		name  string
		start int
		count int
		freq  float32
	}{
		{"leader", 0, leaderSamples, 1900},
		{"break", leaderSamples, breakSamples, 1200},
		{"second leader", leaderSamples + breakSamples, leaderSamples, 1900},
		{"vis break", 2*leaderSamples + breakSamples, visBreakSamples, 1200},
		{"stop bit", headerSamples - visBitSamples, visBitSamples, 1200},
	}

	for _, seg := range segments {
		for i := range seg.count {
			require.Equal(t, seg.freq, freqs[seg.start+i], "%s sample %d", seg.name, i)
		}
	}
}

// Martin M1 is VIS 44 = 0101100: LSB first that is 0,0,1,1,0,1,0 with
// three ones, an odd count, so the parity bit is a zero.
func TestEncodeVISBits(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		bits   [7]float32
		parity float32
	}{
		{
			name:   "Martin M1",
			mode:   ModeMartinM1,
			bits:   [7]float32{1100, 1100, 1300, 1300, 1100, 1300, 1100},
			parity: 1100,
		},
		{
			name:   "Martin M2",
			mode:   ModeMartinM2, // VIS 40 = 0,0,0,1,0,1,0 LSB first
			bits:   [7]float32{1100, 1100, 1100, 1300, 1100, 1300, 1100},
			parity: 1300,
		},
		{
			name:   "unassigned VIS zero",
			mode:   ModeRaw,
			bits:   [7]float32{1100, 1100, 1100, 1100, 1100, 1100, 1100},
			parity: 1300,
		},
	}

	var visStart = 2*leaderSamples + breakSamples + visBreakSamples

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var freqs, _ = EncodeFrequencies(NewRaster(4, 4), tt.mode)

			var ones int
			for bit := range 7 {
				var got = freqs[visStart+bit*visBitSamples+visBitSamples/2]
				assert.Equal(t, tt.bits[bit], got, "bit %d", bit)
				if got == 1300 {
					ones++
				}
			}

			var parity = freqs[visStart+7*visBitSamples+visBitSamples/2]
			assert.Equal(t, tt.parity, parity)
			if tt.parity == 1300 {
				assert.Zero(t, ones%2, "parity bit says even but %d ones", ones)
			}
		})
	}
}

func TestEncodeUnsupportedModesEmitHeaderOnly(t *testing.T) {
	for _, mode := range []Mode{ModeRaw, ModePD120, ModePD180} {
		t.Run(mode.String(), func(t *testing.T) {
			var freqs, err = EncodeFrequencies(NewRaster(16, 16), mode)
			assert.ErrorIs(t, err, ErrUnsupportedMode)
			assert.Len(t, freqs, headerSamples)

			pcm, err := EncodeImage(NewRaster(16, 16), mode)
			assert.ErrorIs(t, err, ErrUnsupportedMode)
			assert.Len(t, pcm, headerSamples)
		})
	}
}

func martinLineSamples(mode Mode) int {
	var syncLen = toneSamples(syncSeconds)
	var porchLen = toneSamples(porchSeconds)
	var pixelLen = toneSamples(mode.PixelSeconds())
	return syncLen + porchLen + 3*(mode.Width()*pixelLen+porchLen)
}

func TestEncodeMartinScanLength(t *testing.T) {
	for _, mode := range []Mode{ModeMartinM1, ModeMartinM2} {
		t.Run(mode.String(), func(t *testing.T) {
			var freqs, err = EncodeFrequencies(NewRaster(320, 256), mode)
			require.NoError(t, err)

			var want = headerSamples + (mode.MaxLines()-1)*martinLineSamples(mode)
			assert.Len(t, freqs, want)
		})
	}
}

func TestEncodeMartinChannelOrder(t *testing.T) {
	// Solid (R=200, G=50, B=100): the three channel blocks of every
	// line must carry G, then B, then R.
	var img = NewRaster(320, 256)
	for i := range img.Pix {
		img.Pix[i] = RGB{R: 200, G: 50, B: 100}
	}

	var freqs, err = EncodeFrequencies(img, ModeMartinM1)
	require.NoError(t, err)

	var syncLen = toneSamples(syncSeconds)
	var porchLen = toneSamples(porchSeconds)
	var pixelLen = toneSamples(ModeMartinM1.PixelSeconds())
	var blockLen = 320*pixelLen + porchLen

	var lineStart = headerSamples
	for line := range 3 {
		var base = lineStart + line*martinLineSamples(ModeMartinM1)

		require.Equal(t, float32(1200), freqs[base], "line %d sync", line)
		require.Equal(t, float32(1500), freqs[base+syncLen], "line %d porch", line)

		var probe = func(block int) float64 {
			return float64(freqs[base+syncLen+porchLen+block*blockLen+10*pixelLen])
		}

		assert.InDelta(t, 1500+800*50.0/255, probe(0), 0.5, "line %d G", line)
		assert.InDelta(t, 1500+800*100.0/255, probe(1), 0.5, "line %d B", line)
		assert.InDelta(t, 1500+800*200.0/255, probe(2), 0.5, "line %d R", line)
	}
}

func TestEncodeResizesArbitraryInput(t *testing.T) {
	// A 100x80 input is legal; the scan section length must come out
	// the same as for a natively sized raster.
	var freqs, err = EncodeFrequencies(NewRaster(100, 80), ModeMartinM2)
	require.NoError(t, err)
	assert.Len(t, freqs, headerSamples+(ModeMartinM2.MaxLines()-1)*martinLineSamples(ModeMartinM2))
}

// Full transmit/receive loopback: encode a gradient, synthesize it,
// run the receive chain, compare rasters.  The capture starts two
// leader rows early, so the image arrives a couple of rows late; the
// 90% pixel budget absorbs that.
func TestMartinM1Loopback(t *testing.T) {
	if testing.Short() {
		t.Skip("loopback decode is expensive")
	}

	var img = NewRaster(320, 256)
	for y := range 256 {
		for x := range 320 {
			img.Set(x, y, RGB{
				R: uint8(x * 255 / 319),
				G: 0,
				B: uint8(y),
			})
		}
	}

	var pcm, err = EncodeImage(img, ModeMartinM1)
	require.NoError(t, err)

	var samples = make([]complex64, len(pcm))
	for i, s := range pcm {
		samples[i] = complex(float32(s)/math.MaxInt16, 0)
	}

	raster, err := DecodeAudio(samples, SampleRate, ModeMartinM1, DecodeOptions{})
	require.NoError(t, err)

	require.Equal(t, 320, raster.Width)
	require.Equal(t, 256, raster.Height)

	var within = func(a uint8, b uint8, tol int) bool {
		var d = int(a) - int(b)
		return d >= -tol && d <= tol
	}

	var good, total int
	for y := range raster.Height {
		for x := range raster.Width {
			var want = img.At(x, y)
			var got = raster.At(x, y)
			total++
			if within(got.R, want.R, 12) && within(got.G, want.G, 12) && within(got.B, want.B, 12) {
				good++
			}
		}
	}

	assert.GreaterOrEqual(t, float64(good)/float64(total), 0.90,
		"only %d of %d pixels within tolerance", good, total)
}
