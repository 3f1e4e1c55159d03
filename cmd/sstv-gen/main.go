package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Generate SSTV test transmissions without an input
 *		image.
 *
 * Description:	Produces a .WAV carrying a synthetic test pattern,
 *		handy for exercising a decoder under controlled and
 *		reproducible conditions.
 *
 *		Examples:
 *
 *			sstv-gen -o bars.wav
 *			sstv-gen -p gradient -m martin2 -o z2.wav
 *			sstv-decode -i bars.wav -m martin1
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	sstv "github.com/jacksondiette/73-SSTV/src"
)

// Color bar stripes, brightest first.
var barColors = [7]sstv.RGB{
	{R: 192, G: 192, B: 192}, // Gray
	{R: 192, G: 192, B: 0},   // Yellow
	{R: 0, G: 192, B: 192},   // Cyan
	{R: 0, G: 192, B: 0},     // Green
	{R: 192, G: 0, B: 192},   // Magenta
	{R: 192, G: 0, B: 0},     // Red
	{R: 0, G: 0, B: 192},     // Blue
}

func colorBars(width int, height int) *sstv.Raster {
	var r = sstv.NewRaster(width, height)
	var barWidth = width / len(barColors)
	for y := range height {
		for x := range width {
			var bar = x / barWidth
			if bar >= len(barColors) {
				bar = len(barColors) - 1
			}
			r.Set(x, y, barColors[bar])
		}
	}
	return r
}

func gradient(width int, height int) *sstv.Raster {
	var r = sstv.NewRaster(width, height)
	for y := range height {
		for x := range width {
			r.Set(x, y, sstv.RGB{
				R: uint8(x * 255 / (width - 1)),
				G: 0,
				B: uint8(y * 255 / (height - 1)),
			})
		}
	}
	return r
}

func main() {
	var (
		outputFile  = pflag.StringP("output", "o", "sstv-test.wav", "Output .wav file.")
		modeName    = pflag.StringP("mode", "m", "martin1", "SSTV mode: martin1 or martin2.")
		pattern     = pflag.StringP("pattern", "p", "bars", "Test pattern: bars or gradient.")
		savePNG     = pflag.String("png", "", "Also save the pattern image here.")
		showVersion = pflag.BoolP("version", "v", false, "Print version and exit.")
	)
	pflag.Parse()

	if *showVersion {
		sstv.PrintVersion(true)
		return
	}

	var mode, modeErr = sstv.ParseMode(*modeName)
	if modeErr != nil {
		log.Fatal("Bad mode", "err", modeErr)
	}

	var raster *sstv.Raster
	switch *pattern {
	case "bars":
		raster = colorBars(mode.Width(), mode.MaxLines())
	case "gradient":
		raster = gradient(mode.Width(), mode.MaxLines())
	default:
		log.Error("Unknown pattern", "pattern", *pattern)
		pflag.Usage()
		os.Exit(1)
	}

	if *savePNG != "" {
		if err := raster.WritePNG(*savePNG); err != nil {
			log.Warn("Can't save pattern image", "err", err)
		}
	}

	log.Info("Encoding test pattern...", "mode", mode, "pattern", *pattern)
	var pcm, err = sstv.EncodeImage(raster, mode)
	if err != nil && !errors.Is(err, sstv.ErrUnsupportedMode) {
		log.Fatal("Encode failed", "err", err)
	}
	if errors.Is(err, sstv.ErrUnsupportedMode) {
		log.Warn("No scan modulator for this mode, emitting header only", "mode", mode)
	}

	if err := sstv.WriteWAV(*outputFile, pcm, sstv.SampleRate); err != nil {
		log.Fatal("Can't write audio", "err", err)
	}

	log.Info("Done!", "path", *outputFile, "seconds", float64(len(pcm))/float64(sstv.SampleRate))
}
