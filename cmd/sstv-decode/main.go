package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Decode an SSTV transmission from a .WAV recording
 *		into a .PNG image.
 *
 * Description:	The mode is chosen by the user, not sniffed from the
 *		VIS header.  The demodulated frequency trace can be
 *		saved and re-decoded later with a different mode,
 *		which skips the expensive Hilbert pass.
 *
 *		Examples:
 *
 *			sstv-decode -i rx.wav -o rx.png -m martin1
 *			sstv-decode -i rx.wav --freqs rx.fq -m raw
 *			sstv-decode --from-freqs rx.fq -m pd120 -o rx.png
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	sstv "github.com/jacksondiette/73-SSTV/src"
)

func main() {
	var (
		inputFile   = pflag.StringP("input", "i", "", "Input .wav recording.")
		outputFile  = pflag.StringP("output", "o", "sstv.png", "Output .png image.")
		modeName    = pflag.StringP("mode", "m", "", "SSTV mode: raw, martin1, martin2, pd120, pd180.")
		configFile  = pflag.StringP("config", "c", "", "Configuration file (default sstv.yaml).")
		freqsOut    = pflag.String("freqs", "", "Also save the demodulated frequency trace here.")
		freqsIn     = pflag.String("from-freqs", "", "Decode a saved frequency trace instead of audio.")
		pdSingle    = pflag.Bool("pd-single", false, "Emit one row per sync for PD modes (legacy behavior).")
		lowCut      = pflag.Float32("low", 0, "Demodulator pass band low edge in Hz.")
		highCut     = pflag.Float32("high", 0, "Demodulator pass band high edge in Hz.")
		showVersion = pflag.BoolP("version", "v", false, "Print version and exit.")
	)
	pflag.Parse()

	if *showVersion {
		sstv.PrintVersion(true)
		return
	}

	var config, configErr = sstv.LoadConfig(*configFile)
	if configErr != nil {
		log.Warn("Ignoring configuration", "err", configErr)
	}

	if *modeName == "" {
		*modeName = config.DecodeMode
	}
	var mode, modeErr = sstv.ParseMode(*modeName)
	if modeErr != nil {
		log.Fatal("Bad mode", "err", modeErr)
	}

	var opts = sstv.DecodeOptions{
		PDSingleRow: *pdSingle || config.PDSingleRow,
		LowCut:      config.Passband.Low,
		HighCut:     config.Passband.High,
	}
	if *lowCut > 0 {
		opts.LowCut = *lowCut
	}
	if *highCut > 0 {
		opts.HighCut = *highCut
	}

	var freqs []float32

	switch {
	case *freqsIn != "":
		var err error
		freqs, err = sstv.ReadFrequencyTrace(*freqsIn)
		if err != nil {
			log.Fatal("Can't load frequency trace", "err", err)
		}

	case *inputFile != "":
		log.Info("Reading file...", "path", *inputFile)
		var samples, sampleRate, err = sstv.ReadWAV(*inputFile)
		if err != nil {
			log.Fatal("Can't read recording", "err", err)
		}

		log.Info("Performing Hilbert transform...", "samples", len(samples), "rate", sampleRate)
		freqs, err = sstv.DemodulateAudio(samples, sampleRate, opts.LowCut, opts.HighCut)
		if err != nil {
			log.Fatal("Demodulation failed", "err", err)
		}

	default:
		pflag.Usage()
		os.Exit(1)
	}

	if *freqsOut != "" {
		if err := sstv.WriteFrequencyTrace(*freqsOut, freqs); err != nil {
			log.Warn("Can't save frequency trace", "err", err)
		}
	}

	log.Info("Building image...", "mode", mode)
	var raster, err = sstv.DecodeImageOptions(freqs, mode, opts)
	if err != nil {
		if errors.Is(err, sstv.ErrShortInput) || errors.Is(err, sstv.ErrEmptyInput) {
			log.Fatal("No image in this recording", "err", err)
		}
		log.Fatal("Decode failed", "err", err)
	}

	log.Info("Decoding complete", "lines", raster.Height)

	if err := raster.WritePNG(*outputFile); err != nil {
		log.Fatal("Can't write image", "err", err)
	}

	log.Info("Done!", "path", *outputFile)
}
