package main

/*------------------------------------------------------------------
 *
 * Purpose:   	Encode a .PNG image as an SSTV transmission in a
 *		mono 16 bit 44.1 kHz .WAV file.
 *
 * Description:	The image is resized to the mode's logical dimensions
 *		before modulation, so any input size works.  Martin M1
 *		and M2 are the transmittable modes; anything else only
 *		gets the leader and VIS header.
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
		inputFile   = pflag.StringP("input", "i", "", "Input image (.png).")
		outputFile  = pflag.StringP("output", "o", "sstv.wav", "Output .wav file.")
		modeName    = pflag.StringP("mode", "m", "", "SSTV mode: martin1 or martin2.")
		configFile  = pflag.StringP("config", "c", "", "Configuration file (default sstv.yaml).")
		showVersion = pflag.BoolP("version", "v", false, "Print version and exit.")
	)
	pflag.Parse()

	if *showVersion {
		sstv.PrintVersion(true)
		return
	}

	if *inputFile == "" {
		pflag.Usage()
		os.Exit(1)
	}

	var config, configErr = sstv.LoadConfig(*configFile)
	if configErr != nil {
		log.Warn("Ignoring configuration", "err", configErr)
	}

	if *modeName == "" {
		*modeName = config.EncodeMode
	}
	var mode, modeErr = sstv.ParseMode(*modeName)
	if modeErr != nil {
		log.Fatal("Bad mode", "err", modeErr)
	}

	log.Info("Reading image...", "path", *inputFile)
	var raster, err = sstv.ReadPNG(*inputFile)
	if err != nil {
		log.Fatal("Can't read image", "err", err)
	}

	log.Info("Encoding...", "mode", mode, "width", raster.Width, "height", raster.Height)
	pcm, err := sstv.EncodeImage(raster, mode)
	if err != nil {
		if !errors.Is(err, sstv.ErrUnsupportedMode) {
			log.Fatal("Encode failed", "err", err)
		}
		log.Warn("No scan modulator for this mode, emitting header only", "mode", mode)
	}

	if err := sstv.WriteWAV(*outputFile, pcm, sstv.SampleRate); err != nil {
		log.Fatal("Can't write audio", "err", err)
	}

	log.Info("Done!", "path", *outputFile, "seconds", float64(len(pcm))/float64(sstv.SampleRate))
}
