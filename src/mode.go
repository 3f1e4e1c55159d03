package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	SSTV mode table.
 *
 * Description:	Every supported line format with its pixel layout,
 *		line budget and timing.  A mode is chosen by the user
 *		and stays fixed for the whole of one decode or encode;
 *		there is no automatic detection from the VIS header.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"strings"
)

type Mode int

const (
	ModeRaw Mode = iota // Single luminance channel, no color.
	ModeMartinM1
	ModeMartinM2
	ModePD120
	ModePD180
)

// Transmission timing shared by every mode.  Tolerances and tone
// frequencies were measured against real recordings; don't tighten
// them without re-measuring.
const (
	SampleRate = 44100 // Hz, synthesizer output rate

	leaderFreq = 1900.0 // Hz
	syncFreq   = 1200.0 // Hz
	porchFreq  = 1500.0 // Hz
	blackFreq  = 1500.0 // Hz, luminance 0
	whiteFreq  = 2300.0 // Hz, luminance 255

	visOneFreq  = 1300.0 // Hz
	visZeroFreq = 1100.0 // Hz

	leaderSeconds    = 0.300
	breakSeconds     = 0.010
	visBreakSeconds  = 0.030
	visBitSeconds    = 0.030
	syncSeconds      = 4.862e-3
	porchSeconds     = 0.572e-3
	separatorSeconds = 0.572e-3

	leaderTolerance = 5.0   // Hz, leader detect in Ready
	syncTolerance   = 20.0  // Hz, sync detect in SyncWait
	popTolerance    = 300.0 // Hz, leaving SyncStart
	blankSamples    = 50    // burned after each sync to skip its tail
)

type modeInfo struct {
	name        string
	width       int     // logical pixels per scanline
	maxLines    int     // logical raster height
	channels    int     // luminance values per scanline
	vis         uint8   // VIS identifier, 0 where unassigned here
	lineSeconds float64 // scan time of one color channel per line, Martin only
	pd          bool    // PD family: Y1/Cr/Cb/Y2 layout
}

var modeTable = map[Mode]modeInfo{
	ModeRaw:      {name: "Raw / BW", width: 640, maxLines: 256, channels: 1},
	ModeMartinM1: {name: "Martin M1", width: 320, maxLines: 256, channels: 3, vis: 44, lineSeconds: 146.432e-3},
	ModeMartinM2: {name: "Martin M2", width: 320, maxLines: 256, channels: 3, vis: 40, lineSeconds: 73.216e-3},
	ModePD120:    {name: "PD 120", width: 640, maxLines: 496, channels: 4, pd: true},
	ModePD180:    {name: "PD 180", width: 640, maxLines: 496, channels: 4, pd: true},
}

func (m Mode) info() modeInfo {
	return modeTable[m]
}

func (m Mode) String() string {
	var info, ok = modeTable[m]
	if !ok {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return info.name
}

// Width returns the logical image width in pixels.
func (m Mode) Width() int {
	return m.info().width
}

// MaxLines returns the logical raster height.
func (m Mode) MaxLines() int {
	return m.info().maxLines
}

// Channels returns the number of luminance values per scanline.
func (m Mode) Channels() int {
	return m.info().channels
}

// VIS returns the 7 bit VIS identifier used in the header.
func (m Mode) VIS() uint8 {
	return m.info().vis
}

// RawRowLen returns the minimum number of samples a captured row must
// hold to be accepted at a sync pulse: logical width times channels.
func (m Mode) RawRowLen() int {
	var info = m.info()
	return info.width * info.channels
}

// PixelSeconds returns the tone duration for one pixel of one channel
// on encode.  Zero for modes without a scan encoder.
func (m Mode) PixelSeconds() float64 {
	var info = m.info()
	if info.lineSeconds == 0 {
		return 0
	}
	return info.lineSeconds / float64(info.width)
}

// ParseMode maps user facing mode names to a Mode.  It accepts the
// display name ("Martin M1"), the compact form ("martin1", "m1",
// "pd120") and "raw"/"bw".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "raw", "bw", "raw/bw":
		return ModeRaw, nil
	case "martinm1", "martin1", "m1":
		return ModeMartinM1, nil
	case "martinm2", "martin2", "m2":
		return ModeMartinM2, nil
	case "pd120":
		return ModePD120, nil
	case "pd180":
		return ModePD180, nil
	}
	return ModeRaw, fmt.Errorf("unknown SSTV mode %q", s)
}

// Modes lists every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeRaw, ModeMartinM1, ModeMartinM2, ModePD120, ModePD180}
}
