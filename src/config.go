package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Tool configuration.
 *
 * Description:	The command line tools read an optional sstv.yaml for
 *		their defaults; flags override it.  A missing file is
 *		not an error, the built in defaults apply.
 *
 *		Example:
 *
 *			decode_mode: "Martin M1"
 *			encode_mode: "Martin M2"
 *			passband:
 *			  low: 900
 *			  high: 2500
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Passband struct {
	Low  float32 `yaml:"low"`
	High float32 `yaml:"high"`
}

type Config struct {
	DecodeMode  string   `yaml:"decode_mode"`
	EncodeMode  string   `yaml:"encode_mode"`
	Passband    Passband `yaml:"passband"`
	PDSingleRow bool     `yaml:"pd_single_row"`
}

func DefaultConfig() *Config {
	return &Config{
		DecodeMode: ModeRaw.String(),
		EncodeMode: ModeMartinM1.String(),
		Passband:   Passband{Low: DefaultLowCut, High: DefaultHighCut},
	}
}

// Searched when no explicit path is given.
var configLocations = []string{
	"sstv.yaml", // Current working directory
	"~/.config/sstv/sstv.yaml",
}

// LoadConfig reads the configuration from path, or from the first
// file found in the usual locations when path is empty.  No file at
// all just means defaults.
func LoadConfig(path string) (*Config, error) {

	var config = DefaultConfig()

	var fp *os.File
	if path != "" {
		var err error
		fp, err = os.Open(path)
		if err != nil {
			return config, err
		}
	} else {
		for _, location := range configLocations {
			if home, err := os.UserHomeDir(); err == nil && len(location) > 1 && location[0] == '~' {
				location = filepath.Join(home, location[2:])
			}

			var err error
			fp, err = os.Open(location)
			if err == nil {
				break
			}
			fp = nil
		}
	}

	if fp == nil {
		return config, nil
	}
	defer fp.Close()

	if err := yaml.NewDecoder(fp).Decode(config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", fp.Name(), err)
	}

	if config.Passband.Low <= 0 {
		config.Passband.Low = DefaultLowCut
	}
	if config.Passband.High <= 0 {
		config.Passband.High = DefaultHighCut
	}

	return config, nil
}
