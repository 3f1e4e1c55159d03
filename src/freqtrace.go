package sstv

/*------------------------------------------------------------------
 *
 * Purpose:   	Save and reload demodulated frequency traces.
 *
 * Description:	The Hilbert pass dominates decode time.  Dumping the
 *		frequency sequence after it lets a different mode be
 *		tried on the same recording without redoing the
 *		transform.  Flat little endian float32 with a short
 *		magic header.
 *
 *---------------------------------------------------------------*/

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var freqTraceMagic = [4]byte{'7', '3', 'F', 'Q'}

// WriteFrequencyTrace dumps a demodulated frequency sequence to path.
func WriteFrequencyTrace(path string, freqs []float32) error {

	var fp, err = os.Create(path)
	if err != nil {
		return err
	}

	var w = bufio.NewWriter(fp)

	if _, err := w.Write(freqTraceMagic[:]); err != nil {
		fp.Close()
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(freqs))); err != nil {
		fp.Close()
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, freqs); err != nil {
		fp.Close()
		return err
	}

	if err := w.Flush(); err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}

// ReadFrequencyTrace loads a trace written by WriteFrequencyTrace.
func ReadFrequencyTrace(path string) ([]float32, error) {

	var fp, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var r = bufio.NewReader(fp)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if magic != freqTraceMagic {
		return nil, fmt.Errorf("%s is not a frequency trace", path)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var freqs = make([]float32, count)
	if err := binary.Read(r, binary.LittleEndian, freqs); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return freqs, nil
}
