// This file is part of n64cic.
//
// n64cic is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cic is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cic.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter writes the bus activity recorded by a wire.Monitor to disk
// as a two channel WAV file. The left channel is the clock line and the right
// channel is the data line. The file can be inspected with any audio editor,
// which makes for a serviceable logic analyser.
//
// Levels are buffered in memory in their entirity and written to disk when
// Write() is called.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/ecpkart64/n64cic/hardware/cic/wire"
	"github.com/ecpkart64/n64cic/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// format of the WAV file.
const (
	SampleRate = 48000
	BitDepth   = 16
	NumChans   = 2

	// PCM format in the WAV header
	pcmFormat = 1
)

// SamplesPerLevel is the number of samples used for every level. It gives the
// edges in the file some width.
const SamplesPerLevel = 8

// sample values for the high and low levels.
const (
	High = 0x3fff
	Low  = -0x3fff
)

// WavWriter accumulates bus levels for writing to a WAV file.
type WavWriter struct {
	filename string
	buffer   []wire.Level
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wire.Level, 0),
	}

	return aw, nil
}

// Add levels to the end of the buffer.
func (aw *WavWriter) Add(levels []wire.Level) {
	aw.buffer = append(aw.buffer, levels...)
}

// Len returns the number of buffered levels.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

func level(b bool) int {
	if b {
		return High
	}
	return Low
}

// Write the buffered levels to disk.
func (aw *WavWriter) Write() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChans,
			SampleRate:  SampleRate,
		},
		SourceBitDepth: BitDepth,
		Data:           make([]int, 0, len(aw.buffer)*SamplesPerLevel*NumChans),
	}

	for _, l := range aw.buffer {
		clk := level(l.Clock)
		data := level(l.Data)
		for i := 0; i < SamplesPerLevel; i++ {
			buf.Data = append(buf.Data, clk, data)
		}
	}

	enc := wav.NewEncoder(f, SampleRate, BitDepth, NumChans, pcmFormat)

	logger.Logf(logger.Allow, "wavwriter", "writing %d levels to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	// the header is only complete once the encoder has been closed
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
