// This file is part of Pixelport.
//
// Pixelport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pixelport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pixelport.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the gated audio stream to disk as a
// WAV file. Note that audio data is buffered in memory in its entirety, and
// written to disk on EndMixing(). It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/acr"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/logger"
)

// WavWriter implements the AudioMixer interface.
type WavWriter struct {
	filename   string
	sampleRate int

	// interleaved left/right samples
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: bad sample rate %d", sampleRate)
	}

	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate*2),
	}, nil
}

// SetAudio implements the AudioMixer interface.
func (aw *WavWriter) SetAudio(sample signal.AudioSample) error {
	aw.buffer = append(aw.buffer, int(sample.Left), int(sample.Right))
	return nil
}

// SetClockRegen implements the AudioMixer interface. The WAV container
// carries the sample rate directly so the packet is not needed.
func (aw *WavWriter) SetClockRegen(packet acr.Packet) error {
	return nil
}

// EndMixing implements the AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 16, 2, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(aw.buffer)/2, aw.filename)
	return nil
}
