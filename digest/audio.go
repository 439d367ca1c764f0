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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/polyphase/pixelport/hardware/acr"
	"github.com/polyphase/pixelport/hardware/signal"
)

// the first few bytes of the buffer hold the previous block's digest value
const audioBufferStart = sha1.Size

// four bytes per stereo sample
const audioBufferLength = audioBufferStart + 4096*4

// Audio is an AudioMixer implementation that fingerprints the gated sample
// stream. Blocks are hashed with the hash of the block before them.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]byte, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// SetAudio implements the AudioMixer interface.
func (dig *Audio) SetAudio(sample signal.AudioSample) error {
	dig.buffer[dig.bufferCt] = byte(sample.Left >> 8)
	dig.buffer[dig.bufferCt+1] = byte(sample.Left)
	dig.buffer[dig.bufferCt+2] = byte(sample.Right >> 8)
	dig.buffer[dig.bufferCt+3] = byte(sample.Right)
	dig.bufferCt += 4

	if dig.bufferCt >= len(dig.buffer) {
		dig.flush()
	}
	return nil
}

// SetClockRegen implements the AudioMixer interface. Regeneration packets
// are constant between mode changes and are not part of the fingerprint.
func (dig *Audio) SetClockRegen(packet acr.Packet) error {
	return nil
}

// EndMixing implements the AudioMixer interface. Any partial block is folded
// into the digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
