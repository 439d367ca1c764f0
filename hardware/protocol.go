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

package hardware

import (
	"github.com/polyphase/pixelport/hardware/acr"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
)

// PixelRenderer implementations display, or otherwise work with, the
// composited pixel stream. For example digest.Video.
//
// The symbol encoder of the real transport is any PixelRenderer plus any
// AudioMixer; the pipeline's obligation ends at driving these interfaces.
type PixelRenderer interface {
	// Resize is called when the selected video mode changes, before any
	// pixels for the new mode are sent
	Resize(mode vidmode.Mode) error

	// NewFrame and NewScanline are called at the start of the frame/scanline
	NewFrame(frameNum int) error
	NewScanline(row int) error

	// SetPixel is called for every output tick, including ticks in the
	// blanking periods. Renderers producing a visible image should ignore
	// pixels where displayEnable is false
	SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error

	// the PixelRenderer should be considered unusable after EndRendering()
	// has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is a
// subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// AudioMixer implementations work with the gated sample stream; most
// probably playing or storing it. Samples arrive only on the regenerator's
// enable pulse and are never altered by the pipeline.
type AudioMixer interface {
	SetAudio(sample signal.AudioSample) error

	// SetClockRegen is called on every regeneration strobe with the current
	// packet values
	SetClockRegen(packet acr.Packet) error

	// the AudioMixer should be considered unusable after EndMixing() has
	// been called
	EndMixing() error
}

// CoreSource implementations supply the native image produced by the
// attached core. Addressing is linear over (row, column) in the core's
// native resolution.
type CoreSource interface {
	// native resolution of the produced image
	Size() (w int, h int)

	// the sample at the addressed position. the DisplayEnable flag is false
	// outside the image
	Pixel(x int, y int) signal.CorePixel
}

// AudioSource implementations supply the core's audio stream, already in the
// target sample rate's domain.
type AudioSource interface {
	Sample() signal.AudioSample
}
