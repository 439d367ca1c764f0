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

// Package pattern provides synthetic core image and audio sources. They
// stand in for a real core attachment so the pipeline can be exercised from
// the command line and from tests.
package pattern

import (
	"math"

	"github.com/polyphase/pixelport/hardware/signal"
)

// Bars is a core image source producing eight vertical colour bars.
type Bars struct {
	w int
	h int
}

// the bar sequence, brightest first
var barColours = []signal.RGB{
	{R: 0xff, G: 0xff, B: 0xff},
	{R: 0xff, G: 0xff, B: 0x00},
	{R: 0x00, G: 0xff, B: 0xff},
	{R: 0x00, G: 0xff, B: 0x00},
	{R: 0xff, G: 0x00, B: 0xff},
	{R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xff},
	{R: 0x00, G: 0x00, B: 0x00},
}

// NewBars creates a colour bar source at the given native resolution.
func NewBars(w int, h int) *Bars {
	return &Bars{w: w, h: h}
}

// Size implements the core image source interface.
func (b *Bars) Size() (int, int) {
	return b.w, b.h
}

// Pixel implements the core image source interface.
func (b *Bars) Pixel(x int, y int) signal.CorePixel {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return signal.CorePixel{}
	}
	return signal.CorePixel{
		RGB:           barColours[x*len(barColours)/b.w],
		DisplayEnable: true,
	}
}

// Gradient is a core image source producing a two-axis colour ramp. Useful
// for eyeballing interpolation quality.
type Gradient struct {
	w int
	h int
}

// NewGradient creates a gradient source at the given native resolution.
func NewGradient(w int, h int) *Gradient {
	return &Gradient{w: w, h: h}
}

// Size implements the core image source interface.
func (g *Gradient) Size() (int, int) {
	return g.w, g.h
}

// Pixel implements the core image source interface.
func (g *Gradient) Pixel(x int, y int) signal.CorePixel {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return signal.CorePixel{}
	}
	return signal.CorePixel{
		RGB: signal.RGB{
			R: uint8(x * 255 / (g.w - 1)),
			G: uint8(y * 255 / (g.h - 1)),
			B: 0x80,
		},
		DisplayEnable: true,
	}
}

// Sine is an audio source producing a stereo sine tone.
type Sine struct {
	step  float64
	phase float64
	amp   float64
}

// NewSine creates a sine tone source. Amplitude is in int16 sample units.
func NewSine(freqHz int, sampleRateHz int, amplitude int16) *Sine {
	return &Sine{
		step: 2 * math.Pi * float64(freqHz) / float64(sampleRateHz),
		amp:  float64(amplitude),
	}
}

// Sample implements the audio source interface.
func (s *Sine) Sample() signal.AudioSample {
	v := int16(s.amp * math.Sin(s.phase))
	s.phase += s.step
	if s.phase > 2*math.Pi {
		s.phase -= 2 * math.Pi
	}
	return signal.AudioSample{Left: v, Right: v}
}
