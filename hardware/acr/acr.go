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

// Package acr regenerates the audio clock cadence for the downstream
// audio/video multiplexer. The audio and video clocks are unrelated; the
// multiplexer reconstructs the audio sample clock from the video pixel clock
// using the two integers in the clock regeneration packet:
//
//	sample rate = pixel clock * N / (128 * CTS)
//
// The regenerator runs entirely in the audio clock domain. It produces the
// sample enable pulse at the target sample rate, the lower frequency packet
// strobe, and the packet values themselves. It never touches audio sample
// data.
package acr

import (
	"fmt"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/logger"
)

// Packet carries the two clock regeneration integers. Both values are fixed
// for a given video mode and sample rate.
type Packet struct {
	N   uint32
	CTS uint32
}

func (p Packet) String() string {
	return fmt.Sprintf("N=%d CTS=%d", p.N, p.CTS)
}

// RateGen produces an enable pulse at an arbitrary destination rate from a
// source clock. The rates need not be related by a power-of-two, or indeed
// any integer, ratio. Over any long run of source ticks the number of pulses
// converges on ticks*dst/src.
type RateGen struct {
	src int
	dst int
	acc int
}

// NewRateGen creates an enable generator producing dstHz pulses from a
// srcHz clock.
func NewRateGen(srcHz int, dstHz int) (*RateGen, error) {
	if srcHz <= 0 || dstHz <= 0 {
		return nil, curated.Errorf("acr: rates must be positive (%d/%d)", srcHz, dstHz)
	}
	if dstHz > srcHz {
		return nil, curated.Errorf("acr: destination rate %d exceeds source clock %d", dstHz, srcHz)
	}
	return &RateGen{src: srcHz, dst: dstHz}, nil
}

// Tick the generator by one source clock. Returns true when an enable pulse
// is due.
func (g *RateGen) Tick() bool {
	g.acc += g.dst
	if g.acc >= g.src {
		g.acc -= g.src
		return true
	}
	return false
}

// Reset the accumulator.
func (g *RateGen) Reset() {
	g.acc = 0
}

// number of sample pulses between packet strobes. the strobe frequency is a
// fixed sub-multiple, one thousandth, of the sample rate
const strobeDivider = 1000

// Regenerator is the audio clock regeneration unit. Create with
// NewRegenerator and drive with Tick() once per audio domain clock.
type Regenerator struct {
	sampleRate int
	rate       *RateGen

	strobeCt     int
	strobePeriod int

	packet Packet
}

// NewRegenerator creates the regeneration unit for the given audio domain
// clock, target sample rate and initial video mode.
func NewRegenerator(audioClockHz int, sampleRateHz int, mode vidmode.Mode) (*Regenerator, error) {
	rate, err := NewRateGen(audioClockHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	if sampleRateHz%strobeDivider != 0 {
		return nil, curated.Errorf("acr: sample rate %d not divisible by %d", sampleRateHz, strobeDivider)
	}

	reg := &Regenerator{
		sampleRate:   sampleRateHz,
		rate:         rate,
		strobePeriod: strobeDivider,
	}
	reg.SetMode(mode)

	return reg, nil
}

// SetMode recomputes the packet values. This is the only event that changes
// them; between mode changes the packet is constant. Must only be called in
// the quiescent window between frames.
func (reg *Regenerator) SetMode(mode vidmode.Mode) {
	reg.packet = Packet{
		N:   uint32(reg.sampleRate * 128 / strobeDivider),
		CTS: uint32(mode.PixelClockKHz),
	}
	logger.Logf("acr", "mode %s: %v", mode.Name, reg.packet)
}

// Packet returns the current clock regeneration values.
func (reg *Regenerator) Packet() Packet {
	return reg.packet
}

// Tick the regenerator by one audio domain clock. The sample flag is the
// enable pulse gating audio samples into the output stream; the strobe flag
// requests the emission of a clock regeneration packet.
func (reg *Regenerator) Tick() (sample bool, strobe bool) {
	if !reg.rate.Tick() {
		return false, false
	}

	reg.strobeCt++
	if reg.strobeCt >= reg.strobePeriod {
		reg.strobeCt = 0
		return true, true
	}
	return true, false
}

// Reset the regenerator counters. The packet values are unaffected; they
// change only with SetMode().
func (reg *Regenerator) Reset() {
	reg.rate.Reset()
	reg.strobeCt = 0
}
