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

// Package raster generates the output raster timing for a video mode. Two
// free-running counters cycle through the full horizontal and vertical
// periods of the mode; everything else - the sync pulses, the display enable
// flag, the current position - is a pure function of those counters. One
// counter advance per output clock tick, no position skipped or repeated.
package raster

import (
	"fmt"

	"github.com/polyphase/pixelport/hardware/vidmode"
)

// State is the timing generator's output for the current tick.
type State struct {
	Column        int
	Row           int
	HSync         bool
	VSync         bool
	DisplayEnable bool
}

func (s State) String() string {
	return fmt.Sprintf("col=%d row=%d de=%v", s.Column, s.Row, s.DisplayEnable)
}

// Timing is the generator itself. Create with NewTiming().
type Timing struct {
	mode vidmode.Mode

	// counters cycling 0..HTotal-1 and 0..VTotal-1
	hct int
	vct int

	frame int
}

// NewTiming creates a timing generator for the mode. The mode is validated
// before use.
func NewTiming(mode vidmode.Mode) (*Timing, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	return &Timing{mode: mode}, nil
}

// Mode currently driving the generator.
func (tim *Timing) Mode() vidmode.Mode {
	return tim.mode
}

// Reset both counters to zero. The reset is total and immediate; there is no
// partial recovery.
func (tim *Timing) Reset() {
	tim.hct = 0
	tim.vct = 0
	tim.frame = 0
}

// Frame number since reset.
func (tim *Timing) Frame() int {
	return tim.frame
}

// Advance the generator by one output clock tick. Returns true for newline
// when the horizontal counter has wrapped and true for newframe when the
// vertical counter has wrapped too.
func (tim *Timing) Advance() (newline bool, newframe bool) {
	tim.hct++
	if tim.hct < tim.mode.HTotal() {
		return false, false
	}

	tim.hct = 0
	tim.vct++
	if tim.vct < tim.mode.VTotal() {
		return true, false
	}

	tim.vct = 0
	tim.frame++
	return true, true
}

// State of the raster for the current tick. Recomputed from the counters on
// every call so that it can never go stale.
func (tim *Timing) State() State {
	m := tim.mode

	hsync := tim.hct >= m.HPixels+m.HFrontPorch && tim.hct < m.HPixels+m.HFrontPorch+m.HSyncPulse
	vsync := tim.vct >= m.VPixels+m.VFrontPorch && tim.vct < m.VPixels+m.VFrontPorch+m.VSyncPulse

	// a negative polarity inverts the pulse on the wire
	if m.HSyncNegative {
		hsync = !hsync
	}
	if m.VSyncNegative {
		vsync = !vsync
	}

	return State{
		Column:        tim.hct,
		Row:           tim.vct,
		HSync:         hsync,
		VSync:         vsync,
		DisplayEnable: tim.hct < m.HPixels && tim.vct < m.VPixels,
	}
}

// Coords of the raster for the current tick.
func (tim *Timing) Coords() Coords {
	return Coords{Frame: tim.frame, Row: tim.vct, Column: tim.hct}
}

// InVBlank returns true when the raster is inside the vertical blanking
// period. The quiescent window in which mode and window reconfiguration is
// permitted.
func (tim *Timing) InVBlank() bool {
	return tim.vct >= tim.mode.VPixels
}
