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

// Package vidmode is the catalogue of output timings supported by the
// pipeline. Each Mode is a declarative description of one output raster:
// display extents, porch widths, sync pulse widths and polarities, and the
// pixel clock that drives it all.
//
// The catalogue is pure data. Behaviour driven by a Mode lives in the raster
// package.
package vidmode

import (
	"fmt"

	"github.com/polyphase/pixelport/curated"
)

// AspectRatio is the advisory picture aspect tag carried by a Mode.
type AspectRatio int

// List of valid AspectRatio values.
const (
	Aspect4x3 AspectRatio = iota
	Aspect16x9
)

func (a AspectRatio) String() string {
	if a == Aspect16x9 {
		return "16:9"
	}
	return "4:3"
}

// Mode is an immutable description of one output timing. Fields follow the
// CEA-861 convention: the display period comes first on each axis, followed
// by front porch, sync pulse and back porch.
type Mode struct {
	// protocol identification code (CEA VIC)
	VIC int

	Name string

	HPixels     int
	HFrontPorch int
	HSyncPulse  int
	HBackPorch  int

	VPixels     int
	VFrontPorch int
	VSyncPulse  int
	VBackPorch  int

	// a negative polarity means the sync pulse is asserted low
	HSyncNegative bool
	VSyncNegative bool

	PixelClockKHz int

	Aspect AspectRatio

	// number of times each pixel is repeated on the wire. 1 for most modes;
	// 2 for the doubled standard-definition modes
	PixelRepetition int
}

// HTotal is the full horizontal period: display plus porches plus pulse.
func (m Mode) HTotal() int {
	return m.HPixels + m.HFrontPorch + m.HSyncPulse + m.HBackPorch
}

// VTotal is the full vertical period: display plus porches plus pulse.
func (m Mode) VTotal() int {
	return m.VPixels + m.VFrontPorch + m.VSyncPulse + m.VBackPorch
}

// RefreshRate of the mode in Hz.
func (m Mode) RefreshRate() float32 {
	return float32(m.PixelClockKHz) * 1000 / float32(m.HTotal()*m.VTotal())
}

func (m Mode) String() string {
	return fmt.Sprintf("%s (VIC %d) %dkHz %s", m.Name, m.VIC, m.PixelClockKHz, m.Aspect)
}

// Validate checks the static invariants of the Mode. An invalid Mode must be
// rejected before it is used to drive the raster.
func (m Mode) Validate() error {
	if m.HPixels <= 0 || m.VPixels <= 0 {
		return curated.Errorf("vidmode: %s: display extent must be positive", m.Name)
	}
	if m.HFrontPorch < 0 || m.HSyncPulse < 0 || m.HBackPorch < 0 ||
		m.VFrontPorch < 0 || m.VSyncPulse < 0 || m.VBackPorch < 0 {
		return curated.Errorf("vidmode: %s: negative porch or pulse width", m.Name)
	}
	if m.PixelClockKHz <= 0 {
		return curated.Errorf("vidmode: %s: pixel clock must be positive", m.Name)
	}
	if m.PixelRepetition < 1 {
		return curated.Errorf("vidmode: %s: pixel repetition must be at least 1", m.Name)
	}
	return nil
}
