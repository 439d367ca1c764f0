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
	"sync/atomic"
	"time"
)

// limiter paces the live output path to the mode's refresh rate. headless
// paths never call wait() and run unlimited.
type limiter struct {
	active bool

	// the requested number of frames per second
	requested atomic.Value // float32

	// the actual number of frames per second
	actual atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when the frame rate changes
	pulse *time.Ticker

	// measurement
	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

func (lmtr *limiter) init(fps float32) {
	lmtr.active = true
	lmtr.requested.Store(float32(0))
	lmtr.actual.Store(float32(0))
	lmtr.measureTime = time.Now()
	lmtr.pulse = time.NewTicker(time.Millisecond * 10)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.setRate(fps)
}

func (lmtr *limiter) setRate(fps float32) {
	if fps <= 0.0 {
		return
	}
	lmtr.requested.Store(fps)
	rate := float32(1000000.0) / fps
	lmtr.pulse.Reset(time.Duration(rate) * time.Microsecond)
}

// wait until the next frame pulse. also updates the actual frame rate
// measurement.
func (lmtr *limiter) wait() {
	if lmtr.active {
		<-lmtr.pulse.C
	}

	lmtr.measureCt++
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureCt = 0
		lmtr.measureTime = t
	default:
	}
}
