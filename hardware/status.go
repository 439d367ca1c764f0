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
	"fmt"

	"github.com/polyphase/pixelport/hardware/crossdomain"
)

// Status is the diagnostic snapshot exported by the pipeline. Updated at
// most once per output frame.
type Status struct {
	Frame int

	// native image size as detected from the core's display enable
	NativeW int
	NativeH int

	// composited output size, the extent of the scaling window
	OutputW int
	OutputH int

	// output lines that fell back to border colour because of sustained
	// memory channel stall, since the pipeline was created
	DegradedLines int
}

func (s Status) String() string {
	return fmt.Sprintf("frame %d: native %dx%d output %dx%d (%d degraded)",
		s.Frame, s.NativeW, s.NativeH, s.OutputW, s.OutputH, s.DegradedLines)
}

// statusWords carries the status snapshot across to whichever domain the
// host reads it from. each word is captured atomically; the snapshot as a
// whole is coherent because it is posted and latched only between frames.
type statusWords struct {
	native   crossdomain.WordSync
	output   crossdomain.WordSync
	frame    crossdomain.WordSync
	degraded crossdomain.WordSync
}

func (sw *statusWords) post(s Status) {
	sw.native.Post(uint32(s.NativeW)<<16 | uint32(s.NativeH)&0xffff)
	sw.output.Post(uint32(s.OutputW)<<16 | uint32(s.OutputH)&0xffff)
	sw.frame.Post(uint32(s.Frame))
	sw.degraded.Post(uint32(s.DegradedLines))
}

func (sw *statusWords) latch() Status {
	sw.native.Latch()
	sw.output.Latch()
	sw.frame.Latch()
	sw.degraded.Latch()

	n := sw.native.Value()
	o := sw.output.Value()
	return Status{
		Frame:         int(sw.frame.Value()),
		NativeW:       int(n >> 16),
		NativeH:       int(n & 0xffff),
		OutputW:       int(o >> 16),
		OutputH:       int(o & 0xffff),
		DegradedLines: int(sw.degraded.Value()),
	}
}
