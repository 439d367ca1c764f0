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

// Package crossdomain moves values between the pipeline's clock domains. The
// core image domain, the audio sample domain and the output raster domain
// run on unrelated clocks; a value produced in one domain must never be
// consumed raw by another.
//
// Three disciplines are provided, mirroring the three kinds of traffic:
//
// BitSync carries narrow control and status flags. The destination domain
// samples the value twice in series before it is considered stable, so a
// change is observed after exactly two destination ticks. The producer never
// waits.
//
// WordSync carries wide informational values (eg. the detected native image
// size). The producer posts whole words; the consumer latches a snapshot at
// a time of its choosing, no more than once per frame.
//
// Queue carries pixel-rate and sample-rate data. It is a bounded buffer that
// never blocks the producer; a full queue counts overruns instead, which the
// consumer can inspect. Order is always preserved.
package crossdomain

import (
	"sync/atomic"
)

// BitSync is a two-register synchroniser for a single-bit control signal.
// Set() is called by the producing domain; Tick() and Value() by the
// consuming domain. The zero value is usable, holding false.
type BitSync struct {
	input atomic.Bool

	// the two sampling registers, owned by the consuming domain
	stage1 bool
	stage2 bool
}

// Set the value in the producing domain. Never blocks.
func (b *BitSync) Set(v bool) {
	b.input.Store(v)
}

// Tick advances the sampling registers by one consuming-domain tick.
func (b *BitSync) Tick() {
	b.stage2 = b.stage1
	b.stage1 = b.input.Load()
}

// Value as observed by the consuming domain.
func (b *BitSync) Value() bool {
	return b.stage2
}

// WordSync is a snapshot-and-hold synchroniser for a multi-bit word. The
// producing domain posts updates at any rate; the consuming domain latches
// a stable snapshot at most once per frame.
type WordSync struct {
	pending atomic.Uint32
	held    uint32
}

// Post a new value from the producing domain. Never blocks.
func (w *WordSync) Post(v uint32) {
	w.pending.Store(v)
}

// Latch the most recently posted value. Call from the consuming domain, no
// more than once per frame.
func (w *WordSync) Latch() {
	w.held = w.pending.Load()
}

// Value returns the word captured by the last Latch().
func (w *WordSync) Value() uint32 {
	return w.held
}
