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

// Package sdram is the external memory channel used by the scaler to stage
// image lines that exceed on-chip buffering. The channel is burst oriented:
// a request names an address and a run of words; the channel may assert
// wait-request for any number of ticks before the transfer completes.
//
// Transfers never fail and never lose data. The only cost of a busy channel
// is time, which the requester must account for against its own budget.
//
// The scaler is the sole owner of the channel. The write side (core pixel
// ingest) and the read side (output resampling) are both mediated by the
// scaler; no other component may issue requests.
package sdram

import (
	"fmt"
	"sync"

	"github.com/polyphase/pixelport/curated"
)

// Channel is the request/acknowledge contract offered by the external
// memory. One word holds one pixel sample; the byte-enable mask selects
// which lanes of each word a write may touch.
//
// The int return value is the number of ticks the channel asserted
// wait-request before the burst completed. Callers with a real-time budget
// must treat the value as time spent.
//
// Words is the capacity of the address space. Requests wrap modulo
// capacity, so the requester must not lay out data beyond it.
type Channel interface {
	WriteBurst(addr uint32, data []uint32, byteEnable uint8) int
	ReadBurst(addr uint32, data []uint32) int
	Words() int
}

// Model is a behavioural model of the external memory channel, suitable for
// driving the scaler in tests and in headless operation. Burst latency is
// configurable and additional wait states can be injected per-request.
type Model struct {
	crit  sync.Mutex
	words []uint32

	// wait-request ticks charged for every burst request
	burstLatency int

	// test hook: additional wait states for a request starting at addr.
	// may be nil
	WaitInject func(addr uint32) int

	// transfer statistics
	readBursts  uint64
	writeBursts uint64
	waitTicks   uint64
}

// NewModel creates a memory model with the given address width. The 19 bit
// minimum of the channel contract is enforced.
func NewModel(addrBits int, burstLatency int) (*Model, error) {
	if addrBits < 19 {
		return nil, curated.Errorf("sdram: address width must be at least 19 bits (%d)", addrBits)
	}
	if burstLatency < 0 {
		return nil, curated.Errorf("sdram: negative burst latency")
	}
	return &Model{
		words:        make([]uint32, 1<<addrBits),
		burstLatency: burstLatency,
	}, nil
}

// Words implements the Channel interface.
func (mem *Model) Words() int {
	return len(mem.words)
}

func (mem *Model) String() string {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return fmt.Sprintf("sdram: %d read bursts, %d write bursts, %d wait ticks",
		mem.readBursts, mem.writeBursts, mem.waitTicks)
}

// WriteBurst implements the Channel interface.
func (mem *Model) WriteBurst(addr uint32, data []uint32, byteEnable uint8) int {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	// lane mask from the byte enable bits
	var mask uint32
	for i := 0; i < 4; i++ {
		if byteEnable&(1<<i) != 0 {
			mask |= 0xff << (i * 8)
		}
	}

	for i, d := range data {
		a := (addr + uint32(i)) % uint32(len(mem.words))
		mem.words[a] = (mem.words[a] &^ mask) | (d & mask)
	}

	mem.writeBursts++
	return mem.wait(addr)
}

// ReadBurst implements the Channel interface. The data slice is filled in
// its entirety.
func (mem *Model) ReadBurst(addr uint32, data []uint32) int {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	for i := range data {
		data[i] = mem.words[(addr+uint32(i))%uint32(len(mem.words))]
	}

	mem.readBursts++
	return mem.wait(addr)
}

func (mem *Model) wait(addr uint32) int {
	w := mem.burstLatency
	if mem.WaitInject != nil {
		w += mem.WaitInject(addr)
	}
	mem.waitTicks += uint64(w)
	return w
}
