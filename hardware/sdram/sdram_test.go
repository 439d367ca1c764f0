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

package sdram_test

import (
	"testing"

	"github.com/polyphase/pixelport/hardware/sdram"
	"github.com/polyphase/pixelport/test"
)

func TestBurstRoundTrip(t *testing.T) {
	mem, err := sdram.NewModel(19, 0)
	test.ExpectSuccess(t, err)

	src := []uint32{0x00112233, 0x00445566, 0x00778899}
	mem.WriteBurst(100, src, 0x0f)

	dst := make([]uint32, 3)
	mem.ReadBurst(100, dst)
	for i := range src {
		test.Equate(t, dst[i], src[i])
	}
}

func TestByteEnable(t *testing.T) {
	mem, err := sdram.NewModel(19, 0)
	test.ExpectSuccess(t, err)

	mem.WriteBurst(0, []uint32{0x00aabbcc}, 0x0f)

	// write with only lane 0 enabled. the other lanes must be untouched
	mem.WriteBurst(0, []uint32{0x00ffffff}, 0x01)

	dst := make([]uint32, 1)
	mem.ReadBurst(0, dst)
	test.Equate(t, dst[0], uint32(0x00aabbff))
}

func TestWaitRequest(t *testing.T) {
	mem, err := sdram.NewModel(19, 2)
	test.ExpectSuccess(t, err)

	wait := mem.WriteBurst(0, []uint32{1, 2, 3}, 0x0f)
	test.Equate(t, wait, 2)

	mem.WaitInject = func(addr uint32) int { return 5 }
	wait = mem.ReadBurst(0, make([]uint32, 3))
	test.Equate(t, wait, 7)

	// the data arrives regardless of how long the channel stalled
	dst := make([]uint32, 3)
	mem.ReadBurst(0, dst)
	test.Equate(t, dst[2], uint32(3))
}

func TestAddressWidth(t *testing.T) {
	_, err := sdram.NewModel(16, 0)
	test.ExpectFailure(t, err)

	mem, err := sdram.NewModel(19, 0)
	test.ExpectSuccess(t, err)
	test.Equate(t, mem.Words(), 1<<19)
}
