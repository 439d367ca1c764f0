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

package overlay

// MemVRAM is an in-memory implementation of the VRAM interface. Useful for
// testing and for hosts without a real overlay plane.
type MemVRAM struct {
	glyph []uint8
	attr  []uint8
}

// NewMemVRAM creates VRAM with capacity for the given number of cells.
func NewMemVRAM(cells int) *MemVRAM {
	return &MemVRAM{
		glyph: make([]uint8, cells),
		attr:  make([]uint8, cells),
	}
}

// Read implements the VRAM interface. Reads outside the allocated cell
// range return a blank cell.
func (v *MemVRAM) Read(addr uint16) (uint8, uint8) {
	if int(addr) >= len(v.glyph) {
		return 0, AttrTransparent
	}
	return v.glyph[addr], v.attr[addr]
}

// Poke sets a single cell.
func (v *MemVRAM) Poke(addr uint16, glyph uint8, attr uint8) {
	if int(addr) >= len(v.glyph) {
		return
	}
	v.glyph[addr] = glyph
	v.attr[addr] = attr
}

// WriteString writes consecutive cells starting at addr, one cell per byte
// of s, all with the same attribute.
func (v *MemVRAM) WriteString(addr uint16, s string, attr uint8) {
	for i := 0; i < len(s); i++ {
		v.Poke(addr+uint16(i), s[i], attr)
	}
}
