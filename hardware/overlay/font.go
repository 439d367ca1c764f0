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

// BlockFont returns a placeholder font. Glyph zero and the space character
// are empty; every other glyph is a bordered block. Hosts with a real
// character ROM should pass their own font to NewCompositor().
func BlockFont() []byte {
	font := make([]byte, FontSize)
	for g := 1; g < GlyphCount; g++ {
		if g == ' ' {
			continue
		}
		for r := 0; r < CellSize; r++ {
			b := byte(0b01000010)
			if r == 0 || r == CellSize-1 {
				b = 0b01111110
			}
			font[g*CellSize+r] = b
		}
	}
	return font
}
