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

package sdlout

// number of bytes per pixel (indicating PIXELFORMAT)
const pixelDepth = 4

// pixelIndex is the byte offset of an output pixel in the framebuffer, or
// -1 when the position falls outside of it. the last pixel of the frame
// starts exactly pixelDepth bytes before the end of the buffer.
func pixelIndex(col int, row int, width int, buflen int) int {
	if col < 0 || col >= width || row < 0 {
		return -1
	}
	i := (row*width + col) * pixelDepth
	if i+pixelDepth > buflen {
		return -1
	}
	return i
}
