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

import (
	"testing"

	"github.com/polyphase/pixelport/test"
)

func TestPixelIndex(t *testing.T) {
	const w, h = 4, 3
	const buflen = w * h * pixelDepth

	test.Equate(t, pixelIndex(0, 0, w, buflen), 0)
	test.Equate(t, pixelIndex(1, 0, w, buflen), pixelDepth)

	// the bottom-right pixel occupies the last pixelDepth bytes of the
	// buffer and must be addressable
	test.Equate(t, pixelIndex(w-1, h-1, w, buflen), buflen-pixelDepth)

	// out of range positions are rejected, never wrapped or clamped
	test.Equate(t, pixelIndex(w, 0, w, buflen), -1)
	test.Equate(t, pixelIndex(0, h, w, buflen), -1)
	test.Equate(t, pixelIndex(-1, 0, w, buflen), -1)
	test.Equate(t, pixelIndex(0, -1, w, buflen), -1)
}
