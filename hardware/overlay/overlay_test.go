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

package overlay_test

import (
	"testing"

	"github.com/polyphase/pixelport/hardware/overlay"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/test"
)

// glyph 1 is solid, glyph 2 has only its left column set, glyph 0 is empty
func testFont() []byte {
	font := make([]byte, overlay.FontSize)
	for r := 0; r < overlay.CellSize; r++ {
		font[1*overlay.CellSize+r] = 0xff
		font[2*overlay.CellSize+r] = 0x80
	}
	return font
}

func mode(t *testing.T, vic int) vidmode.Mode {
	t.Helper()
	m, err := vidmode.Lookup(vic)
	test.ExpectSuccess(t, err)
	return m
}

func TestDisabled(t *testing.T) {
	vram := overlay.NewMemVRAM(256)
	vram.Poke(0, 1, 0b00000111)

	com, err := overlay.NewCompositor(vram, testFont(), mode(t, 1), overlay.Config{
		Columns: 4, Rows: 4,
	})
	test.ExpectSuccess(t, err)
	test.Equate(t, com.Enabled(), false)

	_, on := com.Pixel(0, 0)
	test.Equate(t, on, false)

	com.SetEnable(true)
	_, on = com.Pixel(0, 0)
	test.Equate(t, on, true)
}

func TestRectangle(t *testing.T) {
	vram := overlay.NewMemVRAM(256)
	for i := 0; i < 8; i++ {
		vram.Poke(uint16(i), 1, 0b00000010)
	}

	com, err := overlay.NewCompositor(vram, testFont(), mode(t, 1), overlay.Config{
		Enable:  true,
		OriginX: 2, OriginY: 1,
		Columns: 4, Rows: 2,
	})
	test.ExpectSuccess(t, err)

	// rectangle spans pixels [16,48) x [8,24)
	_, on := com.Pixel(15, 8)
	test.Equate(t, on, false)
	_, on = com.Pixel(16, 7)
	test.Equate(t, on, false)
	_, on = com.Pixel(16, 8)
	test.Equate(t, on, true)
	_, on = com.Pixel(47, 23)
	test.Equate(t, on, true)
	_, on = com.Pixel(48, 23)
	test.Equate(t, on, false)
	_, on = com.Pixel(47, 24)
	test.Equate(t, on, false)
}

func TestAttrDecode(t *testing.T) {
	vram := overlay.NewMemVRAM(256)

	// cell 0: solid glyph, blue ink
	vram.Poke(0, 1, 0b00000001)
	// cell 1: left-column glyph, green ink on red paper
	vram.Poke(1, 2, 0b00010100)
	// cell 2: left-column glyph, bright white ink, transparent paper
	vram.Poke(2, 2, overlay.AttrTransparent|overlay.AttrBright|0b111)

	com, err := overlay.NewCompositor(vram, testFont(), mode(t, 1), overlay.Config{
		Enable:  true,
		Columns: 8, Rows: 1,
	})
	test.ExpectSuccess(t, err)

	px, on := com.Pixel(0, 0)
	test.Equate(t, on, true)
	test.Equate(t, px, signal.RGB{B: 0xd7})

	// ink pixel of cell 1
	px, on = com.Pixel(8, 0)
	test.Equate(t, on, true)
	test.Equate(t, px, signal.RGB{G: 0xd7})

	// paper pixel of cell 1
	px, on = com.Pixel(9, 0)
	test.Equate(t, on, true)
	test.Equate(t, px, signal.RGB{R: 0xd7})

	// bright ink pixel of cell 2
	px, on = com.Pixel(16, 0)
	test.Equate(t, on, true)
	test.Equate(t, px, signal.RGB{R: 0xff, G: 0xff, B: 0xff})

	// transparent paper pixel of cell 2
	_, on = com.Pixel(17, 0)
	test.Equate(t, on, false)
}

func TestNoInkTransparent(t *testing.T) {
	vram := overlay.NewMemVRAM(256)

	// empty glyph with transparent paper never draws
	vram.Poke(0, 0, overlay.AttrTransparent|0b111)

	com, err := overlay.NewCompositor(vram, testFont(), mode(t, 1), overlay.Config{
		Enable:  true,
		Columns: 1, Rows: 1,
	})
	test.ExpectSuccess(t, err)

	for row := 0; row < overlay.CellSize; row++ {
		for col := 0; col < overlay.CellSize; col++ {
			_, on := com.Pixel(col, row)
			test.Equate(t, on, false)
		}
	}
}

func TestLegacyShift(t *testing.T) {
	vram := overlay.NewMemVRAM(8192)
	vram.Poke(0, 1, 0b00000111)

	// zero extent selects legacy placement. 720 pixel raster gives a
	// shift of 40
	com, err := overlay.NewCompositor(vram, testFont(), mode(t, 2), overlay.Config{
		Enable: true,
	})
	test.ExpectSuccess(t, err)

	_, on := com.Pixel(39, 0)
	test.Equate(t, on, false)
	_, on = com.Pixel(40, 0)
	test.Equate(t, on, true)
}

func TestRectangleValidation(t *testing.T) {
	vram := overlay.NewMemVRAM(256)
	font := testFont()

	_, err := overlay.NewCompositor(vram, font, mode(t, 1), overlay.Config{
		OriginX: 79, Columns: 2, Rows: 1,
	})
	test.ExpectFailure(t, err)

	_, err = overlay.NewCompositor(vram, font, mode(t, 1), overlay.Config{
		OriginX: -1, Columns: 2, Rows: 1,
	})
	test.ExpectFailure(t, err)

	_, err = overlay.NewCompositor(vram, font[:16], mode(t, 1), overlay.Config{
		Columns: 2, Rows: 1,
	})
	test.ExpectFailure(t, err)
}

func TestWriteString(t *testing.T) {
	vram := overlay.NewMemVRAM(256)
	vram.WriteString(10, "OK", 0b01000111)

	glyph, attr := vram.Read(10)
	test.Equate(t, glyph, uint8('O'))
	test.Equate(t, attr, uint8(0b01000111))

	glyph, _ = vram.Read(11)
	test.Equate(t, glyph, uint8('K'))

	// out of range reads are blank and transparent
	_, attr = vram.Read(300)
	test.Equate(t, attr, uint8(overlay.AttrTransparent))
}
