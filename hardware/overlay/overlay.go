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

// Package overlay composites the on-screen menu plane over the scaled core
// image. The menu itself lives in external VRAM as (glyph, attribute) byte
// pairs addressed in font-cell units; this package only reads it.
//
// Overlay priority is unconditional: where the overlay produces an opaque
// pixel it wins over the core image. Cells with no visible ink at a raster
// position produce nothing and the core image shows through.
package overlay

import (
	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/logger"
)

// VRAM is the read-only interface to the overlay plane's character and
// attribute storage. The address is in cell units relative to the overlay
// rectangle's origin.
type VRAM interface {
	Read(addr uint16) (glyph uint8, attr uint8)
}

// CellSize is the width and height of a font cell in pixels.
const CellSize = 8

// the width of the overlay's native coordinate space in pixels. modes wider
// than this historically applied a centering shift; see Config.
const nativeSpan = 640

// GlyphCount supported by a font. A font is GlyphCount*CellSize bytes, one
// byte per row, most significant bit leftmost.
const GlyphCount = 256

// FontSize is the required length of a font byte slice.
const FontSize = GlyphCount * CellSize

// Attribute byte layout. Classic character-attribute scheme: 3 bits of ink
// colour, 3 bits of paper colour, a brightness bit and a transparency bit.
// With AttrTransparent set the paper does not draw and the core image shows
// through the cell background.
const (
	AttrInkMask     = 0b00000111
	AttrPaperMask   = 0b00111000
	AttrBright      = 0b01000000
	AttrTransparent = 0b10000000
)

// Config is the overlay configuration word. Origin and extent are in cell
// units of the output raster.
//
// A zero extent selects the deprecated legacy placement: the overlay covers
// the full native coordinate span and is shifted right to centre that span
// when the output raster is wider. New configurations should always supply
// an explicit rectangle, which takes precedence.
type Config struct {
	Enable  bool
	OriginX int
	OriginY int
	Columns int
	Rows    int
}

// Compositor resolves overlay pixels. Create with NewCompositor().
type Compositor struct {
	vram VRAM
	font []byte
	mode vidmode.Mode
	cfg  Config

	// legacy placement state. see Config
	legacy bool
	shift  int
}

// NewCompositor creates an overlay compositor for the mode. The font holds
// GlyphCount glyphs of CellSize rows each.
func NewCompositor(vram VRAM, font []byte, mode vidmode.Mode, cfg Config) (*Compositor, error) {
	if vram == nil {
		return nil, curated.Errorf("overlay: no VRAM interface")
	}
	if len(font) != FontSize {
		return nil, curated.Errorf("overlay: font must be %d bytes (%d)", FontSize, len(font))
	}

	com := &Compositor{
		vram: vram,
		font: font,
		mode: mode,
		cfg:  cfg,
	}

	if cfg.Columns == 0 || cfg.Rows == 0 {
		// legacy placement. an explicitly configured rectangle always takes
		// precedence over this fallback
		com.legacy = true
		com.cfg.OriginX = 0
		com.cfg.OriginY = 0
		com.cfg.Columns = nativeSpan / CellSize
		com.cfg.Rows = mode.VPixels / CellSize
		if mode.HPixels > nativeSpan {
			com.shift = (mode.HPixels - nativeSpan) / 2
		}
		logger.Logf("overlay", "legacy placement in use (deprecated), shift %d", com.shift)
	} else {
		if cfg.OriginX < 0 || cfg.OriginY < 0 {
			return nil, curated.Errorf("overlay: negative rectangle origin")
		}
		if (cfg.OriginX+cfg.Columns)*CellSize > mode.HPixels ||
			(cfg.OriginY+cfg.Rows)*CellSize > mode.VPixels {
			return nil, curated.Errorf("overlay: rectangle outside %s raster", mode.Name)
		}
	}

	return com, nil
}

// Enabled returns the state of the global enable flag.
func (com *Compositor) Enabled() bool {
	return com.cfg.Enable
}

// SetEnable changes the global enable flag. The only part of the overlay
// configuration that may change outside the quiescent window.
func (com *Compositor) SetEnable(enable bool) {
	com.cfg.Enable = enable
}

// Pixel resolves the overlay's contribution at an output raster position.
// The on flag is false wherever the overlay does not draw: disabled,
// outside the rectangle, or a cell position with no visible ink.
func (com *Compositor) Pixel(col int, row int) (signal.RGB, bool) {
	if !com.cfg.Enable {
		return signal.RGB{}, false
	}

	col -= com.shift
	if col < 0 {
		return signal.RGB{}, false
	}

	cellX := col/CellSize - com.cfg.OriginX
	cellY := row/CellSize - com.cfg.OriginY
	if cellX < 0 || cellX >= com.cfg.Columns || cellY < 0 || cellY >= com.cfg.Rows {
		return signal.RGB{}, false
	}

	glyph, attr := com.vram.Read(uint16(cellY*com.cfg.Columns + cellX))

	bits := com.font[int(glyph)*CellSize+row%CellSize]
	ink := bits&(0x80>>(col%CellSize)) != 0

	if ink {
		return attrColour(attr&AttrInkMask, attr&AttrBright != 0), true
	}
	if attr&AttrTransparent != 0 {
		// no visible ink here. the cell does not draw
		return signal.RGB{}, false
	}
	return attrColour((attr&AttrPaperMask)>>3, attr&AttrBright != 0), true
}

// attrColour expands a 3-bit colour index. Bit 0 blue, bit 1 red, bit 2
// green.
func attrColour(idx uint8, bright bool) signal.RGB {
	level := uint8(0xd7)
	if bright {
		level = 0xff
	}

	c := signal.RGB{}
	if idx&0b001 != 0 {
		c.B = level
	}
	if idx&0b010 != 0 {
		c.R = level
	}
	if idx&0b100 != 0 {
		c.G = level
	}
	return c
}
