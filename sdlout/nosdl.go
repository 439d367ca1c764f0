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

//go:build !sdl
// +build !sdl

package sdlout

import (
	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/vidmode"
)

// SDLOut without the sdl build tag is a placeholder. New() always fails.
type SDLOut struct{}

// New always returns an error in builds without the sdl tag.
func New(scale float32) (*SDLOut, error) {
	return nil, curated.Errorf("sdlout: not compiled in (build with the sdl tag)")
}

// Resize implements the PixelRenderer interface.
func (out *SDLOut) Resize(mode vidmode.Mode) error {
	return nil
}

// NewFrame implements the PixelRenderer interface.
func (out *SDLOut) NewFrame(frameNum int) error {
	return nil
}

// NewScanline implements the PixelRenderer interface.
func (out *SDLOut) NewScanline(row int) error {
	return nil
}

// SetPixel implements the PixelRenderer interface.
func (out *SDLOut) SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error {
	return nil
}

// EndRendering implements the PixelRenderer interface.
func (out *SDLOut) EndRendering() error {
	return nil
}
