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

//go:build sdl
// +build sdl

package sdlout

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/vidmode"
)

// SDLOut is a PixelRenderer implementation displaying the composited stream
// in an SDL window.
type SDLOut struct {
	scale float32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int32
	height int32
	pixels []byte
}

// New is the preferred method of initialisation for the SDLOut type. The
// window is created on the first Resize().
func New(scale float32) (*SDLOut, error) {
	if scale <= 0 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("sdlout: %v", err)
	}

	return &SDLOut{scale: scale}, nil
}

// Resize implements the PixelRenderer interface.
func (out *SDLOut) Resize(mode vidmode.Mode) error {
	var err error

	out.destroy()

	out.width = int32(mode.HPixels)
	out.height = int32(mode.VPixels)

	out.window, err = sdl.CreateWindow("Pixelport",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(out.width)*out.scale), int32(float32(out.height)*out.scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return curated.Errorf("sdlout: %v", err)
	}

	out.renderer, err = sdl.CreateRenderer(out.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return curated.Errorf("sdlout: %v", err)
	}

	// everything applied to the renderer will be scaled
	if err = out.renderer.SetScale(out.scale, out.scale); err != nil {
		return curated.Errorf("sdlout: %v", err)
	}

	out.texture, err = out.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, out.width, out.height)
	if err != nil {
		return curated.Errorf("sdlout: %v", err)
	}

	out.pixels = make([]byte, out.width*out.height*pixelDepth)

	return nil
}

// NewFrame implements the PixelRenderer interface. The previous frame's
// pixels are presented.
func (out *SDLOut) NewFrame(frameNum int) error {
	if err := out.renderer.Clear(); err != nil {
		return curated.Errorf("sdlout: %v", err)
	}
	if err := out.texture.Update(nil, out.pixels, int(out.width*pixelDepth)); err != nil {
		return curated.Errorf("sdlout: %v", err)
	}
	if err := out.renderer.Copy(out.texture, nil, nil); err != nil {
		return curated.Errorf("sdlout: %v", err)
	}
	out.renderer.Present()

	// service the event queue so the window stays responsive. events are
	// otherwise unused
	for sdl.PollEvent() != nil {
	}

	return nil
}

// NewScanline implements the PixelRenderer interface.
func (out *SDLOut) NewScanline(row int) error {
	return nil
}

// SetPixel implements the PixelRenderer interface.
func (out *SDLOut) SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error {
	if !displayEnable {
		return nil
	}

	i := pixelIndex(col, row, int(out.width), len(out.pixels))
	if i >= 0 {
		out.pixels[i] = red
		out.pixels[i+1] = green
		out.pixels[i+2] = blue
		out.pixels[i+3] = 255
	}
	return nil
}

// EndRendering implements the PixelRenderer interface.
func (out *SDLOut) EndRendering() error {
	out.destroy()
	sdl.Quit()
	return nil
}

func (out *SDLOut) destroy() {
	if out.texture != nil {
		_ = out.texture.Destroy()
		out.texture = nil
	}
	if out.renderer != nil {
		_ = out.renderer.Destroy()
		out.renderer = nil
	}
	if out.window != nil {
		_ = out.window.Destroy()
		out.window = nil
	}
}
