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

package hardware_test

import (
	"testing"

	"github.com/polyphase/pixelport/hardware"
	"github.com/polyphase/pixelport/hardware/acr"
	"github.com/polyphase/pixelport/hardware/overlay"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/pattern"
	"github.com/polyphase/pixelport/test"
)

// screen collects the visible part of the composited stream
type screen struct {
	w, h      int
	px        []signal.RGB
	frames    int
	scanlines int
	ended     bool
}

func (scr *screen) Resize(mode vidmode.Mode) error {
	scr.w = mode.HPixels
	scr.h = mode.VPixels
	scr.px = make([]signal.RGB, scr.w*scr.h)
	return nil
}

func (scr *screen) NewFrame(frameNum int) error {
	scr.frames++
	return nil
}

func (scr *screen) NewScanline(row int) error {
	scr.scanlines++
	return nil
}

func (scr *screen) SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error {
	if displayEnable {
		scr.px[row*scr.w+col] = signal.RGB{R: red, G: green, B: blue}
	}
	return nil
}

func (scr *screen) EndRendering() error {
	scr.ended = true
	return nil
}

// mixer counts the gated sample stream
type mixer struct {
	samples int
	packets int
	last    acr.Packet
}

func (mix *mixer) SetAudio(sample signal.AudioSample) error {
	mix.samples++
	return nil
}

func (mix *mixer) SetClockRegen(packet acr.Packet) error {
	mix.packets++
	mix.last = packet
	return nil
}

func (mix *mixer) EndMixing() error {
	return nil
}

func runFrame(t *testing.T, p *hardware.Pipeline) {
	t.Helper()
	p.IngestFrame()
	test.ExpectSuccess(t, p.OutputFrame())
}

// crop enabled and overlay disabled. the raster is the scaled core image
// confined to the centred integer multiple, with border colour in all
// non-window regions.
func TestPlainScaledFrame(t *testing.T) {
	src := pattern.NewGradient(100, 100)

	p, err := hardware.NewPipeline(2, src, nil, hardware.Options{Crop: true})
	test.ExpectSuccess(t, err)

	scr := &screen{}
	test.ExpectSuccess(t, p.AddPixelRenderer(scr))

	runFrame(t, p)

	// 100x100 in a 720x480 raster crops to a 4x multiple centred at
	// (160,40)
	const hmin, vmin, size = 160, 40, 400

	for row := 0; row < scr.h; row++ {
		for col := 0; col < scr.w; col++ {
			got := scr.px[row*scr.w+col]

			inside := col >= hmin && col < hmin+size && row >= vmin && row < vmin+size
			if !inside {
				test.Equate(t, got, signal.Border)
				continue
			}

			u := (col - hmin) / 4
			v := (row - vmin) / 4
			test.Equate(t, got, signal.RGB{
				R: uint8(u * 255 / 99),
				G: uint8(v * 255 / 99),
				B: 0x80,
			})
		}
	}

	test.Equate(t, scr.frames, 1)
	test.Equate(t, scr.scanlines, 480)
}

// crop disabled. the core image stretches across the whole active raster
// and no pixel falls back to border colour.
func TestFullRasterStretch(t *testing.T) {
	src := pattern.NewGradient(360, 240)

	p, err := hardware.NewPipeline(2, src, nil, hardware.Options{})
	test.ExpectSuccess(t, err)

	scr := &screen{}
	test.ExpectSuccess(t, p.AddPixelRenderer(scr))

	runFrame(t, p)

	// 360x240 into the full 720x480 raster doubles both axes
	for row := 0; row < scr.h; row++ {
		for col := 0; col < scr.w; col++ {
			u := col / 2
			v := row / 2
			test.Equate(t, scr.px[row*scr.w+col], signal.RGB{
				R: uint8(u * 255 / 359),
				G: uint8(v * 255 / 239),
				B: 0x80,
			})
		}
	}
}

// overlay covering rows [0,16) of the raster wins over the core image on
// those rows and contributes nothing below them.
func TestOverlayPriority(t *testing.T) {
	src := pattern.NewBars(320, 240)

	// a font where glyph 1 is solid ink
	font := make([]byte, overlay.FontSize)
	for r := 0; r < overlay.CellSize; r++ {
		font[overlay.CellSize+r] = 0xff
	}

	vram := overlay.NewMemVRAM(80 * 2)
	for i := 0; i < 80*2; i++ {
		vram.Poke(uint16(i), 1, overlay.AttrBright|0b111)
	}

	p, err := hardware.NewPipeline(1, src, nil, hardware.Options{
		VRAM: vram,
		Font: font,
		Overlay: overlay.Config{
			Enable:  true,
			Columns: 80,
			Rows:    2,
		},
	})
	test.ExpectSuccess(t, err)

	scr := &screen{}
	test.ExpectSuccess(t, p.AddPixelRenderer(scr))

	runFrame(t, p)

	white := signal.RGB{R: 0xff, G: 0xff, B: 0xff}
	for row := 0; row < scr.h; row++ {
		for col := 0; col < scr.w; col++ {
			got := scr.px[row*scr.w+col]
			if row < 16 {
				test.Equate(t, got, white)
			} else {
				// below the overlay the core image shows. the full
				// raster stretch of 320x240 doubles every source pixel
				src := barColours(col / 2)
				test.Equate(t, got, src)
			}
		}
	}
}

func barColours(x int) signal.RGB {
	px := pattern.NewBars(320, 240).Pixel(x, 0)
	return px.RGB
}

func TestStatusSnapshot(t *testing.T) {
	src := pattern.NewGradient(64, 48)

	p, err := hardware.NewPipeline(1, src, nil, hardware.Options{})
	test.ExpectSuccess(t, err)

	runFrame(t, p)
	runFrame(t, p)

	st := p.Status()
	test.Equate(t, st.Frame, 1)
	test.Equate(t, st.NativeW, 64)
	test.Equate(t, st.NativeH, 48)
	test.Equate(t, st.OutputW, 640)
	test.Equate(t, st.OutputH, 480)
	test.Equate(t, st.DegradedLines, 0)
}

func TestAudioDomain(t *testing.T) {
	src := pattern.NewGradient(64, 48)
	tone := pattern.NewSine(440, 48000, 8000)

	p, err := hardware.NewPipeline(4, src, tone, hardware.Options{})
	test.ExpectSuccess(t, err)

	mix := &mixer{}
	p.AddAudioMixer(mix)

	// one thousand samples at the default 256x audio clock. exactly one
	// regeneration strobe fires
	test.ExpectSuccess(t, p.RunAudio(256*1000))

	test.Equate(t, mix.samples, 1000)
	test.Equate(t, mix.packets, 1)
	test.Equate(t, mix.last, acr.Packet{N: 6144, CTS: 74250})
}

func TestEndRendering(t *testing.T) {
	src := pattern.NewGradient(64, 48)

	p, err := hardware.NewPipeline(1, src, nil, hardware.Options{})
	test.ExpectSuccess(t, err)

	scr := &screen{}
	test.ExpectSuccess(t, p.AddPixelRenderer(scr))

	runFrame(t, p)
	test.ExpectSuccess(t, p.End())
	test.Equate(t, scr.ended, true)
}
