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

package scaler_test

import (
	"testing"

	"github.com/polyphase/pixelport/hardware/scaler"
	"github.com/polyphase/pixelport/hardware/sdram"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/test"
)

// ingest a synthetic native frame where every pixel encodes its own
// position: R = x, G = y
func ingestFrame(eng *scaler.Engine, w int, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			eng.Ingest(signal.CorePixel{
				RGB:           signal.RGB{R: uint8(x), G: uint8(y)},
				DisplayEnable: true,
			})
		}
		eng.EndLine()
	}
	eng.EndFrame()
}

func newEngine(t *testing.T, cfg scaler.Config) (*scaler.Engine, *sdram.Model) {
	t.Helper()

	mem, err := sdram.NewModel(21, 0)
	test.ExpectSuccess(t, err)

	mode, err := vidmode.Lookup(1)
	test.ExpectSuccess(t, err)

	eng, err := scaler.NewEngine(mem, mode, cfg)
	test.ExpectSuccess(t, err)

	return eng, mem
}

func TestNearestUpscale(t *testing.T) {
	// 8x8 native into a 16x16 window: every output pixel must map to
	// exactly one source pixel, at half its output offset
	win := scaler.Window{HMin: 0, HMax: 15, VMin: 0, VMax: 15}
	eng, _ := newEngine(t, scaler.Config{Window: win, NativeW: 8, NativeH: 8})

	ingestFrame(eng, 8, 8)
	eng.StartFrame()

	for row := 0; row < 16; row++ {
		eng.StartLine(row)
		for col := 0; col < 16; col++ {
			rgb, on := eng.Sample(col, row)
			test.ExpectSuccess(t, on)
			test.Equate(t, rgb.R, uint8(col/2))
			test.Equate(t, rgb.G, uint8(row/2))
		}
	}
}

func TestOutsideWindow(t *testing.T) {
	win := scaler.Window{HMin: 100, HMax: 199, VMin: 100, VMax: 199}
	eng, _ := newEngine(t, scaler.Config{Window: win, NativeW: 50, NativeH: 50})

	ingestFrame(eng, 50, 50)
	eng.StartFrame()

	eng.StartLine(99)
	_, on := eng.Sample(99, 99)
	test.ExpectFailure(t, on)

	// low end of the crop boundary is inclusive
	eng.StartLine(100)
	_, on = eng.Sample(100, 100)
	test.ExpectSuccess(t, on)

	// and the high end too, with the position one past it excluded
	eng.StartLine(199)
	_, on = eng.Sample(199, 199)
	test.ExpectSuccess(t, on)
	_, on = eng.Sample(200, 199)
	test.ExpectFailure(t, on)
}

func TestLinearMidpoint(t *testing.T) {
	// two native columns at full and zero intensity. the output column
	// halfway between them must blend to the midpoint
	win := scaler.Window{HMin: 0, HMax: 3, VMin: 0, VMax: 3}
	eng, _ := newEngine(t, scaler.Config{
		Window: win, NativeW: 2, NativeH: 2,
		Interpolation: scaler.Linear,
	})

	for y := 0; y < 2; y++ {
		eng.Ingest(signal.CorePixel{RGB: signal.RGB{R: 0}, DisplayEnable: true})
		eng.Ingest(signal.CorePixel{RGB: signal.RGB{R: 200}, DisplayEnable: true})
		eng.EndLine()
	}
	eng.EndFrame()

	eng.StartFrame()
	eng.StartLine(0)

	rgb, on := eng.Sample(0, 0)
	test.ExpectSuccess(t, on)
	test.Equate(t, rgb.R, uint8(0))

	rgb, _ = eng.Sample(1, 0)
	test.Equate(t, rgb.R, uint8(100))

	rgb, _ = eng.Sample(2, 0)
	test.Equate(t, rgb.R, uint8(200))
}

func TestPolyphaseIdentity(t *testing.T) {
	// an identity coefficient table must reproduce nearest neighbour
	// sampling exactly
	win := scaler.Window{HMin: 0, HMax: 31, VMin: 0, VMax: 31}

	near, _ := newEngine(t, scaler.Config{Window: win, NativeW: 10, NativeH: 10})
	poly, _ := newEngine(t, scaler.Config{
		Window: win, NativeW: 10, NativeH: 10,
		Interpolation: scaler.Polyphase,
		Poly:          scaler.IdentityPoly(16),
	})

	ingestFrame(near, 10, 10)
	ingestFrame(poly, 10, 10)
	near.StartFrame()
	poly.StartFrame()

	for row := 0; row < 32; row++ {
		near.StartLine(row)
		poly.StartLine(row)
		for col := 0; col < 32; col++ {
			n, _ := near.Sample(col, row)
			p, _ := poly.Sample(col, row)
			if n != p {
				t.Fatalf("polyphase identity mismatch at %d,%d: %v != %v", col, row, p, n)
			}
		}
	}
}

func TestStallDegradation(t *testing.T) {
	win := scaler.Window{HMin: 0, HMax: 15, VMin: 0, VMax: 15}
	eng, mem := newEngine(t, scaler.Config{Window: win, NativeW: 8, NativeH: 8})

	ingestFrame(eng, 8, 8)

	// stall the channel for longer than the blanking budget of a VIC 1
	// line. the affected lines must fall back to border, not fail
	mem.WaitInject = func(addr uint32) int { return 1000 }

	eng.StartFrame()
	eng.StartLine(0)

	_, on := eng.Sample(0, 0)
	test.ExpectFailure(t, on)
	test.Equate(t, eng.DegradedLines(), 1)

	// the stall clears and service resumes
	mem.WaitInject = nil
	eng.StartFrame()
	eng.StartLine(0)
	_, on = eng.Sample(0, 0)
	test.ExpectSuccess(t, on)
}

func TestDetectedSize(t *testing.T) {
	win := scaler.Window{HMin: 0, HMax: 99, VMin: 0, VMax: 99}
	eng, _ := newEngine(t, scaler.Config{Window: win, NativeW: 64, NativeH: 48})

	ingestFrame(eng, 64, 48)

	// the snapshot is not visible to the output domain until latched at
	// the start of its frame
	w, h := eng.DetectedSize()
	test.Equate(t, w, 0)
	test.Equate(t, h, 0)

	eng.StartFrame()
	w, h = eng.DetectedSize()
	test.Equate(t, w, 64)
	test.Equate(t, h, 48)
}

func TestDownscaleRejected(t *testing.T) {
	mem, _ := sdram.NewModel(21, 0)
	mode, _ := vidmode.Lookup(1)

	// native wider than the window. must fail loudly at configuration
	_, err := scaler.NewEngine(mem, mode, scaler.Config{
		Window:  scaler.Window{HMin: 0, HMax: 99, VMin: 0, VMax: 99},
		NativeW: 200, NativeH: 50,
	})
	test.ExpectFailure(t, err)
}

func TestWindowValidation(t *testing.T) {
	mode, _ := vidmode.Lookup(1)

	test.ExpectFailure(t, scaler.Window{HMin: 10, HMax: 5, VMin: 0, VMax: 10}.Validate(mode))
	test.ExpectFailure(t, scaler.Window{HMin: 0, HMax: 640, VMin: 0, VMax: 10}.Validate(mode))
	test.ExpectSuccess(t, scaler.FullWindow(mode).Validate(mode))
}

func TestDeriveWindow(t *testing.T) {
	mode, _ := vidmode.Lookup(1)

	// crop off: full raster
	test.Equate(t, scaler.DeriveWindow(mode, false, 256, 192), scaler.FullWindow(mode))

	// crop on: largest centered integer multiple
	win := scaler.DeriveWindow(mode, true, 256, 192)
	test.Equate(t, win, scaler.Window{HMin: 64, HMax: 575, VMin: 48, VMax: 431})
}

func TestTallNativeFrame(t *testing.T) {
	// a 1080 line native image needs more staging memory than the channel
	// contract minimum. every line must land in its own slot
	mem, err := sdram.NewModel(22, 0)
	test.ExpectSuccess(t, err)

	mode, err := vidmode.Lookup(16)
	test.ExpectSuccess(t, err)

	eng, err := scaler.NewEngine(mem, mode, scaler.Config{
		Window:  scaler.FullWindow(mode),
		NativeW: 8, NativeH: 1080,
	})
	test.ExpectSuccess(t, err)

	// every pixel encodes its own row: R = row>>8, G = row&0xff
	for y := 0; y < 1080; y++ {
		for x := 0; x < 8; x++ {
			eng.Ingest(signal.CorePixel{
				RGB:           signal.RGB{R: uint8(y >> 8), G: uint8(y)},
				DisplayEnable: true,
			})
		}
		eng.EndLine()
	}
	eng.EndFrame()

	eng.StartFrame()
	for _, row := range []int{0, 1023, 1024, 1079} {
		eng.StartLine(row)
		rgb, on := eng.Sample(0, row)
		test.ExpectSuccess(t, on)
		test.Equate(t, rgb.R, uint8(row>>8))
		test.Equate(t, rgb.G, uint8(row))
	}
}

func TestFrameStagingCapacity(t *testing.T) {
	// 19 address bits hold 256 line slots. a taller native image must be
	// rejected at configuration, before any line can alias
	mem, _ := sdram.NewModel(19, 0)
	mode, _ := vidmode.Lookup(16)

	_, err := scaler.NewEngine(mem, mode, scaler.Config{
		Window:  scaler.FullWindow(mode),
		NativeW: 8, NativeH: 300,
	})
	test.ExpectFailure(t, err)
}
