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

// Package scaler resamples the core's native image into the output raster.
//
// The engine sits between two clock domains. On the core clock it ingests
// native pixels and stages whole lines through the external memory channel.
// On the output clock it reads staged lines back into a small cache and
// produces one resampled pixel for every raster position inside the crop
// window. Pixel data crosses the domain boundary only through the memory
// channel; the detected image size crosses through a snapshot synchroniser.
//
// Resampling positions are held in 16.16 fixed point. Only upscaling is
// supported: a native extent larger than the window is rejected when the
// engine is configured rather than being allowed to produce an undefined
// picture.
package scaler

import (
	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/crossdomain"
	"github.com/polyphase/pixelport/hardware/sdram"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/logger"
)

// Interpolation selects the resampling filter.
type Interpolation int

// List of valid Interpolation values.
const (
	Nearest Interpolation = iota
	Linear
	Polyphase
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Polyphase:
		return "polyphase"
	}
	return "nearest"
}

// words per native line in the staging memory. fixes the line-to-address
// mapping regardless of the native width
const rowStride = 2048

// the number of line buffers on the output side. the widest filter needs
// four consecutive native lines
const cacheLines = 4

// Config collects the scaling parameters. A Config is applied once, at
// construction or during vertical blanking, and is read-only during
// steady-state operation.
type Config struct {
	Window  Window
	NativeW int
	NativeH int

	Interpolation Interpolation

	// coefficient table, required when Interpolation is Polyphase
	Poly *PolyTable
}

// Engine is the line-buffered resampling engine. Create with NewEngine().
//
// Ingest(), EndLine() and EndFrame() belong to the core clock domain;
// StartFrame(), StartLine() and Sample() belong to the output clock domain.
type Engine struct {
	mem  sdram.Channel
	mode vidmode.Mode
	cfg  Config

	// resampling steps in 16.16 fixed point
	hstep int
	vstep int

	// ingest state (core domain)
	ingest  []uint32
	inX     int
	inY     int
	widest  int
	detect  crossdomain.WordSync

	// output state
	cache       [cacheLines]cacheLine
	lineCovered bool
	waitBudget  int
	degraded    int
}

type cacheLine struct {
	row   int
	valid bool
	px    []uint32
}

// NewEngine creates a resampling engine. The engine is the sole owner of the
// memory channel.
func NewEngine(mem sdram.Channel, mode vidmode.Mode, cfg Config) (*Engine, error) {
	if err := cfg.Window.Validate(mode); err != nil {
		return nil, err
	}
	if cfg.NativeW <= 0 || cfg.NativeH <= 0 {
		return nil, curated.Errorf("scaler: native extent must be positive (%dx%d)", cfg.NativeW, cfg.NativeH)
	}
	if cfg.NativeW > rowStride {
		return nil, curated.Errorf("scaler: native width %d exceeds line staging capacity", cfg.NativeW)
	}
	if cfg.NativeH*rowStride > mem.Words() {
		return nil, curated.Errorf("scaler: native height %d exceeds frame staging capacity (%d lines)",
			cfg.NativeH, mem.Words()/rowStride)
	}

	// downscaling is not supported by this configuration. reject it here
	// rather than allowing an undefined picture
	if cfg.NativeW > cfg.Window.Width() || cfg.NativeH > cfg.Window.Height() {
		return nil, curated.Errorf("scaler: downscaling not supported (%dx%d into %dx%d)",
			cfg.NativeW, cfg.NativeH, cfg.Window.Width(), cfg.Window.Height())
	}

	if cfg.Interpolation == Polyphase {
		if cfg.Poly == nil {
			return nil, curated.Errorf("scaler: polyphase interpolation with no coefficient table")
		}
		if err := cfg.Poly.Validate(); err != nil {
			return nil, err
		}
	}

	eng := &Engine{
		mem:    mem,
		mode:   mode,
		cfg:    cfg,
		hstep:  (cfg.NativeW << 16) / cfg.Window.Width(),
		vstep:  (cfg.NativeH << 16) / cfg.Window.Height(),
		ingest: make([]uint32, rowStride),

		// the blanking period of each line is the time available for
		// staging reads before output pixels are due
		waitBudget: mode.HTotal() - mode.HPixels,
	}
	for i := range eng.cache {
		eng.cache[i].px = make([]uint32, rowStride)
	}

	logger.Logf("scaler", "%s: %dx%d into %v (%s)",
		mode.Name, cfg.NativeW, cfg.NativeH, cfg.Window, cfg.Interpolation)

	return eng, nil
}

// Window in use by the engine.
func (eng *Engine) Window() Window {
	return eng.cfg.Window
}

// Reset the engine to its initial state. Total and immediate.
func (eng *Engine) Reset() {
	eng.inX = 0
	eng.inY = 0
	eng.widest = 0
	eng.degraded = 0
	for i := range eng.cache {
		eng.cache[i].valid = false
	}
}

// \/\/ core clock domain \/\/

// Ingest one native pixel. Pixels without display enable carry no colour
// and are discarded; the core's blanking is not part of the image.
func (eng *Engine) Ingest(px signal.CorePixel) {
	if !px.DisplayEnable {
		return
	}
	if eng.inX < rowStride {
		eng.ingest[eng.inX] = packRGB(px.RGB)
		eng.inX++
		if eng.inX > eng.widest {
			eng.widest = eng.inX
		}
	}
}

// EndLine stages the line ingested so far through the memory channel. Lines
// that carried no display-enabled pixels are skipped.
func (eng *Engine) EndLine() {
	if eng.inX == 0 {
		return
	}
	eng.mem.WriteBurst(lineAddr(eng.inY), eng.ingest[:eng.inX], 0x07)
	eng.inY++
	eng.inX = 0
}

// EndFrame completes the native frame and posts the detected image size to
// the output domain.
func (eng *Engine) EndFrame() {
	eng.detect.Post(uint32(eng.widest)<<16 | uint32(eng.inY))
	eng.inY = 0
	eng.widest = 0
}

// \/\/ output clock domain \/\/

// StartFrame prepares the engine for a new output frame. The detected
// native size snapshot is latched here, once per frame.
func (eng *Engine) StartFrame() {
	eng.detect.Latch()

	if eng.degraded > 0 {
		logger.Logf("scaler", "%d lines fell back to border (memory channel stalled)", eng.degraded)
	}
	eng.degraded = 0

	for i := range eng.cache {
		eng.cache[i].valid = false
	}
}

// StartLine fetches the native lines needed to resample the given output
// row. The time spent waiting on the memory channel is charged against the
// line's blanking budget; an overspent line falls back to border colour for
// the whole line. Degradation, not failure.
func (eng *Engine) StartLine(row int) {
	eng.lineCovered = true

	if row < eng.cfg.Window.VMin || row > eng.cfg.Window.VMax {
		return
	}

	v0 := eng.vpos(row) >> 16

	var first, last int
	switch eng.cfg.Interpolation {
	case Nearest:
		first, last = v0, v0
	case Linear:
		first, last = v0, v0+1
	case Polyphase:
		first, last = v0-1, v0+2
	}

	wait := 0
	for r := first; r <= last; r++ {
		wait += eng.fetch(clamp(r, 0, eng.cfg.NativeH-1))
	}

	if wait > eng.waitBudget {
		eng.lineCovered = false
		eng.degraded++
	}
}

// Sample produces the resampled pixel for the output position. The covered
// flag is false outside the crop window and for lines degraded by a stalled
// memory channel; the caller must fall back to border colour.
func (eng *Engine) Sample(col int, row int) (signal.RGB, bool) {
	if !eng.lineCovered || !eng.cfg.Window.Contains(col, row) {
		return signal.RGB{}, false
	}

	u := (col - eng.cfg.Window.HMin) * eng.hstep
	v := eng.vpos(row)

	switch eng.cfg.Interpolation {
	case Linear:
		return eng.sampleLinear(u, v), true
	case Polyphase:
		return eng.samplePoly(u, v), true
	}
	return eng.sampleNearest(u, v), true
}

// DetectedSize is the native image size measured on the ingest side, as
// most recently latched by the output domain. For diagnostics only; the
// configured native extent governs the resampling ratio.
func (eng *Engine) DetectedSize() (int, int) {
	v := eng.detect.Value()
	return int(v >> 16), int(v & 0xffff)
}

// DegradedLines in the current output frame.
func (eng *Engine) DegradedLines() int {
	return eng.degraded
}

// vertical source position for an output row, 16.16
func (eng *Engine) vpos(row int) int {
	return (row - eng.cfg.Window.VMin) * eng.vstep
}

// fetch a native line into the cache, returning the wait-request ticks
// incurred. a line already cached costs nothing.
func (eng *Engine) fetch(row int) int {
	slot := &eng.cache[row%cacheLines]
	if slot.valid && slot.row == row {
		return 0
	}
	wait := eng.mem.ReadBurst(lineAddr(row), slot.px[:eng.cfg.NativeW])
	slot.row = row
	slot.valid = true
	return wait
}

// line returns the cached native line. StartLine() must have fetched it.
func (eng *Engine) line(row int) []uint32 {
	row = clamp(row, 0, eng.cfg.NativeH-1)
	return eng.cache[row%cacheLines].px
}

func (eng *Engine) sampleNearest(u int, v int) signal.RGB {
	return unpackRGB(eng.line(v >> 16)[u>>16])
}

func (eng *Engine) sampleLinear(u int, v int) signal.RGB {
	u0 := u >> 16
	v0 := v >> 16
	u1 := clamp(u0+1, 0, eng.cfg.NativeW-1)
	fu := u & 0xffff
	fv := v & 0xffff

	top := eng.line(v0)
	bot := eng.line(v0 + 1)

	blend := func(shift uint) uint8 {
		c00 := int((top[u0] >> shift) & 0xff)
		c01 := int((top[u1] >> shift) & 0xff)
		c10 := int((bot[u0] >> shift) & 0xff)
		c11 := int((bot[u1] >> shift) & 0xff)

		t := (c00*(0x10000-fu) + c01*fu) >> 16
		b := (c10*(0x10000-fu) + c11*fu) >> 16
		return uint8((t*(0x10000-fv) + b*fv) >> 16)
	}

	return signal.RGB{R: blend(16), G: blend(8), B: blend(0)}
}

func (eng *Engine) samplePoly(u int, v int) signal.RGB {
	pt := eng.cfg.Poly
	u0 := u >> 16
	v0 := v >> 16
	hphase := ((u & 0xffff) * pt.Phases()) >> 16
	vphase := ((v & 0xffff) * pt.Phases()) >> 16

	var r, g, b int
	for j := 0; j < 4; j++ {
		line := eng.line(v0 + j - 1)

		var hr, hg, hb int
		for i := 0; i < 4; i++ {
			c := int(pt.Coeffs[hphase][i])
			px := line[clamp(u0+i-1, 0, eng.cfg.NativeW-1)]
			hr += c * int((px>>16)&0xff)
			hg += c * int((px>>8)&0xff)
			hb += c * int(px&0xff)
		}

		cv := int(pt.Coeffs[vphase][j])
		r += cv * hr
		g += cv * hg
		b += cv * hb
	}

	// two passes of 1/128 coefficients
	return signal.RGB{R: clamp8(r >> 14), G: clamp8(g >> 14), B: clamp8(b >> 14)}
}

func lineAddr(row int) uint32 {
	return uint32(row * rowStride)
}

func packRGB(c signal.RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func unpackRGB(w uint32) signal.RGB {
	return signal.RGB{R: uint8(w >> 16), G: uint8(w >> 8), B: uint8(w)}
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
