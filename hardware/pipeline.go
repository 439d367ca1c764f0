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

package hardware

import (
	"time"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/acr"
	"github.com/polyphase/pixelport/hardware/crossdomain"
	"github.com/polyphase/pixelport/hardware/overlay"
	"github.com/polyphase/pixelport/hardware/raster"
	"github.com/polyphase/pixelport/hardware/scaler"
	"github.com/polyphase/pixelport/hardware/sdram"
	"github.com/polyphase/pixelport/hardware/signal"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/logger"
)

// address width of the staging memory model. 2048 line slots of 2048 words
// each, room for the tallest catalogue mode
const stagingAddrBits = 22

// Options for pipeline creation. The zero value is usable: full-raster
// stretch, nearest interpolation, no overlay, 48kHz audio.
type Options struct {
	// confine the scaled image to the largest centred integer multiple of
	// the native size instead of stretching to the full raster
	Crop bool

	Interpolation scaler.Interpolation

	// coefficient table, required when Interpolation is Polyphase
	Poly *scaler.PolyTable

	// the overlay plane is attached only when VRAM is non-nil. a nil Font
	// selects overlay.BlockFont()
	Overlay overlay.Config
	VRAM    overlay.VRAM
	Font    []byte

	SampleRateHz int
	AudioClockHz int

	// wait states injected by the staging memory model on every burst
	MemLatency int
}

// Pipeline composes the timing generator, scaler, overlay compositor, clock
// domain bridges and audio clock regenerator into the complete output stage.
//
// The three clock domains are exposed as explicit entry points: IngestFrame
// (core domain), OutputFrame (output domain) and RunAudio (audio domain).
// Headless paths call them directly. The live Run path gives the audio
// domain its own goroutine; core ingest and output are driven in turn from
// a single goroutine because both sides touch the staging memory model.
// Inter-domain traffic still crosses only through crossdomain types.
type Pipeline struct {
	mode vidmode.Mode

	ras   *raster.Timing
	mem   *sdram.Model
	scl   *scaler.Engine
	ovl   *overlay.Compositor
	regen *acr.Regenerator

	core  CoreSource
	audio AudioSource

	// pixel-rate traffic from the core crosses to the scaler's ingest side
	// through a bounded queue sized for one native line
	ingestQ *crossdomain.Queue[signal.CorePixel]

	audioClockHz int

	renderers []PixelRenderer
	triggers  []FrameTrigger
	mixers    []AudioMixer

	// raster metadata is carried through a one tick delay line so that
	// compositing decisions line up with the resampling latency
	delay      raster.State
	delayValid bool

	frameNum int

	status statusWords

	lmtr limiter

	// live-path handshakes with the audio domain goroutine
	stopAudio crossdomain.BitSync
	audioDone crossdomain.BitSync
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. The audio source may be nil, in which case no audio domain exists.
func NewPipeline(vic int, core CoreSource, audio AudioSource, opts Options) (*Pipeline, error) {
	if core == nil {
		return nil, curated.Errorf("pipeline: no core image source")
	}

	mode, err := vidmode.Lookup(vic)
	if err != nil {
		return nil, err
	}

	if opts.SampleRateHz == 0 {
		opts.SampleRateHz = 48000
	}
	if opts.AudioClockHz == 0 {
		opts.AudioClockHz = opts.SampleRateHz * 256
	}

	p := &Pipeline{
		mode:         mode,
		core:         core,
		audio:        audio,
		audioClockHz: opts.AudioClockHz,
	}

	p.ras, err = raster.NewTiming(mode)
	if err != nil {
		return nil, err
	}

	p.mem, err = sdram.NewModel(stagingAddrBits, opts.MemLatency)
	if err != nil {
		return nil, err
	}

	nativeW, nativeH := core.Size()
	p.ingestQ = crossdomain.NewQueue[signal.CorePixel](nativeW)
	p.scl, err = scaler.NewEngine(p.mem, mode, scaler.Config{
		Window:        scaler.DeriveWindow(mode, opts.Crop, nativeW, nativeH),
		NativeW:       nativeW,
		NativeH:       nativeH,
		Interpolation: opts.Interpolation,
		Poly:          opts.Poly,
	})
	if err != nil {
		return nil, err
	}

	if opts.VRAM != nil {
		font := opts.Font
		if font == nil {
			font = overlay.BlockFont()
		}
		p.ovl, err = overlay.NewCompositor(opts.VRAM, font, mode, opts.Overlay)
		if err != nil {
			return nil, err
		}
	}

	if audio != nil {
		p.regen, err = acr.NewRegenerator(opts.AudioClockHz, opts.SampleRateHz, mode)
		if err != nil {
			return nil, err
		}
	}

	logger.Logf("pipeline", "mode %s, native %dx%d, window %s, %s",
		mode.Name, nativeW, nativeH, p.scl.Window(), opts.Interpolation)

	return p, nil
}

// Mode returns the selected video mode.
func (p *Pipeline) Mode() vidmode.Mode {
	return p.mode
}

// Overlay returns the overlay compositor. nil when no VRAM interface was
// attached.
func (p *Pipeline) Overlay() *overlay.Compositor {
	return p.ovl
}

// AddPixelRenderer registers a consumer of the composited pixel stream.
func (p *Pipeline) AddPixelRenderer(r PixelRenderer) error {
	if err := r.Resize(p.mode); err != nil {
		return err
	}
	p.renderers = append(p.renderers, r)
	return nil
}

// AddFrameTrigger registers a consumer of NewFrame events.
func (p *Pipeline) AddFrameTrigger(t FrameTrigger) {
	p.triggers = append(p.triggers, t)
}

// AddAudioMixer registers a consumer of the gated audio stream.
func (p *Pipeline) AddAudioMixer(m AudioMixer) {
	p.mixers = append(p.mixers, m)
}

// Reset all three domains to their initial state. Immediate and total; there
// is no partial recovery.
func (p *Pipeline) Reset() {
	p.ras.Reset()
	p.scl.Reset()
	if p.regen != nil {
		p.regen.Reset()
	}
	p.delayValid = false
	p.frameNum = 0
}

// IngestFrame runs the core clock domain for one frame, staging the source
// image through the memory channel.
func (p *Pipeline) IngestFrame() {
	w, h := p.core.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.ingestQ.Post(p.core.Pixel(x, y))
		}
		for {
			px, ok := p.ingestQ.Recv()
			if !ok {
				break
			}
			p.scl.Ingest(px)
		}
		p.scl.EndLine()
	}
	p.scl.EndFrame()

	if n := p.ingestQ.Overruns(); n > 0 {
		logger.Logf("pipeline", "%d core pixels dropped at the ingest queue", n)
	}
}

// OutputFrame runs the output clock domain for one full raster period,
// fanning the composited stream out to the attached renderers. The status
// snapshot is published once, at the end of the frame.
func (p *Pipeline) OutputFrame() error {
	p.scl.StartFrame()

	for _, t := range p.triggers {
		if err := t.NewFrame(p.frameNum); err != nil {
			return err
		}
	}
	for _, r := range p.renderers {
		if err := r.NewFrame(p.frameNum); err != nil {
			return err
		}
	}

	// one extra tick flushes the delay line
	total := p.mode.HTotal() * p.mode.VTotal()
	for i := 0; i <= total; i++ {
		var cur raster.State
		curValid := i < total
		if curValid {
			cur = p.ras.State()
			p.ras.Advance()
		}

		if p.delayValid {
			if err := p.emit(p.delay); err != nil {
				return err
			}
		}
		p.delay = cur
		p.delayValid = curValid
	}

	nw, nh := p.scl.DetectedSize()
	p.status.post(Status{
		Frame:         p.frameNum,
		NativeW:       nw,
		NativeH:       nh,
		OutputW:       p.scl.Window().Width(),
		OutputH:       p.scl.Window().Height(),
		DegradedLines: p.scl.DegradedLines(),
	})

	p.frameNum++
	return nil
}

// emit composites and fans out a single delayed raster position. priority is
// overlay, then scaled core image, then border colour, each gated by its own
// coverage flag.
func (p *Pipeline) emit(st raster.State) error {
	if st.Column == 0 && st.Row < p.mode.VPixels {
		p.scl.StartLine(st.Row)
		for _, r := range p.renderers {
			if err := r.NewScanline(st.Row); err != nil {
				return err
			}
		}
	}

	px := signal.Border
	if st.DisplayEnable {
		on := false
		if p.ovl != nil {
			var c signal.RGB
			if c, on = p.ovl.Pixel(st.Column, st.Row); on {
				px = c
			}
		}
		if !on {
			if c, on := p.scl.Sample(st.Column, st.Row); on {
				px = c
			}
		}
	}

	for _, r := range p.renderers {
		if err := r.SetPixel(st.Column, st.Row, px.R, px.G, px.B, st.DisplayEnable); err != nil {
			return err
		}
	}
	return nil
}

// RunAudio runs the audio clock domain for the given number of audio clock
// ticks. Samples are forwarded to the mixers on the enable pulse; the clock
// regeneration packet is forwarded on the strobe.
func (p *Pipeline) RunAudio(ticks int) error {
	if p.regen == nil {
		return nil
	}

	for i := 0; i < ticks; i++ {
		sample, strobe := p.regen.Tick()
		if sample {
			s := p.audio.Sample()
			for _, m := range p.mixers {
				if err := m.SetAudio(s); err != nil {
					return err
				}
			}
		}
		if strobe {
			for _, m := range p.mixers {
				if err := m.SetClockRegen(p.regen.Packet()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Status latches and returns the most recent diagnostic snapshot. Intended
// to be read between frames.
func (p *Pipeline) Status() Status {
	return p.status.latch()
}

// Run the pipeline live for the given number of frames, paced to the mode's
// refresh rate. The audio domain runs in its own goroutine; start and stop
// cross to it through bit synchronisers.
func (p *Pipeline) Run(frames int) error {
	p.lmtr.init(p.mode.RefreshRate())
	defer p.lmtr.pulse.Stop()
	defer p.lmtr.measuringPulse.Stop()

	if p.regen != nil {
		go p.audioDomain()
	} else {
		p.audioDone.Set(true)
	}

	var runErr error
	for i := 0; i < frames; i++ {
		p.lmtr.wait()
		p.IngestFrame()
		if runErr = p.OutputFrame(); runErr != nil {
			break
		}
	}

	p.stopAudio.Set(true)
	for {
		p.audioDone.Tick()
		p.audioDone.Tick()
		if p.audioDone.Value() {
			break
		}
		time.Sleep(time.Millisecond)
	}

	return runErr
}

// audioDomain is the audio clock domain of the live path. It observes the
// stop flag through a bit synchroniser and acknowledges through another.
func (p *Pipeline) audioDomain() {
	framePeriod := time.Duration(float32(time.Second) / p.mode.RefreshRate())
	ticksPerFrame := int(float32(p.audioClockHz) / p.mode.RefreshRate())

	pulse := time.NewTicker(framePeriod)
	defer pulse.Stop()

	for {
		p.stopAudio.Tick()
		p.stopAudio.Tick()
		if p.stopAudio.Value() {
			break
		}

		<-pulse.C
		if err := p.RunAudio(ticksPerFrame); err != nil {
			logger.Logf("pipeline", "audio domain: %v", err)
			break
		}
	}

	p.audioDone.Set(true)
}

// End gently concludes all attached renderers and mixers. The pipeline
// should be considered unusable afterwards.
func (p *Pipeline) End() error {
	var rtnErr error
	for _, r := range p.renderers {
		if err := r.EndRendering(); err != nil && rtnErr == nil {
			rtnErr = err
		}
	}
	for _, m := range p.mixers {
		if err := m.EndMixing(); err != nil && rtnErr == nil {
			rtnErr = err
		}
	}
	return rtnErr
}
