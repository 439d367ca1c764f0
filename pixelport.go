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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/polyphase/pixelport/digest"
	"github.com/polyphase/pixelport/hardware"
	"github.com/polyphase/pixelport/hardware/overlay"
	"github.com/polyphase/pixelport/hardware/scaler"
	"github.com/polyphase/pixelport/imagewriter"
	"github.com/polyphase/pixelport/logger"
	"github.com/polyphase/pixelport/pattern"
	"github.com/polyphase/pixelport/sdlout"
	"github.com/polyphase/pixelport/statsview"
	"github.com/polyphase/pixelport/version"
	"github.com/polyphase/pixelport/wavwriter"
)

func main() {
	vic := pflag.Int("vic", 2, "output video mode identification code")
	frames := pflag.Int("frames", 60, "number of frames to run")
	src := pflag.String("pattern", "bars", "core image pattern (bars, gradient)")
	nativeW := pflag.Int("native-width", 320, "core native width")
	nativeH := pflag.Int("native-height", 240, "core native height")
	interp := pflag.String("interpolation", "nearest", "resampling mode (nearest, linear, polyphase)")
	crop := pflag.Bool("crop", false, "confine image to the largest centred integer multiple")
	text := pflag.String("overlay", "", "overlay text (enables the overlay plane)")
	pngPrefix := pflag.String("png", "", "save frames as PNG files with this prefix")
	pngScale := pflag.Int("scale", 1, "integer upscale for saved PNG frames")
	wavFile := pflag.String("wav", "", "write the audio stream to this WAV file")
	regress := pflag.Bool("digest", false, "run headless and print video/audio digests")
	display := pflag.Bool("display", false, "show output in an SDL window (requires the sdl build tag)")
	sampleRate := pflag.Int("samplerate", 48000, "target audio sample rate")
	useLog := pflag.Bool("log", false, "echo log to stderr")
	stats := pflag.Bool("statsview", false, "run stats server (requires the statsview build tag)")
	showVersion := pflag.Bool("version", false, "print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	if *useLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if !statsview.Available() {
			fmt.Fprintln(os.Stderr, "* pixelport not built with the statsview tag")
			os.Exit(2)
		}
		statsview.Launch(os.Stderr)
	}

	if err := run(*vic, *frames, *src, *nativeW, *nativeH, *interp, *crop,
		*text, *pngPrefix, *pngScale, *wavFile, *regress, *display, *sampleRate); err != nil {

		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(2)
	}
}

func run(vic int, frames int, src string, nativeW int, nativeH int,
	interp string, crop bool, text string, pngPrefix string, pngScale int,
	wavFile string, regress bool, display bool, sampleRate int) error {

	var core hardware.CoreSource
	switch src {
	case "bars":
		core = pattern.NewBars(nativeW, nativeH)
	case "gradient":
		core = pattern.NewGradient(nativeW, nativeH)
	default:
		return fmt.Errorf("unknown pattern %q", src)
	}

	opts := hardware.Options{
		Crop:         crop,
		SampleRateHz: sampleRate,
	}

	switch interp {
	case "nearest":
		opts.Interpolation = scaler.Nearest
	case "linear":
		opts.Interpolation = scaler.Linear
	case "polyphase":
		opts.Interpolation = scaler.Polyphase
		opts.Poly = scaler.IdentityPoly(16)
	default:
		return fmt.Errorf("unknown interpolation %q", interp)
	}

	if text != "" {
		vram := overlay.NewMemVRAM(len(text))
		vram.WriteString(0, text, overlay.AttrBright|0b111)
		opts.VRAM = vram
		opts.Overlay = overlay.Config{
			Enable:  true,
			OriginX: 1,
			OriginY: 1,
			Columns: len(text),
			Rows:    1,
		}
	}

	tone := pattern.NewSine(440, sampleRate, 8000)

	p, err := hardware.NewPipeline(vic, core, tone, opts)
	if err != nil {
		return err
	}

	var vidDig *digest.Video
	var audDig *digest.Audio
	if regress {
		vidDig = digest.NewVideo()
		if err := p.AddPixelRenderer(vidDig); err != nil {
			return err
		}
		audDig = digest.NewAudio()
		p.AddAudioMixer(audDig)
	}

	if pngPrefix != "" {
		iw, err := imagewriter.New(pngPrefix, pngScale)
		if err != nil {
			return err
		}
		if err := p.AddPixelRenderer(iw); err != nil {
			return err
		}
	}

	if wavFile != "" {
		aw, err := wavwriter.New(wavFile, sampleRate)
		if err != nil {
			return err
		}
		p.AddAudioMixer(aw)
	}

	if display {
		scr, err := sdlout.New(2)
		if err != nil {
			return err
		}
		if err := p.AddPixelRenderer(scr); err != nil {
			return err
		}

		// paced to the mode's refresh rate, audio in its own goroutine
		if err := p.Run(frames); err != nil {
			return err
		}
	} else {
		// headless. unlimited frame rate, the three domains driven in turn
		ticksPerFrame := int(float32(sampleRate*256) / p.Mode().RefreshRate())
		for i := 0; i < frames; i++ {
			p.IngestFrame()
			if err := p.OutputFrame(); err != nil {
				return err
			}
			if err := p.RunAudio(ticksPerFrame); err != nil {
				return err
			}
		}
	}

	if err := p.End(); err != nil {
		return err
	}

	if regress {
		fmt.Printf("video digest: %s\n", vidDig.Hash())
		fmt.Printf("audio digest: %s\n", audDig.Hash())
	}

	fmt.Println(p.Status().String())

	return nil
}
