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

// Package imagewriter saves the composited video stream to disk, one PNG
// file per frame.
package imagewriter

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/vidmode"
	"github.com/polyphase/pixelport/logger"
)

// ImageWriter implements the PixelRenderer interface.
type ImageWriter struct {
	prefix string

	// integer upscale applied to saved frames
	scale int

	img      *image.RGBA
	frameNum int
	dirty    bool
}

// New is the preferred method of initialisation for the ImageWriter type.
// Saved files are named <prefix>_<frame>.png.
func New(prefix string, scale int) (*ImageWriter, error) {
	if scale < 1 {
		return nil, curated.Errorf("imagewriter: bad scale %d", scale)
	}
	return &ImageWriter{
		prefix: prefix,
		scale:  scale,
	}, nil
}

// Resize implements the PixelRenderer interface.
func (iw *ImageWriter) Resize(mode vidmode.Mode) error {
	iw.img = image.NewRGBA(image.Rect(0, 0, mode.HPixels, mode.VPixels))
	return nil
}

// NewFrame implements the PixelRenderer interface. The previous frame, if
// any, is saved.
func (iw *ImageWriter) NewFrame(frameNum int) error {
	if err := iw.save(); err != nil {
		return err
	}
	iw.frameNum = frameNum
	return nil
}

// NewScanline implements the PixelRenderer interface.
func (iw *ImageWriter) NewScanline(row int) error {
	return nil
}

// SetPixel implements the PixelRenderer interface.
func (iw *ImageWriter) SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error {
	if !displayEnable {
		return nil
	}
	iw.img.SetRGBA(col, row, color.RGBA{R: red, G: green, B: blue, A: 255})
	iw.dirty = true
	return nil
}

// EndRendering implements the PixelRenderer interface. The final frame is
// saved.
func (iw *ImageWriter) EndRendering() error {
	return iw.save()
}

func (iw *ImageWriter) save() (rerr error) {
	if !iw.dirty {
		return nil
	}

	out := image.Image(iw.img)
	if iw.scale > 1 {
		b := iw.img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*iw.scale, b.Dy()*iw.scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), iw.img, b, draw.Src, nil)
		out = dst
	}

	filename := fmt.Sprintf("%s_%04d.png", iw.prefix, iw.frameNum)
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("imagewriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("imagewriter: %v", err)
		}
	}()

	if err := png.Encode(f, out); err != nil {
		return curated.Errorf("imagewriter: %v", err)
	}

	logger.Logf("imagewriter", "frame saved to %s", filename)
	return nil
}
