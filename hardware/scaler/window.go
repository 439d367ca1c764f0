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

package scaler

import (
	"fmt"

	"github.com/polyphase/pixelport/curated"
	"github.com/polyphase/pixelport/hardware/vidmode"
)

// Window is the crop rectangle inside the output raster to which the scaled
// image is confined. Bounds are inclusive at both ends: a coordinate equal
// to HMax is inside the window, one past it is not.
//
// A Window is derived once, when the video mode or crop flag changes, and is
// never mutated mid-frame.
type Window struct {
	HMin int
	HMax int
	VMin int
	VMax int
}

func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.HMin, w.VMin, w.HMax, w.VMax)
}

// Width of the window in output pixels.
func (w Window) Width() int {
	return w.HMax - w.HMin + 1
}

// Height of the window in output pixels.
func (w Window) Height() int {
	return w.VMax - w.VMin + 1
}

// Contains returns true if the output position is inside the window.
func (w Window) Contains(col int, row int) bool {
	return col >= w.HMin && col <= w.HMax && row >= w.VMin && row <= w.VMax
}

// Validate the window against the mode it is to be used with. An
// inconsistent window is a configuration error and must be rejected before
// it becomes live.
func (w Window) Validate(mode vidmode.Mode) error {
	if w.HMin < 0 || w.VMin < 0 {
		return curated.Errorf("scaler: window %v: negative origin", w)
	}
	if w.HMin > w.HMax || w.VMin > w.VMax {
		return curated.Errorf("scaler: window %v: inverted bounds", w)
	}
	if w.HMax >= mode.HPixels || w.VMax >= mode.VPixels {
		return curated.Errorf("scaler: window %v: outside %s raster", w, mode.Name)
	}
	return nil
}

// FullWindow is the window covering the entire visible raster of the mode.
func FullWindow(mode vidmode.Mode) Window {
	return Window{HMax: mode.HPixels - 1, VMax: mode.VPixels - 1}
}

// DeriveWindow computes the crop window for a mode from the crop flag and
// the core's native extent. With crop off the image is stretched to the full
// raster. With crop on the window is the largest integer multiple of the
// native extent that fits the raster, centered; this preserves the core's
// pixel aspect at the cost of a border.
func DeriveWindow(mode vidmode.Mode, crop bool, nativeW int, nativeH int) Window {
	if !crop || nativeW <= 0 || nativeH <= 0 {
		return FullWindow(mode)
	}

	scale := mode.HPixels / nativeW
	if s := mode.VPixels / nativeH; s < scale {
		scale = s
	}
	if scale < 1 {
		return FullWindow(mode)
	}

	w := nativeW * scale
	h := nativeH * scale
	x := (mode.HPixels - w) / 2
	y := (mode.VPixels - h) / 2

	return Window{HMin: x, HMax: x + w - 1, VMin: y, VMax: y + h - 1}
}
