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

// Package signal defines the pixel and audio sample types that move between
// the stages of the pipeline.
package signal

// RGB is a full colour pixel sample, 8 bits per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Border is the colour forced onto the output whenever no stage covers the
// current raster position. The output is never undefined.
var Border = RGB{}

// CorePixel is one sample of the core's native image, tagged with the core's
// own display enable. Pixels with DisplayEnable false carry no colour
// information.
type CorePixel struct {
	RGB
	DisplayEnable bool
}

// AudioSample is one stereo sample pair in the target sample rate's domain.
type AudioSample struct {
	Left  int16
	Right int16
}
