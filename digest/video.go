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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/polyphase/pixelport/hardware/vidmode"
)

const pixelDepth = 3

// Video is a PixelRenderer implementation that fingerprints the composited
// video stream. Every frame is hashed with the hash of the frame before it,
// so the final value represents the whole run.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	stride   int
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Resize implements the PixelRenderer interface.
func (dig *Video) Resize(mode vidmode.Mode) error {
	// the first few bytes hold the previous frame's digest value
	dig.stride = mode.HPixels * pixelDepth
	dig.pixels = make([]byte, sha1.Size+dig.stride*mode.VPixels)
	return nil
}

// NewFrame implements the PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	dig.fold()
	dig.frameNum = frameNum
	return nil
}

// NewScanline implements the PixelRenderer interface.
func (dig *Video) NewScanline(row int) error {
	return nil
}

// SetPixel implements the PixelRenderer interface.
func (dig *Video) SetPixel(col int, row int, red byte, green byte, blue byte, displayEnable bool) error {
	if !displayEnable {
		return nil
	}

	i := sha1.Size + row*dig.stride + col*pixelDepth
	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = red
		dig.pixels[i+1] = green
		dig.pixels[i+2] = blue
	}
	return nil
}

// EndRendering implements the PixelRenderer interface. The final frame is
// folded into the digest.
func (dig *Video) EndRendering() error {
	dig.fold()
	return nil
}

// fold chains the previous fingerprint into the head of the pixel data and
// rehashes.
func (dig *Video) fold() {
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
}
