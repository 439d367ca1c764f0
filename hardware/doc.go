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

// Package hardware models the video output stage of a retro-computing
// hardware core. The Pipeline type is the composition root: it wires the
// timing generator, the line-buffered scaler, the overlay compositor, the
// clock domain bridges and the audio clock regenerator into one unit and
// fans the result out to pixel and audio consumers.
//
// The subpackages model the individual blocks and can be used on their own.
// Consumers implement the PixelRenderer and AudioMixer interfaces defined
// in this package.
package hardware
