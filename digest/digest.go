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

// Package digest fingerprints the pipeline's output streams. The video and
// audio types produce chained SHA-1 hashes, so a single value at the end of
// a run stands in for the entire stream. Used by the regression run mode and
// by tests.
package digest

// Digest implementations compute a running fingerprint of an output stream.
type Digest interface {
	Hash() string
	ResetDigest()
}
