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

package raster

import "fmt"

// Coords identifies a single tick of the output raster. A good way of
// thinking about coordinates is as a measurement of time: they define when
// something happened relative to the start of the frame sequence.
type Coords struct {
	Frame  int
	Row    int
	Column int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Row: %03d  Column: %03d", c.Frame, c.Row, c.Column)
}

// Equal compares two instances of Coords and returns true if both are equal.
func Equal(a, b Coords) bool {
	return a.Frame == b.Frame && a.Row == b.Row && a.Column == b.Column
}

// GreaterThan returns true if a occurred after b.
func GreaterThan(a, b Coords) bool {
	return a.Frame > b.Frame ||
		(a.Frame == b.Frame && a.Row > b.Row) ||
		(a.Frame == b.Frame && a.Row == b.Row && a.Column > b.Column)
}

// Diff returns the number of ticks between a and b for the given mode. A
// negative value means a occurred before b.
func Diff(a, b Coords, htotal int, vtotal int) int {
	at := (a.Frame*vtotal+a.Row)*htotal + a.Column
	bt := (b.Frame*vtotal+b.Row)*htotal + b.Column
	return at - bt
}
