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

import "github.com/polyphase/pixelport/curated"

// PolyTable is an opaque set of polyphase filter coefficients. Each phase
// holds four taps in units of 1/128; the taps of every phase must sum to
// exactly 128 so that filtering preserves overall brightness.
//
// The content of the table is owned by whoever configures the pipeline. The
// scaler only checks the structural invariants.
type PolyTable struct {
	Coeffs [][4]int16
}

// Validate the structural invariants of the table.
func (p *PolyTable) Validate() error {
	if len(p.Coeffs) == 0 {
		return curated.Errorf("scaler: polyphase table has no phases")
	}

	for i, taps := range p.Coeffs {
		sum := 0
		for _, c := range taps {
			sum += int(c)
		}
		if sum != 128 {
			return curated.Errorf("scaler: polyphase phase %d sums to %d, not 128", i, sum)
		}
	}

	return nil
}

// Phases in the table.
func (p *PolyTable) Phases() int {
	return len(p.Coeffs)
}

// IdentityPoly returns a coefficient table whose every phase passes the
// centre tap through unchanged. Useful for testing: polyphase filtering with
// this table behaves exactly like nearest neighbour sampling.
func IdentityPoly(phases int) *PolyTable {
	p := &PolyTable{Coeffs: make([][4]int16, phases)}
	for i := range p.Coeffs {
		p.Coeffs[i] = [4]int16{0, 128, 0, 0}
	}
	return p
}
