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

package vidmode

import "github.com/polyphase/pixelport/curated"

// Table is the list of modes the pipeline can be asked to output. Timings are
// the CEA-861 figures for each VIC.
var Table = []Mode{
	{
		VIC: 1, Name: "640x480p60",
		HPixels: 640, HFrontPorch: 16, HSyncPulse: 96, HBackPorch: 48,
		VPixels: 480, VFrontPorch: 10, VSyncPulse: 2, VBackPorch: 33,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 25175, Aspect: Aspect4x3, PixelRepetition: 1,
	},
	{
		VIC: 2, Name: "720x480p60",
		HPixels: 720, HFrontPorch: 16, HSyncPulse: 62, HBackPorch: 60,
		VPixels: 480, VFrontPorch: 9, VSyncPulse: 6, VBackPorch: 30,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect4x3, PixelRepetition: 1,
	},
	{
		VIC: 3, Name: "720x480p60w",
		HPixels: 720, HFrontPorch: 16, HSyncPulse: 62, HBackPorch: 60,
		VPixels: 480, VFrontPorch: 9, VSyncPulse: 6, VBackPorch: 30,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect16x9, PixelRepetition: 1,
	},
	{
		VIC: 8, Name: "1440x240p60",
		HPixels: 1440, HFrontPorch: 38, HSyncPulse: 124, HBackPorch: 114,
		VPixels: 240, VFrontPorch: 4, VSyncPulse: 3, VBackPorch: 15,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect4x3, PixelRepetition: 2,
	},
	{
		VIC: 17, Name: "720x576p50",
		HPixels: 720, HFrontPorch: 12, HSyncPulse: 64, HBackPorch: 68,
		VPixels: 576, VFrontPorch: 5, VSyncPulse: 5, VBackPorch: 39,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect4x3, PixelRepetition: 1,
	},
	{
		VIC: 18, Name: "720x576p50w",
		HPixels: 720, HFrontPorch: 12, HSyncPulse: 64, HBackPorch: 68,
		VPixels: 576, VFrontPorch: 5, VSyncPulse: 5, VBackPorch: 39,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect16x9, PixelRepetition: 1,
	},
	{
		VIC: 23, Name: "1440x288p50",
		HPixels: 1440, HFrontPorch: 24, HSyncPulse: 126, HBackPorch: 138,
		VPixels: 288, VFrontPorch: 2, VSyncPulse: 3, VBackPorch: 19,
		HSyncNegative: true, VSyncNegative: true,
		PixelClockKHz: 27000, Aspect: Aspect4x3, PixelRepetition: 2,
	},
	{
		VIC: 4, Name: "1280x720p60",
		HPixels: 1280, HFrontPorch: 110, HSyncPulse: 40, HBackPorch: 220,
		VPixels: 720, VFrontPorch: 5, VSyncPulse: 5, VBackPorch: 20,
		PixelClockKHz: 74250, Aspect: Aspect16x9, PixelRepetition: 1,
	},
	{
		VIC: 19, Name: "1280x720p50",
		HPixels: 1280, HFrontPorch: 440, HSyncPulse: 40, HBackPorch: 220,
		VPixels: 720, VFrontPorch: 5, VSyncPulse: 5, VBackPorch: 20,
		PixelClockKHz: 74250, Aspect: Aspect16x9, PixelRepetition: 1,
	},
	{
		VIC: 16, Name: "1920x1080p60",
		HPixels: 1920, HFrontPorch: 88, HSyncPulse: 44, HBackPorch: 148,
		VPixels: 1080, VFrontPorch: 4, VSyncPulse: 5, VBackPorch: 36,
		PixelClockKHz: 148500, Aspect: Aspect16x9, PixelRepetition: 1,
	},
	{
		VIC: 31, Name: "1920x1080p50",
		HPixels: 1920, HFrontPorch: 528, HSyncPulse: 44, HBackPorch: 148,
		VPixels: 1080, VFrontPorch: 4, VSyncPulse: 5, VBackPorch: 36,
		PixelClockKHz: 148500, Aspect: Aspect16x9, PixelRepetition: 1,
	},
}

func init() {
	// an inconsistent catalogue entry must never become live. the equivalent
	// of a static assertion in the hardware description
	for _, m := range Table {
		if err := m.Validate(); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the Mode for the given protocol identification code.
func Lookup(vic int) (Mode, error) {
	for _, m := range Table {
		if m.VIC == vic {
			return m, nil
		}
	}
	return Mode{}, curated.Errorf("vidmode: no mode with VIC %d", vic)
}

// LookupName returns the named Mode.
func LookupName(name string) (Mode, error) {
	for _, m := range Table {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, curated.Errorf("vidmode: no mode named %s", name)
}
