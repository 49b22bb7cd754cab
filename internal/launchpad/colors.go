package launchpad

// Palette indices shared by the RGB Launchpad variants. Only the handful
// the driver itself needs are named here; hosts pass their own indices.
const (
	// ColorNone is the sentinel for "no color": passing it to a fader
	// setup blanks the lane.
	ColorNone = -1

	ColorBlack  = 0
	ColorGrayLo = 1
	ColorGrayHi = 2
	ColorWhite  = 3
	ColorRed    = 5
	ColorAmber  = 9
	ColorYellow = 13
	ColorGreen  = 21
	ColorCyan   = 33
	ColorBlue   = 45

	// colorFaderCenter marks the center pad of a pan fader sitting
	// exactly at the midpoint.
	colorFaderCenter = ColorWhite
)
