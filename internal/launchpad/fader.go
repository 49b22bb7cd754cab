package launchpad

// Fader value range. Values outside are clamped, never rejected: a
// misbehaving host slider must not corrupt hardware state.
const (
	FaderValueMin = 0
	FaderValueMax = 127
	faderValueMid = 64

	// faderBucket is the width of one pad's slice of the value range.
	faderBucket = 16
)

// VirtualFader emulates a continuous fader on one vertical strip of eight
// pads. Lane index i owns the pads of column i+1, rows 1-8 (addresses
// 11+i up to 81+i). State changes only stage colors in the shared grid;
// the actual I/O happens at the next flush.
type VirtualFader struct {
	grid  *PadGrid
	index int
	color int
	isPan bool
	value int
}

// NewVirtualFader binds a fader to its lane on the shared pad grid.
func NewVirtualFader(grid *PadGrid, index int) *VirtualFader {
	return &VirtualFader{grid: grid, index: index, color: ColorNone}
}

// Setup stores the color and layout and forces the whole strip to redraw
// on the next flush, discarding any prior rendered state. ColorNone blanks
// the lane.
func (f *VirtualFader) Setup(color int, isPan bool) {
	f.color = color
	f.isPan = isPan
	for row := 0; row < FaderHeight; row++ {
		address := f.padAddress(row)
		f.grid.Invalidate(address, address)
	}
	f.render()
}

// SetValue stores a new level, clamped into the valid range, and restages
// the strip's illumination pattern.
func (f *VirtualFader) SetValue(value int) {
	if value < FaderValueMin {
		value = FaderValueMin
	} else if value > FaderValueMax {
		value = FaderValueMax
	}
	f.value = value
	f.render()
}

// Value returns the current clamped level.
func (f *VirtualFader) Value() int {
	return f.value
}

// padAddress maps a strip row (0 = bottom) to the LED address.
func (f *VirtualFader) padAddress(row int) int {
	return (row+1)*10 + f.index + 1
}

func (f *VirtualFader) render() {
	if f.isPan {
		f.renderPan()
		return
	}
	f.renderLinear()
}

// renderLinear lights pads bottom-up. Zero is all off; values 1-127 fall
// into eight 16-wide buckets so full scale lights the whole strip.
func (f *VirtualFader) renderLinear() {
	lit := 0
	if f.value > FaderValueMin {
		lit = (f.value + faderBucket - 1) / faderBucket
	}
	for row := 0; row < FaderHeight; row++ {
		f.grid.SetLight(f.padAddress(row), f.rowColor(row < lit))
	}
}

// renderPan shows deviation from center. Below the midpoint the strip
// fills from the center boundary downward, above it upward; exactly at the
// midpoint only the center pad lights, in the distinct center color.
func (f *VirtualFader) renderPan() {
	const centerRow = FaderHeight/2 - 1

	lo, hi := -1, -1
	switch {
	case f.value < faderValueMid:
		lo = f.value / faderBucket
		hi = centerRow
	case f.value > faderValueMid:
		lo = centerRow + 1
		hi = centerRow + 1 + (f.value-faderValueMid-1)/faderBucket
	}

	for row := 0; row < FaderHeight; row++ {
		switch {
		case f.value == faderValueMid && row == centerRow:
			f.grid.SetLight(f.padAddress(row), f.rowColor(true))
		case lo >= 0 && row >= lo && row <= hi:
			f.grid.SetLight(f.padAddress(row), f.rowColor(true))
		default:
			f.grid.SetLight(f.padAddress(row), ColorBlack)
		}
	}
}

// rowColor resolves a pad's color: black when unlit or the lane is
// blanked, the center color for a centered pan fader, the lane color
// otherwise.
func (f *VirtualFader) rowColor(lit bool) int {
	if !lit || f.color == ColorNone {
		return ColorBlack
	}
	if f.isPan && f.value == faderValueMid {
		return colorFaderCenter
	}
	return f.color
}
