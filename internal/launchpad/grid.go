package launchpad

import (
	"fmt"
	"strings"
)

// colorUnknown marks a cache slot whose hardware state cannot be assumed,
// forcing a resend on the next flush.
const colorUnknown = -1

// maxLEDsPerFrame bounds how many LED/color pairs go into one SysEx frame.
const maxLEDsPerFrame = 32

// PadGrid caches the color last sent for every addressable LED and emits
// only the entries that changed. Transmission uses the variants' shared
// single-LED SysEx command (0A <led> <color>), batched per flush.
type PadGrid struct {
	send    func(payload string)
	current [NumLEDs]int
	next    [NumLEDs]int
}

// NewPadGrid returns a grid writing through send, which receives SysEx
// payloads without header or terminator. The cache starts unknown, so the
// first flush transmits every LED that was set.
func NewPadGrid(send func(payload string)) *PadGrid {
	g := &PadGrid{send: send}
	for i := range g.current {
		g.current[i] = colorUnknown
		g.next[i] = ColorBlack
	}
	return g
}

// SetLight stages a color for one LED. Out-of-range addresses are ignored;
// the hardware skips gaps in the address space anyway.
func (g *PadGrid) SetLight(address, color int) {
	if address < 0 || address >= NumLEDs {
		return
	}
	if color < 0 {
		color = ColorBlack
	}
	g.next[address] = color
}

// Light returns the staged color for one LED.
func (g *PadGrid) Light(address int) int {
	if address < 0 || address >= NumLEDs {
		return ColorBlack
	}
	return g.next[address]
}

// Invalidate forgets the sent state for every address in [from, to], so
// those LEDs are retransmitted on the next flush even if unchanged.
func (g *PadGrid) Invalidate(from, to int) {
	for i := max(from, 0); i <= to && i < NumLEDs; i++ {
		g.current[i] = colorUnknown
	}
}

// InvalidatePadBlock forgets the sent state of the 64 main grid pads,
// leaving peripheral buttons (scenes, top row, logo) untouched.
func (g *PadGrid) InvalidatePadBlock() {
	for address := 0; address < NumLEDs; address++ {
		if inPadBlock(address) {
			g.current[address] = colorUnknown
		}
	}
}

// dirty reports whether an address needs transmission.
func (g *PadGrid) dirty(address int) bool {
	return g.next[address] != g.current[address]
}

// Flush transmits all dirty LEDs and marks them clean. LEDs whose staged
// color equals the last sent one produce no traffic.
func (g *PadGrid) Flush() {
	var b strings.Builder
	count := 0

	emit := func() {
		if count > 0 {
			g.send(b.String())
			b.Reset()
			count = 0
		}
	}

	for address := 0; address < NumLEDs; address++ {
		if !g.dirty(address) {
			continue
		}
		if count > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0A %02X %02X", address, g.next[address])
		g.current[address] = g.next[address]
		count++
		if count == maxLEDsPerFrame {
			emit()
		}
	}
	emit()
}
