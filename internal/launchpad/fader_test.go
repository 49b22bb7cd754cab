package launchpad

import "testing"

func newTestFader(index int) (*VirtualFader, *PadGrid) {
	g := NewPadGrid(func(string) {})
	return NewVirtualFader(g, index), g
}

// litRows returns which rows of the fader's strip are currently staged
// with a non-black color, bottom row first.
func litRows(f *VirtualFader, g *PadGrid) []bool {
	rows := make([]bool, FaderHeight)
	for row := 0; row < FaderHeight; row++ {
		rows[row] = g.Light(f.padAddress(row)) != ColorBlack
	}
	return rows
}

func countLit(rows []bool) int {
	n := 0
	for _, lit := range rows {
		if lit {
			n++
		}
	}
	return n
}

func TestLinearFaderBoundaries(t *testing.T) {
	f, g := newTestFader(0)
	f.Setup(ColorGreen, false)

	f.SetValue(FaderValueMin)
	if n := countLit(litRows(f, g)); n != 0 {
		t.Errorf("minimum value lights %d pads, want 0", n)
	}

	f.SetValue(FaderValueMax)
	if n := countLit(litRows(f, g)); n != FaderHeight {
		t.Errorf("maximum value lights %d pads, want %d", n, FaderHeight)
	}
}

func TestLinearFaderMonotonic(t *testing.T) {
	f, g := newTestFader(3)
	f.Setup(ColorRed, false)

	prev := 0
	for v := FaderValueMin; v <= FaderValueMax; v++ {
		f.SetValue(v)
		n := countLit(litRows(f, g))
		if n < prev {
			t.Fatalf("lit count dropped from %d to %d at value %d", prev, n, v)
		}
		// Lit pads are contiguous from the bottom.
		rows := litRows(f, g)
		for row := 0; row < n; row++ {
			if !rows[row] {
				t.Fatalf("gap in strip at value %d: %v", v, rows)
			}
		}
		prev = n
	}
}

func TestLinearFaderClampsValue(t *testing.T) {
	f, g := newTestFader(0)
	f.Setup(ColorBlue, false)

	f.SetValue(4096)
	if f.Value() != FaderValueMax {
		t.Errorf("Value() = %d after overdrive, want %d", f.Value(), FaderValueMax)
	}
	if n := countLit(litRows(f, g)); n != FaderHeight {
		t.Errorf("overdriven value lights %d pads", n)
	}

	f.SetValue(-50)
	if f.Value() != FaderValueMin {
		t.Errorf("Value() = %d after underdrive, want %d", f.Value(), FaderValueMin)
	}
}

func TestPanFaderCenter(t *testing.T) {
	f, g := newTestFader(2)
	f.Setup(ColorAmber, true)
	f.SetValue(faderValueMid)

	rows := litRows(f, g)
	if countLit(rows) != 1 || !rows[3] {
		t.Fatalf("centered pan fader rows = %v, want only row 3", rows)
	}
	if got := g.Light(f.padAddress(3)); got != colorFaderCenter {
		t.Errorf("center pad color = %d, want %d", got, colorFaderCenter)
	}
}

func TestPanFaderMirrored(t *testing.T) {
	f, g := newTestFader(5)
	f.Setup(ColorCyan, true)

	for _, k := range []int{1, 16, 40, 63} {
		f.SetValue(faderValueMid - k)
		below := litRows(f, g)
		f.SetValue(faderValueMid + k)
		above := litRows(f, g)

		if countLit(below) != countLit(above) {
			t.Errorf("k=%d: %d pads below vs %d above", k, countLit(below), countLit(above))
		}
		for row := 0; row < FaderHeight; row++ {
			if below[row] != above[FaderHeight-1-row] {
				t.Errorf("k=%d not mirrored: below=%v above=%v", k, below, above)
				break
			}
		}
		// Direction must be distinguishable.
		same := true
		for row := range below {
			if below[row] != above[row] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("k=%d: identical patterns for both directions", k)
		}
	}
}

func TestPanFaderExtremes(t *testing.T) {
	f, g := newTestFader(0)
	f.Setup(ColorRed, true)

	f.SetValue(FaderValueMin)
	rows := litRows(f, g)
	if !rows[0] || !rows[1] || !rows[2] || !rows[3] || rows[4] {
		t.Errorf("hard left rows = %v", rows)
	}

	f.SetValue(FaderValueMax)
	rows = litRows(f, g)
	if rows[3] || !rows[4] || !rows[5] || !rows[6] || !rows[7] {
		t.Errorf("hard right rows = %v", rows)
	}
}

func TestSetupResetsState(t *testing.T) {
	f, g := newTestFader(4)

	f.Setup(ColorGreen, true)
	f.SetValue(12)

	// A fresh setup plus the same value fully determines the pattern,
	// regardless of what was rendered before.
	f.Setup(ColorBlue, false)
	f.SetValue(100)
	want := litRows(f, g)

	f.Setup(ColorGreen, true)
	f.SetValue(3)
	f.Setup(ColorBlue, false)
	f.SetValue(100)
	got := litRows(f, g)

	for row := range want {
		if want[row] != got[row] {
			t.Fatalf("pattern depends on prior state: %v vs %v", want, got)
		}
	}
}

func TestSetupBlanksWithColorNone(t *testing.T) {
	f, g := newTestFader(1)
	f.Setup(ColorRed, false)
	f.SetValue(FaderValueMax)

	f.Setup(ColorNone, false)
	if n := countLit(litRows(f, g)); n != 0 {
		t.Errorf("blanked fader still lights %d pads", n)
	}
}

func TestSetupForcesRedraw(t *testing.T) {
	f, g := newTestFader(6)
	f.Setup(ColorRed, false)
	f.SetValue(FaderValueMax)
	g.Flush()

	// Same colors staged again, but setup invalidated the strip: every
	// pad must be retransmitted.
	f.Setup(ColorRed, false)
	f.SetValue(FaderValueMax)
	for row := 0; row < FaderHeight; row++ {
		if !g.dirty(f.padAddress(row)) {
			t.Errorf("row %d not forced dirty by setup", row)
		}
	}
}
