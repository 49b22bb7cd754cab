package launchpad

import (
	"strings"
	"testing"
)

func newTestGrid() (*PadGrid, *[]string) {
	var sent []string
	g := NewPadGrid(func(payload string) {
		sent = append(sent, payload)
	})
	return g, &sent
}

// drain flushes the initial all-unknown cache so tests start clean.
func drain(g *PadGrid, sent *[]string) {
	g.Flush()
	*sent = nil
}

func TestGridFlushOnlyDirty(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	g.SetLight(11, ColorRed)
	g.SetLight(12, ColorBlack) // unchanged after drain
	g.Flush()

	if len(*sent) != 1 {
		t.Fatalf("flush sent %d frames, want 1", len(*sent))
	}
	if got, want := (*sent)[0], "0A 0B 05"; got != want {
		t.Errorf("payload = %q, want %q", got, want)
	}

	// Second flush with no changes is silent.
	*sent = nil
	g.Flush()
	if len(*sent) != 0 {
		t.Errorf("clean flush sent %d frames, want 0", len(*sent))
	}
}

func TestGridResendOnlyOnChange(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	g.SetLight(45, ColorGreen)
	g.Flush()
	*sent = nil

	g.SetLight(45, ColorGreen) // same value, no traffic
	g.Flush()
	if len(*sent) != 0 {
		t.Fatalf("unchanged light resent: %v", *sent)
	}

	g.SetLight(45, ColorBlue)
	g.Flush()
	if len(*sent) != 1 {
		t.Fatalf("changed light not sent")
	}
}

func TestGridInvalidateForcesResend(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	g.SetLight(33, ColorAmber)
	g.Flush()
	*sent = nil

	g.Invalidate(33, 33)
	g.Flush()
	if len(*sent) != 1 || !strings.Contains((*sent)[0], "0A 21 09") {
		t.Errorf("invalidated light not resent: %v", *sent)
	}
}

func TestGridInvalidatePadBlockBoundaries(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	g.InvalidatePadBlock()

	// Corners of the pad block must be dirty again.
	for _, address := range []int{11, 18, 81, 88} {
		if !g.dirty(address) {
			t.Errorf("pad %d not invalidated", address)
		}
	}
	// Scene column, top row and logo stay clean.
	for _, address := range []int{ButtonScene1, ButtonScene8, 91, 98, ButtonLogo, 10, 20} {
		if g.dirty(address) {
			t.Errorf("peripheral %d invalidated", address)
		}
	}
}

func TestGridFlushBatches(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			g.SetLight(row*10+col, ColorCyan)
		}
	}
	g.Flush()

	total := 0
	for _, payload := range *sent {
		n := strings.Count(payload, "0A ")
		if n > maxLEDsPerFrame {
			t.Errorf("frame carries %d LEDs, max is %d", n, maxLEDsPerFrame)
		}
		total += n
	}
	if total != 64 {
		t.Errorf("flushed %d LEDs, want 64", total)
	}
}

func TestGridIgnoresOutOfRange(t *testing.T) {
	g, sent := newTestGrid()
	drain(g, sent)

	g.SetLight(-1, ColorRed)
	g.SetLight(NumLEDs, ColorRed)
	g.Flush()
	if len(*sent) != 0 {
		t.Errorf("out-of-range set produced traffic: %v", *sent)
	}
	if got := g.Light(-1); got != ColorBlack {
		t.Errorf("Light(-1) = %d", got)
	}
}
