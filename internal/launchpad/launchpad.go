// Package launchpad drives Novation Launchpad grid controllers: it maps
// device-agnostic light and fader state onto the SysEx/MIDI byte sequences
// of a specific hardware variant and keeps a cache of what the hardware
// already shows so redundant traffic is skipped.
package launchpad

// Button and LED addresses in the programmer layout. The 8x8 pad block
// occupies rows 1-8 and columns 1-8 (addresses 11-18 up to 81-88); the
// scene column sits at column 9 and the logo above it.
const (
	ButtonScene1 = 89 // 1/4
	ButtonScene2 = 79
	ButtonScene3 = 69
	ButtonScene4 = 59
	ButtonScene5 = 49
	ButtonScene6 = 39
	ButtonScene7 = 29
	ButtonScene8 = 19 // 1/32T

	Fader1 = 21
	Fader2 = 22
	Fader3 = 23
	Fader4 = 24
	Fader5 = 25
	Fader6 = 26
	Fader7 = 27
	Fader8 = 28

	ButtonLogo = 99

	ButtonStateOff = 0
	ButtonStateOn  = 1
	ButtonStateHi  = 4
)

const (
	// NumLEDs is the size of the addressable LED space (addresses 0-99).
	NumLEDs = 100

	// NumFaders is the number of virtual fader lanes.
	NumFaders = 8

	// FaderHeight is the number of pads in one fader strip.
	FaderHeight = 8

	padBlockFirstRow = 1
	padBlockLastRow  = 8
	padBlockFirstCol = 1
	padBlockLastCol  = 8
)

// sceneButtons is the fixed set of scene trigger addresses. Non-pro units
// map these physical buttons to Note events instead of Control Changes;
// the dispatch in Surface.SetTrigger is driven off this table.
var sceneButtons = map[int]bool{
	ButtonScene1: true,
	ButtonScene2: true,
	ButtonScene3: true,
	ButtonScene4: true,
	ButtonScene5: true,
	ButtonScene6: true,
	ButtonScene7: true,
	ButtonScene8: true,
}

// IsSceneButton reports whether cc addresses one of the eight scene triggers.
func IsSceneButton(cc int) bool {
	return sceneButtons[cc]
}

// inPadBlock reports whether address is one of the 64 main grid pads.
func inPadBlock(address int) bool {
	row := address / 10
	col := address % 10
	return row >= padBlockFirstRow && row <= padBlockLastRow &&
		col >= padBlockFirstCol && col <= padBlockLastCol
}

// ControlMode is the top-level interaction mode of the surface. The mapping
// from a mode to what a pad column represents lives in the host; the values
// are shared vocabulary.
type ControlMode int

const (
	ModeOff ControlMode = iota
	ModeRecArm
	ModeTrackSelect
	ModeMute
	ModeSolo
	ModeStopClip
)

func (m ControlMode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeRecArm:
		return "rec_arm"
	case ModeTrackSelect:
		return "track_select"
	case ModeMute:
		return "mute"
	case ModeSolo:
		return "solo"
	case ModeStopClip:
		return "stop_clip"
	default:
		return "unknown"
	}
}
