package launchpad

import (
	"fmt"
	"log/slog"

	"github.com/PixPMusic/padsurface/internal/sysex"
)

// Surface is the control surface for one physical unit. All mutation is
// expected to happen on a single control goroutine; the only asynchronous
// entry point is HandleSysEx, which parses and logs without touching
// fader, grid or mode state.
type Surface struct {
	definition ControllerDefinition
	output     Output
	logger     *slog.Logger

	grid        *PadGrid
	faders      [NumFaders]*VirtualFader
	programMode bool
}

// NewSurface wires a surface to its hardware variant and transport. The
// device inquiry query goes out immediately, before any other traffic, so
// the firmware version is logged early. HandleSysEx must be registered as
// the transport's SysEx callback to receive the answer.
func NewSurface(definition ControllerDefinition, output Output, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Surface{
		definition: definition,
		output:     output,
		logger:     logger,
	}
	s.grid = NewPadGrid(s.SendSysEx)
	for i := range s.faders {
		s.faders[i] = definition.CreateVirtualFader(s.grid, i)
	}

	s.output.SendSysEx(sysex.InquiryRequest)
	return s
}

// IsPro reports whether the unit is a Pro model with additional buttons.
func (s *Surface) IsPro() bool {
	return s.definition.IsPro()
}

// EnterProgramMode hands pad illumination over to the host. The cached
// state of the 64 main pads is invalidated so the next flush repaints
// them; peripheral buttons keep their last-known state since program mode
// only reassigns the pad block. Calling this twice is harmless.
func (s *Surface) EnterProgramMode() {
	s.SendSysEx(s.definition.ProgramModeCommand())
	s.grid.InvalidatePadBlock()
	s.programMode = true
}

// EnterStandaloneMode reverts the unit to its built-in behavior. No cache
// invalidation: the unit repaints itself anyway.
func (s *Surface) EnterStandaloneMode() {
	s.SendSysEx(s.definition.StandaloneModeCommand())
	s.programMode = false
}

// InProgramMode reports whether the host currently owns the pads.
func (s *Surface) InProgramMode() bool {
	return s.programMode
}

// SetupFader sets the color and layout of one fader lane (0-7). Passing
// ColorNone blanks the lane.
func (s *Surface) SetupFader(index, color int, isPan bool) {
	s.faders[index].Setup(color, isPan)
}

// SetFaderValue sets the level of one fader lane (0-7).
func (s *Surface) SetFaderValue(index, value int) {
	s.faders[index].SetValue(value)
}

// ClearFaders blanks all fader lanes.
func (s *Surface) ClearFaders() {
	for i := 0; i < NumFaders; i++ {
		s.SetupFader(i, ColorNone, false)
	}
}

// SetTrigger lights a trigger button. Non-pro units wire the scene buttons
// to Note events, everything else speaks Control Change; the split is a
// hardware fact, driven off the scene address table.
func (s *Surface) SetTrigger(channel, cc, state int) {
	if !s.IsPro() && IsSceneButton(cc) {
		s.output.SendNote(channel, cc, state)
		return
	}
	s.output.SendCC(channel, cc, state)
}

// Flush transmits all dirty light state to the hardware.
func (s *Surface) Flush() {
	s.grid.Flush()
}

// Shutdown blanks the logo and scene triggers, flushes the remaining dirty
// lights, and only then reverts the unit to standalone mode. The order
// matters: switching first would let the standalone firmware repaint the
// pads and race the blanking.
func (s *Surface) Shutdown() {
	s.definition.SetLogoColor(s, ColorBlack)

	s.SetTrigger(0, ButtonScene1, ButtonStateOff)
	s.SetTrigger(0, ButtonScene2, ButtonStateOff)
	s.SetTrigger(0, ButtonScene3, ButtonStateOff)
	s.SetTrigger(0, ButtonScene4, ButtonStateOff)
	s.SetTrigger(0, ButtonScene5, ButtonStateOff)
	s.SetTrigger(0, ButtonScene6, ButtonStateOff)
	s.SetTrigger(0, ButtonScene7, ButtonStateOff)
	s.SetTrigger(0, ButtonScene8, ButtonStateOff)

	s.Flush()

	s.EnterStandaloneMode()
}

// SendSysEx wraps a payload in the variant's header and the terminator and
// hands the frame to the transport.
func (s *Surface) SendSysEx(payload string) {
	s.output.SendSysEx(sysex.BuildMessage(s.definition.SysExHeader(), payload))
}

// HandleSysEx is the inbound SysEx entry point, consuming one spaced-hex
// frame per call. Anything that is not a well-formed device inquiry
// response is dropped silently; unrelated traffic on the wire is expected
// and harmless.
func (s *Surface) HandleSysEx(frame string) {
	data, err := sysex.FromHexString(frame)
	if err != nil {
		return
	}

	resp := sysex.ParseInquiryResponse(data)
	if resp.Valid {
		s.handleDeviceInquiryResponse(resp)
	}
}

// handleDeviceInquiryResponse logs the firmware revision. The hardware
// zero-pads single-digit major versions, so one leading '0' is stripped
// from the concatenated digits before reporting.
func (s *Surface) handleDeviceInquiryResponse(resp sysex.DeviceInquiryResponse) {
	if len(resp.Revision) != 4 {
		return
	}
	version := fmt.Sprintf("%d%d%d%d",
		resp.Revision[0], resp.Revision[1], resp.Revision[2], resp.Revision[3])
	if version[0] == '0' {
		version = version[1:]
	}
	s.logger.Info("firmware version", "device", s.definition.Name(), "version", version)
}
