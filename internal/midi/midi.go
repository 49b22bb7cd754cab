// Package midi is the transport boundary: port discovery, an Output
// implementation over gomidi, and SysEx listening. The surface core above
// it speaks spaced-hex frames; raw bytes exist only in this package.
package midi

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

	"github.com/PixPMusic/padsurface/internal/sysex"
)

// Manager handles MIDI device discovery and management.
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager.
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver.
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports.
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// FindInPort returns the first input port whose name contains the given
// substring, matching case-insensitively.
func (m *Manager) FindInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if containsFold(in.String(), name) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port not found: %s", name)
}

// FindOutPort returns the first output port whose name contains the given
// substring, matching case-insensitively.
func (m *Manager) FindOutPort(name string) (drivers.Out, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, out := range midi.GetOutPorts() {
		if containsFold(out.String(), name) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("output port not found: %s", name)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// OpenOutput opens a sender on the named output port.
func (m *Manager) OpenOutput(name string, logger *slog.Logger) (*Port, error) {
	out, err := m.FindOutPort(name)
	if err != nil {
		return nil, err
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Port{send: send, logger: logger}, nil
}

// ListenSysEx starts listening for SysEx frames on the named input port
// and delivers each one to callback as a spaced-hex string including the
// F0/F7 markers. The returned function stops the listener.
func (m *Manager) ListenSysEx(name string, callback func(frame string)) (func(), error) {
	in, err := m.FindInPort(name)
	if err != nil {
		return nil, err
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var bt []byte
		if !msg.GetSysEx(&bt) {
			return
		}
		callback(sysex.ToHexString(fullFrame(bt)))
	}, midi.UseSysEx())
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}
	return stop, nil
}

// fullFrame normalizes SysEx data to include the start and end markers,
// which some drivers strip and others keep.
func fullFrame(data []byte) []byte {
	if len(data) > 0 && data[0] == sysex.Start {
		return data
	}
	frame := make([]byte, 0, len(data)+2)
	frame = append(frame, sysex.Start)
	frame = append(frame, data...)
	if len(data) == 0 || data[len(data)-1] != sysex.End {
		frame = append(frame, sysex.End)
	}
	return frame
}

// Port implements the surface's Output over a gomidi sender. Sends are
// fire-and-forget; transport errors are logged and swallowed since the
// driver is best-effort.
type Port struct {
	send   func(midi.Message) error
	logger *slog.Logger
}

// NewPort wraps a raw send function; used by the surface wiring and by
// tests that fake the driver.
func NewPort(send func(midi.Message) error, logger *slog.Logger) *Port {
	if logger == nil {
		logger = slog.Default()
	}
	return &Port{send: send, logger: logger}
}

// SendNote sends a Note On message.
func (p *Port) SendNote(channel, key, velocity int) {
	if err := p.send(midi.NoteOn(uint8(channel), uint8(key), uint8(velocity))); err != nil {
		p.logger.Warn("failed to send note", "key", key, "error", err)
	}
}

// SendCC sends a Control Change message.
func (p *Port) SendCC(channel, controller, value int) {
	if err := p.send(midi.ControlChange(uint8(channel), uint8(controller), uint8(value))); err != nil {
		p.logger.Warn("failed to send cc", "controller", controller, "error", err)
	}
}

// SendSysEx sends one complete spaced-hex frame. gomidi adds the F0/F7
// markers itself, so they are stripped here.
func (p *Port) SendSysEx(frame string) {
	data, err := sysex.FromHexString(frame)
	if err != nil {
		p.logger.Warn("dropping malformed sysex frame", "frame", frame, "error", err)
		return
	}
	if len(data) > 0 && data[0] == sysex.Start {
		data = data[1:]
	}
	if len(data) > 0 && data[len(data)-1] == sysex.End {
		data = data[:len(data)-1]
	}
	if err := p.send(midi.SysEx(data)); err != nil {
		p.logger.Warn("failed to send sysex", "error", err)
	}
}
