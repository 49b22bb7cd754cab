package launchpad

import "fmt"

// ProDefinition implements ControllerDefinition for the Launchpad Pro.
type ProDefinition struct{}

func (d *ProDefinition) Name() string { return "Launchpad Pro" }

func (d *ProDefinition) SysExHeader() string { return "F0 00 20 29 02 10" }

// Mode select: 2C <mode>, mode 00 = note (standalone default),
// 03 = programmer.
func (d *ProDefinition) StandaloneModeCommand() string { return "2C 00" }

func (d *ProDefinition) ProgramModeCommand() string { return "2C 03" }

func (d *ProDefinition) IsPro() bool { return true }

// SetLogoColor addresses the side LED (99) with the single-LED command.
func (d *ProDefinition) SetLogoColor(s *Surface, color int) {
	if color < 0 {
		color = ColorBlack
	}
	s.SendSysEx(fmt.Sprintf("0A %02X %02X", ButtonLogo, color))
}

func (d *ProDefinition) CreateVirtualFader(grid *PadGrid, index int) *VirtualFader {
	return NewVirtualFader(grid, index)
}
