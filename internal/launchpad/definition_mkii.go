package launchpad

// MkIIDefinition implements ControllerDefinition for the Launchpad MkII.
type MkIIDefinition struct{}

func (d *MkIIDefinition) Name() string { return "Launchpad MkII" }

func (d *MkIIDefinition) SysExHeader() string { return "F0 00 20 29 02 18" }

// The MkII has no dedicated standalone switch; layout select 21 01 puts it
// back on the built-in user layout, 22 00 selects the host session layout.
func (d *MkIIDefinition) StandaloneModeCommand() string { return "21 01" }

func (d *MkIIDefinition) ProgramModeCommand() string { return "22 00" }

func (d *MkIIDefinition) IsPro() bool { return false }

// SetLogoColor is a no-op: the MkII has no addressable logo LED.
func (d *MkIIDefinition) SetLogoColor(s *Surface, color int) {}

func (d *MkIIDefinition) CreateVirtualFader(grid *PadGrid, index int) *VirtualFader {
	return NewVirtualFader(grid, index)
}
