package launchpad

// Output is the MIDI transport the surface writes to. Implementations send
// fire-and-forget; delivery errors are theirs to log.
type Output interface {
	// SendNote sends a Note On with the given key and velocity/state.
	SendNote(channel, key, velocity int)

	// SendCC sends a Control Change.
	SendCC(channel, controller, value int)

	// SendSysEx sends one complete SysEx frame, spaced-hex encoded,
	// F0 start and F7 terminator included.
	SendSysEx(frame string)
}

// ControllerDefinition supplies the immutable per-SKU hardware facts. One
// implementation exists per variant and is selected at construction time;
// the surface core never branches on the concrete type.
type ControllerDefinition interface {
	// Name identifies the SKU, e.g. for logs and config files.
	Name() string

	// SysExHeader is the variant's frame prefix including the F0 start
	// byte, without the terminator.
	SysExHeader() string

	// StandaloneModeCommand is the payload that reverts the unit to its
	// self-contained behavior.
	StandaloneModeCommand() string

	// ProgramModeCommand is the payload that hands pad illumination over
	// to the host.
	ProgramModeCommand() string

	// IsPro reports whether the unit has the Pro model's additional
	// buttons; non-pro units address scene triggers via Note messages.
	IsPro() bool

	// SetLogoColor lights the logo LED, on variants that have one.
	SetLogoColor(s *Surface, color int)

	// CreateVirtualFader builds the fader for one lane, bound to the
	// shared pad grid.
	CreateVirtualFader(grid *PadGrid, index int) *VirtualFader
}

// SKU identifiers accepted by DefinitionFor and used in config profiles.
const (
	SKUPro  = "pro"
	SKUMkII = "mkii"
)

// DefinitionFor returns the definition for the given SKU string,
// defaulting to the MkII for anything unrecognized.
func DefinitionFor(sku string) ControllerDefinition {
	switch sku {
	case SKUPro:
		return &ProDefinition{}
	case SKUMkII:
		return &MkIIDefinition{}
	default:
		return &MkIIDefinition{}
	}
}
