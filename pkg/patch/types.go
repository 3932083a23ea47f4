package patch

// PortMode is the direction of a port.
type PortMode int

const (
	// PortModeNull is an unset mode.
	PortModeNull PortMode = iota
	// PortModeInput receives signal.
	PortModeInput
	// PortModeOutput produces signal.
	PortModeOutput
)

func (m PortMode) String() string {
	switch m {
	case PortModeInput:
		return "input"
	case PortModeOutput:
		return "output"
	default:
		return "null"
	}
}

// PortType is the kind of signal a port carries. Connections are only
// allowed between ports of the same type.
type PortType int

const (
	// PortTypeNull is an unset type.
	PortTypeNull PortType = iota
	// PortTypeAudioJack carries audio.
	PortTypeAudioJack
	// PortTypeMidiJack carries JACK MIDI.
	PortTypeMidiJack
	// PortTypeMidiAlsa carries ALSA MIDI.
	PortTypeMidiAlsa
	// PortTypeParameter carries parameter values.
	PortTypeParameter
)

func (t PortType) String() string {
	switch t {
	case PortTypeAudioJack:
		return "audio"
	case PortTypeMidiJack:
		return "midi"
	case PortTypeMidiAlsa:
		return "alsa"
	case PortTypeParameter:
		return "parameter"
	default:
		return "null"
	}
}

// Icon selects the pictogram a host draws on a group's box.
type Icon int

const (
	// IconApplication is a generic client application.
	IconApplication Icon = iota
	// IconHardware is a hardware device.
	IconHardware
	// IconDistrho is a DISTRHO plugin.
	IconDistrho
	// IconFile is a file player.
	IconFile
	// IconPlugin is a generic plugin.
	IconPlugin
	// IconLadish is a LADISH room.
	IconLadish
)
