package patch

import "github.com/go-drift/patchbay/pkg/refs"

// Group is a client box on the canvas, owning a set of ports. The
// scene holds it by reference count; hosts that keep a Group beyond a
// scene mutation must take their own reference.
type Group struct {
	refs.CountedBase

	// ID identifies the group within the scene. IDs are assigned by
	// the host (typically mirroring the audio server's client ids).
	ID int
	// Name is the client name shown on the box.
	Name string
	// Split lays the group out as two half-boxes, one per direction.
	Split bool
	// Icon is the pictogram for the box.
	Icon Icon
}

// Port is a single connectable endpoint belonging to a group.
type Port struct {
	refs.CountedBase

	// GroupID is the owning group.
	GroupID int
	// ID identifies the port within its group.
	ID int
	// Name is the port name, unqualified (see Scene.FullPortName).
	Name string
	// Mode is the port direction.
	Mode PortMode
	// Type is the signal kind.
	Type PortType
	// PortGroupID is the port group this port belongs to, or zero when
	// ungrouped.
	PortGroupID int
	// IsAlternate marks secondary ports such as A2J bridged ones.
	IsAlternate bool
}

// PortGroup ties several ports of one group into a unit (a stereo
// pair, typically) that hosts lay out and connect together.
type PortGroup struct {
	refs.CountedBase

	// GroupID is the owning group.
	GroupID int
	// ID identifies the port group within the scene.
	ID int
	// Mode and Type mirror the member ports; all members share them.
	Mode PortMode
	Type PortType
	// PortIDs are the member ports, in layout order.
	PortIDs []int
}

// Dispose drops the member list.
func (pg *PortGroup) Dispose() {
	pg.PortIDs = nil
}

// Connection is an edge between an output port and an input port.
type Connection struct {
	refs.CountedBase

	// ID identifies the connection within the scene.
	ID int
	// GroupOut and PortOut name the source endpoint.
	GroupOut int
	PortOut  int
	// GroupIn and PortIn name the destination endpoint.
	GroupIn int
	PortIn  int
}

// PortLink describes one connection from a given port's point of view:
// the connection id and the far endpoint.
type PortLink struct {
	ConnectionID int
	GroupID      int
	PortID       int
}

// compareGroups orders groups by id.
func compareGroups(a, b *Group) int {
	return a.ID - b.ID
}

// comparePorts orders ports by owning group, then port id.
func comparePorts(a, b *Port) int {
	if a.GroupID != b.GroupID {
		return a.GroupID - b.GroupID
	}
	return a.ID - b.ID
}
