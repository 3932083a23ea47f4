package patch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/patchbay/pkg/errors"
	"github.com/go-drift/patchbay/pkg/refs"
	"github.com/go-drift/patchbay/pkg/result"
)

// Scene is the patch-bay model: groups, ports, port groups and
// connections, plus the event queue hosts drain to mirror changes into
// their UI.
//
// Item ids are assigned by the host. Operations that can fail return a
// result.Result; index and id lookups that miss degrade to nil or
// empty values and report through the errors package where the miss
// indicates host confusion.
type Scene struct {
	groups      *refs.Array[*Group]
	ports       *refs.Array[*Port]
	portGroups  *refs.Array[*PortGroup]
	connections *refs.Array[*Connection]
	events      *EventQueue
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		groups:      refs.NewArray[*Group](),
		ports:       refs.NewArray[*Port](),
		portGroups:  refs.NewArray[*PortGroup](),
		connections: refs.NewArray[*Connection](),
		events:      NewEventQueue(),
	}
}

// Events returns the scene's event queue.
func (s *Scene) Events() *EventQueue {
	return s.events
}

// GroupCount returns the number of groups.
func (s *Scene) GroupCount() int { return s.groups.Size() }

// PortCount returns the number of ports.
func (s *Scene) PortCount() int { return s.ports.Size() }

// ConnectionCount returns the number of connections.
func (s *Scene) ConnectionCount() int { return s.connections.Size() }

// Groups returns the live group list view, ordered by id. The view is
// invalidated by any scene mutation.
func (s *Scene) Groups() []*Group { return s.groups.Raw() }

// Ports returns the live port list view, ordered by group then port
// id. The view is invalidated by any scene mutation.
func (s *Scene) Ports() []*Port { return s.ports.Raw() }

// Connections returns the live connection list view, in connect order.
// The view is invalidated by any scene mutation.
func (s *Scene) Connections() []*Connection { return s.connections.Raw() }

// AddGroup adds a group box to the scene.
func (s *Scene) AddGroup(id int, name string, split bool, icon Icon) result.Result {
	if s.GroupByID(id) != nil {
		return result.Failf("group %d already exists", id)
	}
	s.groups.AddSorted(compareGroups, &Group{ID: id, Name: name, Split: split, Icon: icon})
	s.events.Push(Event{Action: ActionGroupAdded, Value1: id, ValueStr: name})
	return result.Ok()
}

// RenameGroup changes a group's displayed name.
func (s *Scene) RenameGroup(id int, name string) result.Result {
	group := s.GroupByID(id)
	if group == nil {
		return result.Failf("group %d not found", id)
	}
	group.Name = name
	s.events.Push(Event{Action: ActionGroupRenamed, Value1: id, ValueStr: name})
	return result.Ok()
}

// RemoveGroup removes a group and everything it owns: its connections
// are broken, its ports and port groups released, then the group
// itself.
func (s *Scene) RemoveGroup(id int) result.Result {
	group := s.GroupByID(id)
	if group == nil {
		return result.Failf("group %d not found", id)
	}

	for _, port := range s.groupPorts(id) {
		s.disconnectPort(port.GroupID, port.ID)
		s.ports.RemoveObject(port)
	}
	for i := s.portGroups.Size() - 1; i >= 0; i-- {
		if s.portGroups.Get(i).GroupID == id {
			s.portGroups.Remove(i)
		}
	}
	s.groups.RemoveObject(group)
	s.events.Push(Event{Action: ActionGroupRemoved, Value1: id})
	return result.Ok()
}

// GroupByID returns the group with the given id, or nil.
func (s *Scene) GroupByID(id int) *Group {
	probe := &Group{ID: id}
	if i := s.groups.IndexOfSorted(compareGroups, probe); i >= 0 {
		return s.groups.Get(i)
	}
	return nil
}

// AddPort adds a port to an existing group. Ports are kept sorted by
// group id then port id, so the port list doubles as a layout order.
func (s *Scene) AddPort(groupID, portID int, name string, mode PortMode, portType PortType) result.Result {
	if s.GroupByID(groupID) == nil {
		return result.Failf("group %d not found", groupID)
	}
	if s.PortByID(groupID, portID) != nil {
		return result.Failf("port %d:%d already exists", groupID, portID)
	}
	if mode != PortModeInput && mode != PortModeOutput {
		return result.Failf("port %d:%d has no direction", groupID, portID)
	}
	s.ports.AddSorted(comparePorts, &Port{
		GroupID: groupID,
		ID:      portID,
		Name:    name,
		Mode:    mode,
		Type:    portType,
	})
	s.events.Push(Event{Action: ActionPortAdded, Value1: groupID, Value2: portID, ValueStr: name})
	return result.Ok()
}

// RemovePort breaks the port's connections, detaches it from its port
// group and releases it.
func (s *Scene) RemovePort(groupID, portID int) result.Result {
	port := s.PortByID(groupID, portID)
	if port == nil {
		return result.Failf("port %d:%d not found", groupID, portID)
	}

	s.disconnectPort(groupID, portID)
	if port.PortGroupID != 0 {
		s.detachFromPortGroup(port)
	}
	s.ports.RemoveObject(port)
	s.events.Push(Event{Action: ActionPortRemoved, Value1: groupID, Value2: portID})
	return result.Ok()
}

// PortByID returns the port with the given ids, or nil. The sorted
// port order makes this a binary search.
func (s *Scene) PortByID(groupID, portID int) *Port {
	probe := &Port{GroupID: groupID, ID: portID}
	if i := s.ports.IndexOfSorted(comparePorts, probe); i >= 0 {
		return s.ports.Get(i)
	}
	return nil
}

// FullPortName returns "group:port" for the given port, or the empty
// string when the port is unknown. An unknown port is reported as a
// scene error, matching the host expectation that names are only asked
// for ports it was told about.
func (s *Scene) FullPortName(groupID, portID int) string {
	port := s.PortByID(groupID, portID)
	if port == nil {
		errors.Report(&errors.PatchError{
			Op:   "patch.Scene.FullPortName",
			Kind: errors.KindScene,
			Err:  fmt.Errorf("port %d:%d not found", groupID, portID),
		})
		return ""
	}
	group := s.GroupByID(groupID)
	if group == nil {
		errors.Report(&errors.PatchError{
			Op:   "patch.Scene.FullPortName",
			Kind: errors.KindScene,
			Err:  fmt.Errorf("group %d not found", groupID),
		})
		return ""
	}
	return group.Name + ":" + port.Name
}

// Connect adds a connection between an output port and an input port
// of the same type.
func (s *Scene) Connect(connectionID, groupOut, portOut, groupIn, portIn int) result.Result {
	if s.ConnectionByID(connectionID) != nil {
		return result.Failf("connection %d already exists", connectionID)
	}
	out := s.PortByID(groupOut, portOut)
	if out == nil {
		return result.Failf("port %d:%d not found", groupOut, portOut)
	}
	in := s.PortByID(groupIn, portIn)
	if in == nil {
		return result.Failf("port %d:%d not found", groupIn, portIn)
	}
	if out.Mode != PortModeOutput {
		return result.Failf("port %d:%d is not an output", groupOut, portOut)
	}
	if in.Mode != PortModeInput {
		return result.Failf("port %d:%d is not an input", groupIn, portIn)
	}
	if out.Type != in.Type {
		return result.Failf("port types differ: %s vs %s", out.Type, in.Type)
	}

	s.connections.Add(&Connection{
		ID:       connectionID,
		GroupOut: groupOut,
		PortOut:  portOut,
		GroupIn:  groupIn,
		PortIn:   portIn,
	})
	s.events.Push(Event{
		Action:   ActionPortsConnected,
		Value1:   connectionID,
		ValueStr: fmt.Sprintf("%d:%d:%d:%d", groupOut, portOut, groupIn, portIn),
	})
	return result.Ok()
}

// Disconnect removes the connection with the given id.
func (s *Scene) Disconnect(connectionID int) result.Result {
	conn := s.ConnectionByID(connectionID)
	if conn == nil {
		return result.Failf("connection %d not found", connectionID)
	}
	s.connections.RemoveObject(conn)
	s.events.Push(Event{Action: ActionPortsDisconnected, Value1: connectionID})
	return result.Ok()
}

// ConnectionByID returns the connection with the given id, or nil.
func (s *Scene) ConnectionByID(id int) *Connection {
	for _, conn := range s.connections.Raw() {
		if conn.ID == id {
			return conn
		}
	}
	return nil
}

// PortConnections lists every connection touching the given port, with
// the far endpoint from that port's point of view.
func (s *Scene) PortConnections(groupID, portID int) []PortLink {
	var links []PortLink
	for _, conn := range s.connections.Raw() {
		switch {
		case conn.GroupOut == groupID && conn.PortOut == portID:
			links = append(links, PortLink{conn.ID, conn.GroupIn, conn.PortIn})
		case conn.GroupIn == groupID && conn.PortIn == portID:
			links = append(links, PortLink{conn.ID, conn.GroupOut, conn.PortOut})
		}
	}
	return links
}

// AddPortGroup ties the given ports of one group into a port group.
// Member ports must exist, share the group, and agree on mode and
// type.
func (s *Scene) AddPortGroup(groupID, portGroupID int, portIDs ...int) result.Result {
	if s.portGroupByID(groupID, portGroupID) != nil {
		return result.Failf("port group %d:%d already exists", groupID, portGroupID)
	}
	if len(portIDs) < 2 {
		return result.Fail("a port group needs at least two ports")
	}

	first := s.PortByID(groupID, portIDs[0])
	if first == nil {
		return result.Failf("port %d:%d not found", groupID, portIDs[0])
	}
	for _, id := range portIDs[1:] {
		port := s.PortByID(groupID, id)
		if port == nil {
			return result.Failf("port %d:%d not found", groupID, id)
		}
		if port.Mode != first.Mode || port.Type != first.Type {
			return result.Failf("port %d:%d does not match the group's mode and type", groupID, id)
		}
	}

	s.portGroups.Add(&PortGroup{
		GroupID: groupID,
		ID:      portGroupID,
		Mode:    first.Mode,
		Type:    first.Type,
		PortIDs: append([]int(nil), portIDs...),
	})
	for _, id := range portIDs {
		s.PortByID(groupID, id).PortGroupID = portGroupID
	}
	return result.Ok()
}

// RemovePortGroup dissolves a port group, leaving its member ports in
// place.
func (s *Scene) RemovePortGroup(groupID, portGroupID int) result.Result {
	pg := s.portGroupByID(groupID, portGroupID)
	if pg == nil {
		return result.Failf("port group %d:%d not found", groupID, portGroupID)
	}
	for _, id := range pg.PortIDs {
		if port := s.PortByID(groupID, id); port != nil && port.PortGroupID == portGroupID {
			port.PortGroupID = 0
		}
	}
	s.portGroups.RemoveObject(pg)
	return result.Ok()
}

// PortGroupPosition returns the (index, total) position of a port
// within its port group, so hosts can lay grouped ports out as one
// block. An ungrouped or unknown port is (0, 1).
func (s *Scene) PortGroupPosition(groupID, portID, portGroupID int) (index, total int) {
	if portGroupID <= 0 {
		return 0, 1
	}
	pg := s.portGroupByID(groupID, portGroupID)
	if pg == nil {
		return 0, 1
	}
	for i, id := range pg.PortIDs {
		if id == portID {
			return i, len(pg.PortIDs)
		}
	}
	return 0, 1
}

// PortGroupName derives a display name for a set of ports: the longest
// common prefix of their names, trimmed back to a natural boundary.
// Returns the empty string when fewer than two of the ports exist.
func (s *Scene) PortGroupName(groupID int, portIDs []int) string {
	var names []string
	for _, port := range s.ports.Raw() {
		if port.GroupID != groupID {
			continue
		}
		for _, id := range portIDs {
			if port.ID == id {
				names = append(names, port.Name)
				break
			}
		}
	}
	if len(names) < 2 {
		return ""
	}

	prefix := commonPrefix(names)

	// Cut the prefix back until it ends at a separator or a direction
	// word, so "Audio Out L"/"Audio Out R" yields "Audio Out" rather
	// than a half word. A prefix that is itself a full port name is
	// kept as is.
	ends := []string{" ", "_", ".", "-", "#", ":", "out", "in", "Out",
		"In", "Output", "Input", "output", "input"}
	for len(prefix) > 0 {
		if slices.Contains(names, prefix) {
			break
		}
		done := false
		for _, end := range ends {
			if strings.HasSuffix(prefix, end) {
				done = true
				break
			}
		}
		if done {
			break
		}
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}

// Clear releases everything in the scene and drops pending events.
func (s *Scene) Clear() {
	s.connections.Clear()
	s.portGroups.Clear()
	s.ports.Clear()
	s.groups.Clear()
	s.events.Reset()
}

// groupPorts returns the ports of one group, newest last. The returned
// slice is a copy and stays valid across mutations.
func (s *Scene) groupPorts(groupID int) []*Port {
	var ports []*Port
	for _, port := range s.ports.Raw() {
		if port.GroupID == groupID {
			ports = append(ports, port)
		}
	}
	return ports
}

// disconnectPort breaks every connection touching the port.
func (s *Scene) disconnectPort(groupID, portID int) {
	for _, link := range s.PortConnections(groupID, portID) {
		s.Disconnect(link.ConnectionID)
	}
}

// detachFromPortGroup removes the port from its port group, dissolving
// the port group when fewer than two members remain.
func (s *Scene) detachFromPortGroup(port *Port) {
	pg := s.portGroupByID(port.GroupID, port.PortGroupID)
	port.PortGroupID = 0
	if pg == nil {
		return
	}
	members := pg.PortIDs[:0]
	for _, id := range pg.PortIDs {
		if id != port.ID {
			members = append(members, id)
		}
	}
	pg.PortIDs = members
	if len(pg.PortIDs) < 2 {
		s.RemovePortGroup(pg.GroupID, pg.ID)
	}
}

func (s *Scene) portGroupByID(groupID, portGroupID int) *PortGroup {
	for _, pg := range s.portGroups.Raw() {
		if pg.GroupID == groupID && pg.ID == portGroupID {
			return pg
		}
	}
	return nil
}

// commonPrefix returns the longest prefix shared by all names.
func commonPrefix(names []string) string {
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
