// Package patch models a patch-bay canvas: client groups, their ports,
// and the connections between ports.
//
// The package is a pure scene model. It owns the bookkeeping — which
// groups exist, which ports belong to them, what is connected to what —
// and leaves rendering and interaction to the host UI. The host drives
// the model through Scene and observes it by draining the scene's
// EventQueue.
//
// All model objects are reference counted through refs.Array, so a
// port, for example, stays alive while a pending event or a host-side
// holder still references it, even after it has been removed from the
// scene.
//
// Scene is not safe for concurrent use; confine it to one goroutine or
// serialize access externally.
package patch
