package draw

import "github.com/Faultbox/gizmo/pkg/scene"

// RunMode describes the host's execution state, used to route debug shapes
// to the right container.
type RunMode int

const (
	// RunStopped: the host is not simulating (editing / paused).
	RunStopped RunMode = iota
	// RunAuthority: the host is simulating and owns the world state.
	RunAuthority
	// RunView: the host is simulating as a view onto remote state.
	RunView
)

// ParentResolver returns the default parent for new shapes. It is consulted
// once per draw call, never cached.
type ParentResolver func() scene.Instance

// FixedParent always resolves to the given instance.
func FixedParent(inst scene.Instance) ParentResolver {
	return func() scene.Instance { return inst }
}

// ModalParent resolves by the host's current run mode: stopped hosts get the
// stopped target, simulating hosts the authority or view target.
func ModalParent(mode func() RunMode, stopped, authority, view scene.Instance) ParentResolver {
	return func() scene.Instance {
		switch mode() {
		case RunAuthority:
			return authority
		case RunView:
			return view
		default:
			return stopped
		}
	}
}
