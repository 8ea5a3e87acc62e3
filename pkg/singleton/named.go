package singleton

import "sync"

// Named is a type with exactly one value, Default. The package never builds
// another one, and its zero value is not usable.
type Named struct {
	instance *Instance

	mu   sync.RWMutex
	name string
}

// Default is the only Named value.
var Default = &Named{instance: newInstance(VariantNamed)}

// Instance returns the shared instance behind n.
func (n *Named) Instance() *Instance {
	return n.instance
}

// Name returns the last name set, or "" if none was set.
func (n *Named) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.name
}

// SetName replaces the name. Concurrent writers are not ordered: whichever
// write lands last wins.
func (n *Named) SetName(name string) {
	n.mu.Lock()
	n.name = name
	n.mu.Unlock()
}

// SayHello returns a greeting derived from the instance identity.
func (n *Named) SayHello() string {
	return n.instance.ID.String()
}
