package singleton

import "sync"

var (
	lockedMu       sync.Mutex
	lockedInstance *Instance
)

// Locked takes the mutex on every call, including after construction.
func Locked() *Instance {
	lockedMu.Lock()
	defer lockedMu.Unlock()

	if lockedInstance == nil {
		lockedInstance = newInstance(VariantLocked)
	}
	return lockedInstance
}

func lockedState() State {
	lockedMu.Lock()
	defer lockedMu.Unlock()

	if lockedInstance == nil {
		return Unconstructed
	}
	return Constructed
}
