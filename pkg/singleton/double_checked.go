package singleton

import (
	"sync"
	"sync/atomic"
)

var (
	doubleCheckedMu sync.Mutex
	doubleChecked   atomic.Pointer[Instance]
)

// DoubleChecked only locks while the instance is still missing. The atomic
// pointer publishes the fully built instance to lock-free readers.
func DoubleChecked() *Instance {
	if inst := doubleChecked.Load(); inst != nil {
		return inst
	}

	doubleCheckedMu.Lock()
	defer doubleCheckedMu.Unlock()

	if inst := doubleChecked.Load(); inst != nil {
		return inst
	}
	inst := newInstance(VariantDoubleChecked)
	doubleChecked.Store(inst)
	return inst
}

func doubleCheckedState() State {
	if doubleChecked.Load() == nil {
		return Unconstructed
	}
	return Constructed
}
