package singleton

import (
	"sync"
	"sync/atomic"
)

// instanceHolder defers construction to the first Holder call; sync.OnceValue
// runs the constructor exactly once and every caller waits for it.
type instanceHolder struct {
	built atomic.Bool
	get   func() *Instance
}

func newHolder() *instanceHolder {
	h := &instanceHolder{}
	h.get = sync.OnceValue(func() *Instance {
		defer h.built.Store(true)
		return newInstance(VariantHolder)
	})
	return h
}

var holder = newHolder()

// Holder returns the instance, building it on first use.
func Holder() *Instance {
	return holder.get()
}

func holderState() State {
	if holder.built.Load() {
		return Constructed
	}
	return Unconstructed
}
