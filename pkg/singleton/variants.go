package singleton

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned by Lookup for a name no variant carries.
var ErrUnknownVariant = errors.New("unknown singleton variant")

// Initialization timing of a variant.
const (
	InitLazy  = "lazy"
	InitEager = "eager"
)

// Info describes one singleton technique and gives access to its instance.
type Info struct {
	Variant        Variant
	ThreadSafe     bool
	Initialization string
	Description    string

	get   func() (*Instance, error)
	state func() State
}

// Get returns the variant's shared instance.
func (i Info) Get() (*Instance, error) {
	return i.get()
}

// State returns the variant's construction state.
func (i Info) State() State {
	return i.state()
}

func infallible(get func() *Instance) func() (*Instance, error) {
	return func() (*Instance, error) {
		return get(), nil
	}
}

func alwaysConstructed() State {
	return Constructed
}

var variants = []Info{
	{
		Variant:        VariantUnsafe,
		ThreadSafe:     false,
		Initialization: InitLazy,
		Description:    "Unsynchronized nil check; concurrent first calls may build several instances",
		get:            infallible(Unsafe),
		// Reading the pointer here is as unsynchronized as Unsafe itself.
		state: func() State {
			if unsafeInstance == nil {
				return Unconstructed
			}
			return Constructed
		},
	},
	{
		Variant:        VariantLocked,
		ThreadSafe:     true,
		Initialization: InitLazy,
		Description:    "Mutex held on every call",
		get:            infallible(Locked),
		state:          lockedState,
	},
	{
		Variant:        VariantDoubleChecked,
		ThreadSafe:     true,
		Initialization: InitLazy,
		Description:    "Atomic load first, mutex and re-check only while unconstructed",
		get:            infallible(DoubleChecked),
		state:          doubleCheckedState,
	},
	{
		Variant:        VariantEager,
		ThreadSafe:     true,
		Initialization: InitEager,
		Description:    "Built during package initialization; accessor is a plain getter",
		get:            infallible(Eager),
		state:          alwaysConstructed,
	},
	{
		Variant:        VariantHolder,
		ThreadSafe:     true,
		Initialization: InitLazy,
		Description:    "Holder initialized exactly once by sync.OnceValue on first use",
		get:            infallible(Holder),
		state:          holderState,
	},
	{
		Variant:        VariantNamed,
		ThreadSafe:     true,
		Initialization: InitEager,
		Description:    "Single package-level value with a mutable name",
		get:            infallible(Default.Instance),
		state:          alwaysConstructed,
	},
	{
		Variant:        VariantFallible,
		ThreadSafe:     true,
		Initialization: InitLazy,
		Description:    "Retries failed construction; concurrent callers share one attempt",
		get:            FallibleInstance,
		state:          func() State { return fallible.State() },
	},
}

// Variants lists every singleton technique in the order they are introduced.
func Variants() []Info {
	out := make([]Info, len(variants))
	copy(out, variants)
	return out
}

// Lookup finds a variant by name.
func Lookup(name string) (Info, error) {
	for _, info := range variants {
		if string(info.Variant) == name {
			return info, nil
		}
	}
	return Info{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
