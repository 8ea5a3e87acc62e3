// Package singleton demonstrates six ways of handing out one process-wide
// shared Instance, plus a retrying accessor for constructors that can fail.
//
// Every accessor except Unsafe returns the same *Instance to every goroutine.
package singleton

import (
	"time"

	"github.com/google/uuid"
	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"github.com/sunfmin/mcp-go-patterns/pkg/metrics"
)

// Variant names a singleton technique.
type Variant string

const (
	VariantUnsafe        Variant = "unsafe"
	VariantLocked        Variant = "locked"
	VariantDoubleChecked Variant = "double_checked"
	VariantEager         Variant = "eager"
	VariantHolder        Variant = "holder"
	VariantNamed         Variant = "named"
	VariantFallible      Variant = "fallible"
)

func (v Variant) String() string {
	return string(v)
}

// State is the construction state of a lazily built instance.
type State int

const (
	Unconstructed State = iota
	Constructing
	Constructed
)

func (s State) String() string {
	switch s {
	case Unconstructed:
		return "unconstructed"
	case Constructing:
		return "constructing"
	case Constructed:
		return "constructed"
	default:
		return "unknown"
	}
}

// Instance is the shared value. ID is assigned once at construction and is
// what identity-derived output (SayHello) is built from.
type Instance struct {
	ID        uuid.UUID
	Variant   Variant
	CreatedAt time.Time
}

func newInstance(v Variant) *Instance {
	inst := &Instance{
		ID:        uuid.New(),
		Variant:   v,
		CreatedAt: time.Now(),
	}
	metrics.ObserveConstruction(v.String())
	logger.Debug("Constructed singleton instance", "variant", v, "id", inst.ID)
	return inst
}
