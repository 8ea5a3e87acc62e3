package singleton

// Built during package initialization, before any caller can run.
var eagerInstance = newInstance(VariantEager)

// Eager returns the instance created at package initialization.
func Eager() *Instance {
	return eagerInstance
}
