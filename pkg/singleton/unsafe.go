package singleton

var unsafeInstance *Instance

// Unsafe lazily constructs its instance with no synchronization at all.
//
// Sequential calls share one instance. Concurrent first calls race: several
// instances may be built and callers may see different ones. Do not call it
// from more than one goroutine.
func Unsafe() *Instance {
	if unsafeInstance == nil {
		unsafeInstance = newInstance(VariantUnsafe)
	}
	return unsafeInstance
}
