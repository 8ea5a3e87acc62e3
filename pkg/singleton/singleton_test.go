package singleton

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sunfmin/mcp-go-patterns/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// resetLazy puts every lazy variant back into the unconstructed state.
// Only call it while no other goroutine uses the package.
func resetLazy() {
	unsafeInstance = nil

	lockedMu.Lock()
	lockedInstance = nil
	lockedMu.Unlock()

	doubleChecked.Store(nil)
	holder = newHolder()
	fallible = newFallibleInstance()
}

// callConcurrently calls get from n goroutines released at the same moment and
// returns every result.
func callConcurrently(t *testing.T, n int, get func() (*Instance, error)) []*Instance {
	t.Helper()

	results := make([]*Instance, n)
	start := make(chan struct{})

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			<-start
			inst, err := get()
			if err != nil {
				return err
			}
			results[i] = inst
			return nil
		})
	}
	close(start)

	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent access failed: %v", err)
	}
	return results
}

func TestSequentialIdentity(t *testing.T) {
	resetLazy()

	for _, info := range Variants() {
		first, err := info.Get()
		if err != nil {
			t.Fatalf("%s: Get failed: %v", info.Variant, err)
		}
		second, err := info.Get()
		if err != nil {
			t.Fatalf("%s: Get failed: %v", info.Variant, err)
		}

		if first == nil {
			t.Fatalf("%s: Get returned nil", info.Variant)
		}
		if first != second {
			t.Errorf("%s: two calls returned different instances %s and %s", info.Variant, first.ID, second.ID)
		}
		if first.Variant != info.Variant {
			t.Errorf("%s: instance built by variant %s", info.Variant, first.Variant)
		}
	}
}

func TestConcurrentIdentity(t *testing.T) {
	const goroutines = 64

	for _, info := range Variants() {
		if !info.ThreadSafe {
			continue
		}

		t.Run(string(info.Variant), func(t *testing.T) {
			resetLazy()

			results := callConcurrently(t, goroutines, info.Get)
			for i, inst := range results {
				if inst != results[0] {
					t.Fatalf("goroutine %d got instance %s; goroutine 0 got %s", i, inst.ID, results[0].ID)
				}
			}
		})
	}
}

func TestLazyConstructsOnce(t *testing.T) {
	cases := []struct {
		variant Variant
		get     func() *Instance
	}{
		{VariantLocked, Locked},
		{VariantDoubleChecked, DoubleChecked},
		{VariantHolder, Holder},
	}

	for _, tc := range cases {
		t.Run(string(tc.variant), func(t *testing.T) {
			resetLazy()
			counter := metrics.Constructions.WithLabelValues(tc.variant.String())
			before := testutil.ToFloat64(counter)

			callConcurrently(t, 32, infallible(tc.get))

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("constructions = %v; want 1", got)
			}
		})
	}
}

func TestStateTransitions(t *testing.T) {
	resetLazy()

	for _, info := range Variants() {
		want := Unconstructed
		if info.Initialization == InitEager {
			want = Constructed
		}
		if got := info.State(); got != want {
			t.Errorf("%s: state before first call = %v; want %v", info.Variant, got, want)
		}

		if _, err := info.Get(); err != nil {
			t.Fatalf("%s: Get failed: %v", info.Variant, err)
		}
		if got := info.State(); got != Constructed {
			t.Errorf("%s: state after first call = %v; want constructed", info.Variant, got)
		}
	}
}

func TestEagerBuiltBeforeAccess(t *testing.T) {
	if eagerInstance == nil {
		t.Fatal("eager instance was not built during package initialization")
	}
	if Eager() != eagerInstance {
		t.Error("Eager returned a different instance than the one built at init")
	}
}

func TestNamed(t *testing.T) {
	prev := Default.Name()
	defer Default.SetName(prev)

	Default.SetName("x")
	if got := Default.Name(); got != "x" {
		t.Errorf("Name() = %q; want %q", got, "x")
	}

	info, err := Lookup(string(VariantNamed))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	inst, _ := info.Get()
	if inst != Default.Instance() {
		t.Error("named variant returned an instance other than Default's")
	}

	if got, want := Default.SayHello(), inst.ID.String(); got != want {
		t.Errorf("SayHello() = %q; want %q", got, want)
	}
}

func TestNamedConcurrentWriters(t *testing.T) {
	prev := Default.Name()
	defer Default.SetName(prev)

	names := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Default.SetName(name)
			_ = Default.Name()
		}()
	}
	wg.Wait()

	got := Default.Name()
	for _, name := range names {
		if got == name {
			return
		}
	}
	t.Errorf("Name() = %q; want one of %v", got, names)
}

func TestFallibleRetriesAfterFailure(t *testing.T) {
	errBoom := errors.New("boom")
	var calls int
	f := NewFallible(func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errBoom
		}
		return 42, nil
	})

	for i := 0; i < 2; i++ {
		if _, err := f.Get(); !errors.Is(err, errBoom) {
			t.Fatalf("attempt %d: error = %v; want errBoom", i+1, err)
		}
		if got := f.State(); got != Unconstructed {
			t.Errorf("attempt %d: state after failure = %v; want unconstructed", i+1, got)
		}
	}

	v, err := f.Get()
	if err != nil {
		t.Fatalf("third attempt failed: %v", err)
	}
	if v != 42 {
		t.Errorf("Get() = %d; want 42", v)
	}

	if _, err := f.Get(); err != nil {
		t.Fatalf("Get after success failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("constructor called %d times; want 3", calls)
	}
	if got := f.State(); got != Constructed {
		t.Errorf("state = %v; want constructed", got)
	}
}

func TestFallibleConcurrentCallersShareConstruction(t *testing.T) {
	var calls atomic.Int32
	f := NewFallible(func() (*Instance, error) {
		calls.Add(1)
		return &Instance{Variant: VariantFallible}, nil
	})

	results := callConcurrently(t, 64, f.Get)
	for i, inst := range results {
		if inst != results[0] {
			t.Fatalf("goroutine %d got a different instance", i)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("constructor called %d times; want 1", got)
	}
}

func TestLookup(t *testing.T) {
	for _, info := range Variants() {
		got, err := Lookup(string(info.Variant))
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", info.Variant, err)
		}
		if got.Variant != info.Variant {
			t.Errorf("Lookup(%q) returned %q", info.Variant, got.Variant)
		}
	}

	if _, err := Lookup("prototype"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Lookup of unknown name error = %v; want ErrUnknownVariant", err)
	}
}
