package workloads

import (
	"testing"

	"github.com/matzehuels/deltabench/pkg/errors"
	"github.com/matzehuels/deltabench/pkg/harness"
)

func TestNames(t *testing.T) {
	want := []string{
		"DeltaBlue",
		"MethodFibonacci",
		"ClosureFibonacci",
		"ClosureDefFibonacci",
		"SlotRead",
		"SlotWrite",
		"NLRImmediate",
		"NLRLoop",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got[0] = "mutated"
	if Names()[0] != "DeltaBlue" {
		t.Error("Names should return a copy")
	}
}

func TestLookup(t *testing.T) {
	w, ok := Lookup("DeltaBlue")
	if !ok {
		t.Fatal("DeltaBlue should be registered")
	}
	if w.Description == "" {
		t.Error("workloads should be described")
	}
	if _, ok := Lookup("Richards"); ok {
		t.Error("Richards is not registered")
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("Splay", harness.DefaultConfig())
	if !errors.Is(err, errors.ErrCodeUnknownWorkload) {
		t.Errorf("err = %v, want %v", err, errors.ErrCodeUnknownWorkload)
	}
}

// Every workload must set up and complete a run with its built-in checks
// passing.
func TestWorkloadsRun(t *testing.T) {
	cfg := harness.DefaultConfig()
	cfg.ChainSize = 20
	cfg.ProjectionSize = 20

	for _, w := range All() {
		t.Run(w.Name, func(t *testing.T) {
			b, err := New(w.Name, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if b.Name() != w.Name {
				t.Errorf("Name() = %q, want %q", b.Name(), w.Name)
			}
			if err := b.Setup(); err != nil {
				t.Fatalf("Setup: %v", err)
			}
			if err := b.Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}
		})
	}
}

func TestDeltaBlueRejectsBadSizes(t *testing.T) {
	cfg := harness.DefaultConfig()
	cfg.ChainSize = 0
	b, err := New("DeltaBlue", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Setup(); err == nil {
		t.Error("Setup should fail for a chain of size 0")
	}
}

func TestFib(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1}, {1, 1}, {2, 2}, {5, 8}, {10, 89},
	}
	m := &methodFib{}
	c := &closureDefFib{}
	f := closureFib()
	for _, tt := range tests {
		if got := m.fib(tt.n); got != tt.want {
			t.Errorf("methodFib.fib(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := c.fib(tt.n); got != tt.want {
			t.Errorf("closureDefFib.fib(%d) = %d, want %d", tt.n, got, tt.want)
		}
		if got := f(tt.n); got != tt.want {
			t.Errorf("closureFib(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNonLocalReturn(t *testing.T) {
	if got := nlrImmediate(); got != 2 {
		t.Errorf("nlrImmediate() = %d, want 2", got)
	}
	if got := nlrLoop([]int{1, 2, 3, 4, 5, 6}); got != 4 {
		t.Errorf("nlrLoop() = %d, want 4", got)
	}
	if got := nlrLoop([]int{1, 2, 3}); got != -1 {
		t.Errorf("nlrLoop without 4 = %d, want -1", got)
	}
}

func TestNonLocalReturnForeignPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "foreign" {
			t.Errorf("recovered %v, want the foreign panic to propagate", r)
		}
	}()
	func() (result int) {
		a := &activation{}
		defer a.catch(&result)
		panic("foreign")
	}()
	t.Error("foreign panic was swallowed")
}

func TestNestedActivations(t *testing.T) {
	outer := func() (result int) {
		a := &activation{}
		defer a.catch(&result)
		inner := func() (r int) {
			b := &activation{}
			defer b.catch(&r)
			a.exit(7)
			return 0
		}
		inner()
		return 1
	}
	if got := outer(); got != 7 {
		t.Errorf("exit through an inner activation = %d, want 7", got)
	}
}
