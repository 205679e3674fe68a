package workloads

import (
	"fmt"

	"github.com/matzehuels/deltabench/pkg/harness"
)

// nlrIterations is how many non-local exits one run performs.
const nlrIterations = 10000

var nlrImmediateWorkload = Workload{
	Name:        "NLRImmediate",
	Description: "10k non-local exits from a directly invoked callback",
	New: func(harness.Config) harness.Benchmark {
		return harness.NewFunc("NLRImmediate", nil, benchNLR(nlrImmediate, 2))
	},
}

var nlrLoopWorkload = Workload{
	Name:        "NLRLoop",
	Description: "10k non-local exits out of a ForEach loop",
	New: func(harness.Config) harness.Benchmark {
		elems := []int{1, 2, 3, 4, 5, 6}
		return harness.NewFunc("NLRLoop", nil, benchNLR(func() int { return nlrLoop(elems) }, 4))
	},
}

// activation identifies one invocation that callbacks can return from.
// Unwinding is a panic carrying the activation; only the invocation that
// created it recovers.
type activation struct {
	value int
}

// exit unwinds to the invocation that owns a, which then returns value.
func (a *activation) exit(value int) {
	a.value = value
	panic(a)
}

// catch must be deferred by the owner of a. It stops the unwinding started
// by a.exit and stores the value in *result. Panics that do not carry a
// continue upward.
func (a *activation) catch(result *int) {
	if r := recover(); r != nil {
		if r != a {
			panic(r)
		}
		*result = a.value
	}
}

func nlrImmediate() (result int) {
	a := &activation{}
	defer a.catch(&result)
	invoke(func() { a.exit(2) })
	return 1
}

//go:noinline
func invoke(f func()) { f() }

// nlrLoop returns the first element equal to 4, leaving the iteration from
// inside the callback. It returns -1 if there is none.
func nlrLoop(elems []int) (result int) {
	a := &activation{}
	defer a.catch(&result)
	forEach(elems, func(e int) {
		if e == 4 {
			a.exit(e)
		}
	})
	return -1
}

//go:noinline
func forEach(elems []int, f func(int)) {
	for _, e := range elems {
		f(e)
	}
}

func benchNLR(nlr func() int, want int) func() error {
	return func() error {
		for i := 0; i < nlrIterations; i++ {
			if got := nlr(); got != want {
				return fmt.Errorf("non-local return yielded %d, want %d", got, want)
			}
		}
		return nil
	}
}
