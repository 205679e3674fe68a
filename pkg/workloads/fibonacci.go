package workloads

import (
	"fmt"

	"github.com/matzehuels/deltabench/pkg/harness"
)

const (
	fibArgument = 25

	// fibExpected is fib(25) with fib(0) = fib(1) = 1.
	fibExpected = 121393
)

var methodFibonacci = Workload{
	Name:        "MethodFibonacci",
	Description: "recursive fib(25) through a method",
	New: func(harness.Config) harness.Benchmark {
		m := &methodFib{}
		return harness.NewFunc("MethodFibonacci", nil, func() error {
			return checkFib(m.fib(fibArgument))
		})
	},
}

var closureFibonacci = Workload{
	Name:        "ClosureFibonacci",
	Description: "recursive fib(25) through a self-referencing closure",
	New: func(harness.Config) harness.Benchmark {
		return harness.NewFunc("ClosureFibonacci", nil, func() error {
			return checkFib(closureFib()(fibArgument))
		})
	},
}

var closureDefFibonacci = Workload{
	Name:        "ClosureDefFibonacci",
	Description: "recursive fib(25) through a closure defined on every call",
	New: func(harness.Config) harness.Benchmark {
		c := &closureDefFib{}
		return harness.NewFunc("ClosureDefFibonacci", nil, func() error {
			return checkFib(c.fib(fibArgument))
		})
	},
}

type methodFib struct{}

func (m *methodFib) fib(n int) int {
	if n < 2 {
		return 1
	}
	return m.fib(n-1) + m.fib(n-2)
}

func closureFib() func(int) int {
	var f func(int) int
	f = func(n int) int {
		if n < 2 {
			return 1
		}
		return f(n-1) + f(n-2)
	}
	return f
}

type closureDefFib struct{}

// fib builds a fresh closure on every call; the closure recurses back into
// the method.
func (c *closureDefFib) fib(x int) int {
	f := func(n int) int {
		if n < 2 {
			return 1
		}
		return c.fib(n-1) + c.fib(n-2)
	}
	return f(x)
}

func checkFib(got int) error {
	if got != fibExpected {
		return fmt.Errorf("fib(%d) = %d, want %d", fibArgument, got, fibExpected)
	}
	return nil
}
