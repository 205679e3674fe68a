package deltablue

import (
	"errors"
	"fmt"
	"testing"
)

func TestChainTest(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			if err := ChainTest(NewPlanner(), n); err != nil {
				t.Fatalf("ChainTest(%d) error: %v", n, err)
			}
		})
	}
}

func TestProjectionTest(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			if err := ProjectionTest(NewPlanner(), n); err != nil {
				t.Fatalf("ProjectionTest(%d) error: %v", n, err)
			}
		})
	}
}

func TestScenariosShareOnePlanner(t *testing.T) {
	p := NewPlanner()
	for i := 0; i < 3; i++ {
		if err := ChainTest(p, 20); err != nil {
			t.Fatalf("round %d: chain: %v", i, err)
		}
		if err := ProjectionTest(p, 20); err != nil {
			t.Fatalf("round %d: projection: %v", i, err)
		}
	}
}

func TestScenarioRejectsBadSize(t *testing.T) {
	if err := ChainTest(NewPlanner(), 0); err == nil {
		t.Error("ChainTest(0) should fail")
	}
	if err := ProjectionTest(NewPlanner(), -1); err == nil {
		t.Error("ProjectionTest(-1) should fail")
	}
}

func TestScenarioError(t *testing.T) {
	err := error(&ScenarioError{Scenario: "chain", Check: "propagate", Variable: "v100", Want: 3, Got: 0})
	if !errors.Is(err, ErrScenarioFailed) {
		t.Error("ScenarioError should match ErrScenarioFailed")
	}
	want := "chain: propagate: v100 = 0, want 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestProjectionValues(t *testing.T) {
	p := NewPlanner()
	scale := NewVariable("scale", 10)
	offset := NewVariable("offset", 1000)
	src := make([]*Variable, 4)
	dst := make([]*Variable, 4)
	for i := range src {
		src[i] = NewVariable(fmt.Sprintf("src%d", i), float64(i))
		dst[i] = NewVariable(fmt.Sprintf("dst%d", i), float64(i))
		mustStay(t, p, src[i], Normal)
		if _, err := NewScaleConstraint(p, src[i], scale, offset, dst[i], Required); err != nil {
			t.Fatal(err)
		}
	}
	for i, d := range dst {
		if want := float64(i*10 + 1000); d.Value() != want {
			t.Errorf("%s = %g, want %g", d.Name(), d.Value(), want)
		}
	}
	if err := p.SetValue(offset, 0); err != nil {
		t.Fatal(err)
	}
	for i, d := range dst {
		if want := float64(i * 10); d.Value() != want {
			t.Errorf("after offset edit %s = %g, want %g", d.Name(), d.Value(), want)
		}
	}
}

func BenchmarkChain100(b *testing.B) {
	p := NewPlanner()
	for i := 0; i < b.N; i++ {
		if err := ChainTest(p, 100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProjection100(b *testing.B) {
	p := NewPlanner()
	for i := 0; i < b.N; i++ {
		if err := ProjectionTest(p, 100); err != nil {
			b.Fatal(err)
		}
	}
}
