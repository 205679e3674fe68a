package deltablue

import "fmt"

// ChainTest is the standard DeltaBlue benchmark scenario. It builds a chain of
// n variables joined by required equality constraints, anchors the last one
// with a [StrongDefault] stay, and drives the first one through a [Preferred]
// edit constraint. For every i in 1..n it sets the first variable to i,
// executes the plan, and checks that the value reached the end of the chain.
func ChainTest(p *Planner, n int) error {
	if n < 1 {
		return fmt.Errorf("chain: size must be positive, got %d", n)
	}
	var prev, first, last *Variable
	for i := 1; i <= n; i++ {
		v := NewVariable(fmt.Sprintf("v%d", i), 0)
		if prev != nil {
			if _, err := NewEqualityConstraint(p, prev, v, Required); err != nil {
				return fmt.Errorf("chain: %w", err)
			}
		}
		if i == 1 {
			first = v
		}
		if i == n {
			last = v
		}
		prev = v
	}

	if _, err := NewStayConstraint(p, last, StrongDefault); err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	edit, err := NewEditConstraint(p, first, Preferred)
	if err != nil {
		return fmt.Errorf("chain: %w", err)
	}
	plan := p.ExtractPlanFromConstraints([]Constraint{edit})
	for i := 1; i <= n; i++ {
		first.value = float64(i)
		plan.Execute()
		if last.value != float64(i) {
			return &ScenarioError{Scenario: "chain", Check: "propagate", Variable: last.name, Want: float64(i), Got: last.value}
		}
	}
	return p.DestroyConstraint(edit)
}

// ProjectionTest relates two sets of n variables by dst = src*scale + offset
// through shared scale and offset variables, then edits the mapping from both
// sides and changes the scale and offset factors.
func ProjectionTest(p *Planner, n int) error {
	if n < 1 {
		return fmt.Errorf("projection: size must be positive, got %d", n)
	}
	scale := NewVariable("scale", 10)
	offset := NewVariable("offset", 1000)
	var src, dst *Variable
	dests := make([]*Variable, 0, n)
	for i := 0; i < n; i++ {
		src = NewVariable(fmt.Sprintf("src%d", i), float64(i))
		dst = NewVariable(fmt.Sprintf("dst%d", i), float64(i))
		dests = append(dests, dst)
		if _, err := NewStayConstraint(p, src, Normal); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
		if _, err := NewScaleConstraint(p, src, scale, offset, dst, Required); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
	}

	if err := p.SetValue(src, 17); err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	if dst.value != 1170 {
		return &ScenarioError{Scenario: "projection", Check: "forward edit", Variable: dst.name, Want: 1170, Got: dst.value}
	}

	if err := p.SetValue(dst, 1050); err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	if src.value != 5 {
		return &ScenarioError{Scenario: "projection", Check: "backward edit", Variable: src.name, Want: 5, Got: src.value}
	}

	if err := p.SetValue(scale, 5); err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	for i := 0; i < n-1; i++ {
		want := float64(i*5 + 1000)
		if dests[i].value != want {
			return &ScenarioError{Scenario: "projection", Check: "scale change", Variable: dests[i].name, Want: want, Got: dests[i].value}
		}
	}

	if err := p.SetValue(offset, 2000); err != nil {
		return fmt.Errorf("projection: %w", err)
	}
	for i := 0; i < n-1; i++ {
		want := float64(i*5 + 2000)
		if dests[i].value != want {
			return &ScenarioError{Scenario: "projection", Check: "offset change", Variable: dests[i].name, Want: want, Got: dests[i].value}
		}
	}
	return nil
}
