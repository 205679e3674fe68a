package deltablue

import (
	"fmt"
	"slices"
)

// Variable is a named mutable cell in the constraint graph.
//
// Besides its value, a Variable records the constraints that refer to it, the
// constraint currently computing it (if any), and the bookkeeping the planner
// needs for graph walks: the last mark stamped on it, its walkabout strength
// and its stay flag.
//
// The zero value is not usable - use [NewVariable].
type Variable struct {
	name         string
	value        float64
	constraints  []Constraint
	determinedBy Constraint
	mark         int
	walkStrength Strength
	stay         bool
}

// NewVariable creates an unconstrained variable with the given initial value.
// The variable starts with [Weakest] walkabout strength and is stay.
func NewVariable(name string, value float64) *Variable {
	return &Variable{
		name:         name,
		value:        value,
		walkStrength: Weakest,
		stay:         true,
	}
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// Value returns the current value.
func (v *Variable) Value() float64 { return v.value }

// SetValue overwrites the value without resatisfying anything. Use it to feed
// an input before executing a [Plan]; use [Planner.SetValue] to edit through
// the solver.
func (v *Variable) SetValue(value float64) { v.value = value }

// DeterminedBy returns the constraint currently computing v, or nil.
func (v *Variable) DeterminedBy() Constraint { return v.determinedBy }

// WalkStrength returns v's walkabout strength: the strength of the weakest
// constraint on the path that determines it, or [Weakest] if undetermined.
func (v *Variable) WalkStrength() Strength { return v.walkStrength }

// Stay reports whether v is constant for the duration of a plan.
func (v *Variable) Stay() bool { return v.stay }

// Mark returns the last traversal mark stamped on v.
func (v *Variable) Mark() int { return v.mark }

// Constraints returns a copy of the constraints that refer to v.
func (v *Variable) Constraints() []Constraint { return slices.Clone(v.constraints) }

// String returns "name=value".
func (v *Variable) String() string { return fmt.Sprintf("%s=%g", v.name, v.value) }

// addConstraint records that c refers to v. Adding c twice is a caller error.
func (v *Variable) addConstraint(c Constraint) {
	v.constraints = append(v.constraints, c)
}

// removeConstraint drops every reference to c, clearing determinedBy if c
// was computing v. The order of the remaining constraints is preserved.
func (v *Variable) removeConstraint(c Constraint) {
	v.constraints = slices.DeleteFunc(v.constraints, func(x Constraint) bool { return x == c })
	if v.determinedBy == c {
		v.determinedBy = nil
	}
}
