// Package deltablue implements the DeltaBlue incremental constraint solver.
//
// # Overview
//
// DeltaBlue keeps a graph of mutable [Variable] values consistent with a set
// of directional constraints. Every constraint carries a [Strength]; when two
// constraints compete for the same output variable, the stronger one wins and
// the weaker one is left unsatisfied until the stronger one is retracted.
//
// The algorithm is described in "The DeltaBlue Algorithm: An Incremental
// Constraint Hierarchy Solver" by Bjorn N. Freeman-Benson and John Maloney
// (Communications of the ACM, January 1990).
//
// # Basic Usage
//
// Create a [Planner], some variables, and constraints. Constructors join the
// graph immediately and return an error if a required constraint cannot be
// satisfied:
//
//	p := deltablue.NewPlanner()
//	a := deltablue.NewVariable("a", 0)
//	b := deltablue.NewVariable("b", 0)
//	if _, err := deltablue.NewEqualityConstraint(p, a, b, deltablue.Required); err != nil {
//	    return err
//	}
//	if err := p.SetValue(a, 42); err != nil {
//	    return err
//	}
//	// b.Value() == 42
//
// # Plans
//
// Editing a value goes through an [EditConstraint]. [Planner.ExtractPlanFromConstraints]
// walks the dataflow graph downstream of the edit and returns a [Plan], an
// ordered list of constraints that can be executed repeatedly while the input
// changes. A plan stays valid until the graph topology changes.
//
// # Constraint Kinds
//
//   - [StayConstraint]: keeps a variable constant (unary)
//   - [EditConstraint]: marks a variable as externally driven (unary, input)
//   - [EqualityConstraint]: v1 = v2 (binary)
//   - [ScaleConstraint]: v2 = v1*scale + offset (binary, plus two read-only inputs)
//
// # Errors
//
// Adding a constraint fails with [ErrConstraintViolation] when it has
// [Required] strength and cannot be satisfied, and with [ErrCycleDetected]
// when satisfying it would close a cycle in the dataflow graph. In the cycle
// case the constraint has already been rolled back. Non-required constraints
// that cannot be satisfied are not an error; they simply stay unsatisfied.
//
// # Concurrency
//
// A Planner and the graph it manages are not safe for concurrent use. Calling
// Planner methods from inside a constraint's Execute is not supported.
package deltablue
