package deltablue

// Constraint is a relationship between one or more variables that the planner
// keeps satisfied according to its [Strength].
//
// The set of implementations is closed: [StayConstraint], [EditConstraint],
// [EqualityConstraint] and [ScaleConstraint]. The unexported methods carry
// the graph bookkeeping the planner drives.
type Constraint interface {
	// Strength returns the constraint's strength.
	Strength() Strength

	// IsSatisfied reports whether a method was chosen for the constraint in
	// the current solution.
	IsSatisfied() bool

	// IsInput reports whether the constraint depends on external state. Only
	// edit constraints are inputs.
	IsInput() bool

	// Output returns the variable the constraint currently computes. The
	// result is meaningless when the constraint is not satisfied.
	Output() *Variable

	// Execute enforces the constraint from its current inputs. It assumes the
	// constraint is satisfied.
	Execute()

	// String describes the constraint for logs and errors.
	String() string

	// addToGraph registers the constraint on its variables.
	addToGraph()

	// removeFromGraph unregisters the constraint from its variables and marks
	// it unsatisfied.
	removeFromGraph()

	// chooseMethod decides whether, and for binary constraints in which
	// direction, the constraint can be satisfied. The output of the chosen
	// method must not carry mark and must be weaker than the constraint.
	chooseMethod(mark int)

	// inputsKnown reports whether every input is stay, carries mark, or is
	// not determined by any constraint.
	inputsKnown(mark int) bool

	// markInputs stamps mark on every input.
	markInputs(mark int)

	// markUnsatisfied records that the constraint is no longer satisfied.
	markUnsatisfied()

	// recalculate derives the output's walkabout strength and stay flag from
	// the inputs, executing immediately when the output becomes stay.
	recalculate()
}
