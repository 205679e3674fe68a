package deltablue

import "fmt"

// unary holds the state shared by constraints with a single output variable.
type unary struct {
	strength  Strength
	output    *Variable
	satisfied bool
	input     bool
}

func (u *unary) Strength() Strength { return u.strength }
func (u *unary) IsSatisfied() bool  { return u.satisfied }
func (u *unary) IsInput() bool      { return u.input }
func (u *unary) Output() *Variable  { return u.output }

// Execute does nothing: stay and edit constraints compute no values.
func (u *unary) Execute() {}

func (u *unary) chooseMethod(mark int) {
	u.satisfied = u.output.mark != mark && u.strength.StrongerThan(u.output.walkStrength)
}

// inputsKnown is trivially true; unary constraints have no inputs.
func (u *unary) inputsKnown(int) bool { return true }

func (u *unary) markInputs(int) {}

func (u *unary) markUnsatisfied() { u.satisfied = false }

func (u *unary) recalculate() {
	u.output.walkStrength = u.strength
	u.output.stay = !u.input
}

func (u *unary) attach(self Constraint) {
	u.output.addConstraint(self)
	u.satisfied = false
}

func (u *unary) detach(self Constraint) {
	if u.output != nil {
		u.output.removeConstraint(self)
	}
	u.satisfied = false
}

// StayConstraint keeps its variable at its current value with some strength.
// While satisfied, the variable is stay: plans treat it as a constant.
type StayConstraint struct {
	unary
}

// NewStayConstraint creates a stay constraint on v and adds it to p's graph.
func NewStayConstraint(p *Planner, v *Variable, s Strength) (*StayConstraint, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	c := &StayConstraint{unary{strength: s, output: v}}
	if err := p.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *StayConstraint) addToGraph()      { c.attach(c) }
func (c *StayConstraint) removeFromGraph() { c.detach(c) }

func (c *StayConstraint) String() string {
	return fmt.Sprintf("Stay(%s, %s)", c.output.name, c.strength)
}

// EditConstraint marks a variable that the client wants to change. It is the
// only input constraint: plans are extracted starting from edit constraints.
type EditConstraint struct {
	unary
}

// NewEditConstraint creates an edit constraint on v and adds it to p's graph.
func NewEditConstraint(p *Planner, v *Variable, s Strength) (*EditConstraint, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	c := &EditConstraint{unary{strength: s, output: v, input: true}}
	if err := p.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *EditConstraint) addToGraph()      { c.attach(c) }
func (c *EditConstraint) removeFromGraph() { c.detach(c) }

func (c *EditConstraint) String() string {
	return fmt.Sprintf("Edit(%s, %s)", c.output.name, c.strength)
}

var (
	_ Constraint = (*StayConstraint)(nil)
	_ Constraint = (*EditConstraint)(nil)
)
