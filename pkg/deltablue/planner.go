package deltablue

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// DefaultEditRepetitions is how many times [Planner.SetValue] executes the
// extracted plan.
const DefaultEditRepetitions = 10

// Planner runs the DeltaBlue algorithm over a constraint graph. It owns no
// graph nodes; its only state is the traversal mark counter.
//
// The zero value is ready to use. A Planner is not safe for concurrent use.
type Planner struct {
	currentMark     int
	editRepetitions int
	logger          *log.Logger
}

// Option configures a [Planner].
type Option func(*Planner)

// WithLogger makes the planner log cycle rollbacks, required-constraint
// failures and plan extraction at debug level.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// WithEditRepetitions sets how many times [Planner.SetValue] executes its
// plan. Values below 1 are ignored.
func WithEditRepetitions(n int) Option {
	return func(p *Planner) {
		if n >= 1 {
			p.editRepetitions = n
		}
	}
}

// NewPlanner creates a planner.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewMark returns a mark value never handed out before by this planner.
func (p *Planner) NewMark() int {
	p.currentMark++
	return p.currentMark
}

// CurrentMark returns the most recently issued mark.
func (p *Planner) CurrentMark() int { return p.currentMark }

// AddConstraint registers c on its variables and tries to satisfy it,
// possibly overriding weaker constraints. Constructors call it; callers only
// need it to re-add a constraint removed with [Planner.DestroyConstraint].
//
// If the attempt fails, c is detached from the graph again before the error
// is returned.
func (p *Planner) AddConstraint(c Constraint) error {
	c.addToGraph()
	if err := p.incrementalAdd(c); err != nil {
		if !c.IsSatisfied() {
			c.removeFromGraph()
		}
		return err
	}
	return nil
}

// DestroyConstraint retracts c, letting previously overridden constraints
// take over its output, and detaches it from every variable.
func (p *Planner) DestroyConstraint(c Constraint) error {
	var err error
	if c.IsSatisfied() {
		err = p.incrementalRemove(c)
	}
	c.removeFromGraph()
	return err
}

// incrementalAdd satisfies c and then keeps resatisfying whatever constraint
// was overridden, until one of them overrides nothing or fails to satisfy.
// All attempts share one mark so the cascade cannot loop.
func (p *Planner) incrementalAdd(c Constraint) error {
	mark := p.NewMark()
	overridden, err := p.satisfy(c, mark)
	for err == nil && overridden != nil {
		overridden, err = p.satisfy(overridden, mark)
	}
	return err
}

// incrementalRemove retracts c and retries the unsatisfied constraints
// downstream of its old output, strongest first so that strong constraints
// claim freed variables before weak ones are tried. c must be satisfied.
func (p *Planner) incrementalRemove(c Constraint) error {
	out := c.Output()
	c.markUnsatisfied()
	c.removeFromGraph()
	unsatisfied := p.removePropagateFrom(out)
	for _, s := range DescendingStrengths() {
		for _, u := range unsatisfied {
			if u.Strength() != s || u.IsSatisfied() {
				continue
			}
			if err := p.incrementalAdd(u); err != nil {
				return err
			}
		}
	}
	return nil
}

// satisfy tries to find a method for c. On success it takes over c's output,
// propagates walkabout strengths downstream, and returns the constraint that
// previously determined the output (nil if none). A non-required constraint
// that cannot be satisfied returns (nil, nil).
func (p *Planner) satisfy(c Constraint, mark int) (Constraint, error) {
	c.chooseMethod(mark)
	if !c.IsSatisfied() {
		if c.Strength() == Required {
			p.debug("required constraint unsatisfiable", "constraint", c)
			return nil, fmt.Errorf("%w: %s", ErrConstraintViolation, c)
		}
		return nil, nil
	}

	// Marking the inputs lets addPropagate detect a path back to them.
	c.markInputs(mark)
	out := c.Output()
	overridden := out.determinedBy
	if overridden != nil {
		overridden.markUnsatisfied()
	}
	out.determinedBy = c
	ok, err := p.addPropagate(c, mark)
	if err != nil {
		return nil, err
	}
	if !ok {
		p.debug("cycle rolled back", "constraint", c)
		return nil, fmt.Errorf("%w: %s", ErrCycleDetected, c)
	}
	out.mark = mark
	return overridden, nil
}

// addPropagate recomputes walkabout strengths and stay flags downstream of c,
// executing constraints whose output becomes stay. Reaching a variable that
// carries mark means c's output feeds back into one of its inputs: c is then
// removed again and addPropagate reports false.
func (p *Planner) addPropagate(c Constraint, mark int) (bool, error) {
	todo := []Constraint{c}
	for len(todo) > 0 {
		d := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if d.Output().mark == mark {
			if err := p.incrementalRemove(c); err != nil {
				return false, err
			}
			return false, nil
		}
		d.recalculate()
		todo = appendConsumers(d.Output(), todo)
	}
	return true, nil
}

// removePropagateFrom resets out to undetermined and walks downstream of it,
// recalculating every satisfied constraint on the way and collecting every
// unsatisfied constraint touching a visited variable.
func (p *Planner) removePropagateFrom(out *Variable) []Constraint {
	out.determinedBy = nil
	out.walkStrength = Weakest
	out.stay = true

	var unsatisfied []Constraint
	todo := []*Variable{out}
	for len(todo) > 0 {
		v := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, c := range v.constraints {
			if !c.IsSatisfied() {
				unsatisfied = append(unsatisfied, c)
			}
		}
		determining := v.determinedBy
		for _, next := range v.constraints {
			if next != determining && next.IsSatisfied() {
				next.recalculate()
				todo = append(todo, next.Output())
			}
		}
	}
	return unsatisfied
}

// ExtractPlanFromConstraints builds a plan starting from the satisfied input
// constraints among cs. Other constraints in cs are ignored.
func (p *Planner) ExtractPlanFromConstraints(cs []Constraint) *Plan {
	var sources []Constraint
	for _, c := range cs {
		if c.IsInput() && c.IsSatisfied() {
			sources = append(sources, c)
		}
	}
	return p.MakePlan(sources)
}

// MakePlan builds a plan from satisfied source constraints. A constraint is
// appended once all of its inputs are known under a fresh mark: computed
// earlier in the plan, stay, or undetermined. Constraints whose inputs are
// never known are left out. sources is not modified.
func (p *Planner) MakePlan(sources []Constraint) *Plan {
	mark := p.NewMark()
	plan := &Plan{}
	todo := append([]Constraint(nil), sources...)
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		out := c.Output()
		if out.mark != mark && c.inputsKnown(mark) {
			plan.AddConstraint(c)
			out.mark = mark
			todo = appendConsumers(out, todo)
		}
	}
	p.debug("plan extracted", "sources", len(sources), "steps", plan.Len())
	return plan
}

// PropagateFrom executes every satisfied constraint downstream of v. It is
// the direct alternative to extracting and running a plan when v changed.
func (p *Planner) PropagateFrom(v *Variable) {
	todo := appendConsumers(v, nil)
	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		c.Execute()
		todo = appendConsumers(c.Output(), todo)
	}
}

// SetValue edits v to value through a transient [Preferred] edit constraint,
// executing the resulting plan [DefaultEditRepetitions] times unless
// [WithEditRepetitions] says otherwise.
func (p *Planner) SetValue(v *Variable, value float64) error {
	n := p.editRepetitions
	if n == 0 {
		n = DefaultEditRepetitions
	}
	return p.SetValueN(v, value, n)
}

// SetValueN is [Planner.SetValue] with an explicit number of plan executions.
func (p *Planner) SetValueN(v *Variable, value float64, repetitions int) error {
	edit, err := NewEditConstraint(p, v, Preferred)
	if err != nil {
		return err
	}
	plan := p.ExtractPlanFromConstraints([]Constraint{edit})
	for i := 0; i < repetitions; i++ {
		v.value = value
		plan.Execute()
	}
	return p.DestroyConstraint(edit)
}

// appendConsumers appends to list every satisfied constraint that reads v,
// that is every satisfied constraint on v except the one determining it.
func appendConsumers(v *Variable, list []Constraint) []Constraint {
	determining := v.determinedBy
	for _, c := range v.constraints {
		if c != determining && c.IsSatisfied() {
			list = append(list, c)
		}
	}
	return list
}

func (p *Planner) debug(msg string, keyvals ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, keyvals...)
	}
}
