package deltablue

import "slices"

// Plan is an ordered list of constraints whose execution, in order,
// resatisfies the graph for a changing input. The order is fixed when the plan
// is extracted; a plan stays valid until constraints are added or removed.
type Plan struct {
	constraints []Constraint
}

// AddConstraint appends c to the plan.
func (p *Plan) AddConstraint(c Constraint) {
	p.constraints = append(p.constraints, c)
}

// Execute runs every constraint in stored order.
func (p *Plan) Execute() {
	for _, c := range p.constraints {
		c.Execute()
	}
}

// Len returns the number of constraints in the plan.
func (p *Plan) Len() int { return len(p.constraints) }

// Constraints returns a copy of the plan's constraints in execution order.
func (p *Plan) Constraints() []Constraint { return slices.Clone(p.constraints) }
