package deltablue

import "fmt"

// binary holds the state shared by constraints relating two variables, either
// of which may be the output depending on the chosen direction.
type binary struct {
	strength  Strength
	v1, v2    *Variable
	direction Direction
}

func (b *binary) Strength() Strength { return b.strength }

// Direction returns the current flow direction, [DirectionNone] when unsatisfied.
func (b *binary) Direction() Direction { return b.direction }

func (b *binary) IsSatisfied() bool { return b.direction != DirectionNone }
func (b *binary) IsInput() bool     { return false }

// Output returns v2 when flowing forward and v1 otherwise.
func (b *binary) Output() *Variable {
	if b.direction == Forward {
		return b.v2
	}
	return b.v1
}

// Input returns v1 when flowing forward and v2 otherwise.
func (b *binary) Input() *Variable {
	if b.direction == Forward {
		return b.v1
	}
	return b.v2
}

// chooseMethod picks the direction from the marks and walkabout strengths of
// the two variables. A marked variable can only be an input. When neither is
// marked, the output is the variable with the weaker walkabout strength.
func (b *binary) chooseMethod(mark int) {
	if b.v1.mark == mark {
		b.direction = DirectionNone
		if b.v2.mark != mark && b.strength.StrongerThan(b.v2.walkStrength) {
			b.direction = Forward
		}
		return
	}
	if b.v2.mark == mark {
		b.direction = DirectionNone
		if b.v1.mark != mark && b.strength.StrongerThan(b.v1.walkStrength) {
			b.direction = Backward
		}
		return
	}
	if b.v1.walkStrength.WeakerThan(b.v2.walkStrength) {
		b.direction = DirectionNone
		if b.strength.StrongerThan(b.v1.walkStrength) {
			b.direction = Backward
		}
		return
	}
	b.direction = DirectionNone
	if b.strength.StrongerThan(b.v2.walkStrength) {
		b.direction = Forward
	}
}

func (b *binary) inputsKnown(mark int) bool {
	in := b.Input()
	return in.mark == mark || in.stay || in.determinedBy == nil
}

func (b *binary) markInputs(mark int) { b.Input().mark = mark }

func (b *binary) markUnsatisfied() { b.direction = DirectionNone }

func (b *binary) attach(self Constraint) {
	b.v1.addConstraint(self)
	b.v2.addConstraint(self)
	b.direction = DirectionNone
}

func (b *binary) detach(self Constraint) {
	if b.v1 != nil {
		b.v1.removeConstraint(self)
	}
	if b.v2 != nil {
		b.v2.removeConstraint(self)
	}
	b.direction = DirectionNone
}

// EqualityConstraint keeps two variables equal: v1 = v2.
type EqualityConstraint struct {
	binary
}

// NewEqualityConstraint creates v1 = v2 and adds it to p's graph.
func NewEqualityConstraint(p *Planner, v1, v2 *Variable, s Strength) (*EqualityConstraint, error) {
	if v1 == nil || v2 == nil {
		return nil, ErrNilVariable
	}
	c := &EqualityConstraint{binary{strength: s, v1: v1, v2: v2}}
	if err := p.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *EqualityConstraint) addToGraph()      { c.attach(c) }
func (c *EqualityConstraint) removeFromGraph() { c.detach(c) }

// Execute copies the input value to the output.
func (c *EqualityConstraint) Execute() {
	c.Output().value = c.Input().value
}

func (c *EqualityConstraint) recalculate() {
	in, out := c.Input(), c.Output()
	out.walkStrength = WeakestOf(c.strength, in.walkStrength)
	out.stay = in.stay
	if out.stay {
		c.Execute()
	}
}

func (c *EqualityConstraint) String() string {
	return fmt.Sprintf("Equality(%s, %s, %s, %s)", c.v1.name, c.v2.name, c.strength, c.direction)
}

// ScaleConstraint relates two variables linearly: v2 = v1*scale + offset.
// Either v1 or v2 may be computed; scale and offset are read-only inputs that
// are registered on the graph but never become the output.
type ScaleConstraint struct {
	binary
	scale  *Variable
	offset *Variable
}

// NewScaleConstraint creates dst = src*scale + offset and adds it to p's graph.
func NewScaleConstraint(p *Planner, src, scale, offset, dst *Variable, s Strength) (*ScaleConstraint, error) {
	if src == nil || scale == nil || offset == nil || dst == nil {
		return nil, ErrNilVariable
	}
	c := &ScaleConstraint{
		binary: binary{strength: s, v1: src, v2: dst},
		scale:  scale,
		offset: offset,
	}
	if err := p.AddConstraint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Scale returns the scale factor variable.
func (c *ScaleConstraint) Scale() *Variable { return c.scale }

// Offset returns the offset variable.
func (c *ScaleConstraint) Offset() *Variable { return c.offset }

func (c *ScaleConstraint) addToGraph() {
	c.attach(c)
	c.scale.addConstraint(c)
	c.offset.addConstraint(c)
}

func (c *ScaleConstraint) removeFromGraph() {
	c.detach(c)
	if c.scale != nil {
		c.scale.removeConstraint(c)
	}
	if c.offset != nil {
		c.offset.removeConstraint(c)
	}
}

func (c *ScaleConstraint) markInputs(mark int) {
	c.binary.markInputs(mark)
	c.scale.mark = mark
	c.offset.mark = mark
}

// Execute computes v2 from v1 when flowing forward and v1 from v2 otherwise.
func (c *ScaleConstraint) Execute() {
	if c.direction == Forward {
		c.v2.value = c.v1.value*c.scale.value + c.offset.value
	} else {
		c.v1.value = (c.v2.value - c.offset.value) / c.scale.value
	}
}

func (c *ScaleConstraint) recalculate() {
	in, out := c.Input(), c.Output()
	out.walkStrength = WeakestOf(c.strength, in.walkStrength)
	out.stay = in.stay && c.scale.stay && c.offset.stay
	if out.stay {
		c.Execute()
	}
}

func (c *ScaleConstraint) String() string {
	return fmt.Sprintf("Scale(%s, %s, %s, %s, %s, %s)",
		c.v1.name, c.scale.name, c.offset.name, c.v2.name, c.strength, c.direction)
}

var (
	_ Constraint = (*EqualityConstraint)(nil)
	_ Constraint = (*ScaleConstraint)(nil)
)
