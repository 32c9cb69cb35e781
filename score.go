package main

// Totals returns the force and mass of the vehicle with sel installed.
// A nil selection means the bare vehicle.
func (p *Problem) Totals(sel Selection) (force, mass int64) {
	force, mass = p.Vehicle.Force, p.Vehicle.Mass
	for i, used := range sel {
		if used && i < len(p.Parts) {
			force += p.Parts[i].Force
			mass += p.Parts[i].Mass
		}
	}
	return force, mass
}

// Acceleration is total force over total mass for sel. A zero total mass
// yields +Inf or NaN from the float division; it is not reported as an error.
func (p *Problem) Acceleration(sel Selection) float64 {
	force, mass := p.Totals(sel)
	return float64(force) / float64(mass)
}

// BaselineAcceleration is the acceleration with no parts installed.
func (p *Problem) BaselineAcceleration() float64 {
	return p.Acceleration(nil)
}

// best tracks the incumbent while the enumeration runs.
type best struct {
	accel float64
	sel   Selection
}

func newBest(p *Problem) best {
	return best{
		accel: p.BaselineAcceleration(),
		sel:   make(Selection, len(p.Parts)),
	}
}

// offer replaces the incumbent only when accel is strictly greater, so the
// first selection to reach a maximum keeps it. Reports whether it replaced.
func (b *best) offer(sel Selection, accel float64) bool {
	if accel > b.accel {
		b.accel = accel
		b.sel = sel
		return true
	}
	return false
}
