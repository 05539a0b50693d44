package formula

// CoulombsLaw returns k·q1·q2/r². A squared distance that underflows to zero
// is a division by zero.
func CoulombsLaw(c Constants, q1, q2, distance float64) (Result, error) {
	d2 := distance * distance
	if d2 == 0 {
		return Result{}, divisionByZero(TopicCoulomb, "distance")
	}
	force := c.K * q1 * q2 / d2
	return newResult(TopicCoulomb, Quantity{Label: LabelForce, Value: force}), nil
}

// OhmsLaw solves for whichever of voltage, current and resistance is absent.
// Exactly one of the three must be absent.
func OhmsLaw(c Constants, voltage, current, resistance Optional) (Result, error) {
	v, hasV := voltage.Get()
	i, hasI := current.Get()
	r, hasR := resistance.Get()

	present := 0
	for _, ok := range []bool{hasV, hasI, hasR} {
		if ok {
			present++
		}
	}
	if present != 2 {
		return Result{}, InvalidInput(TopicOhm, "exactly two of voltage, current and resistance are required, got %d", present)
	}

	switch {
	case !hasV:
		return newResult(TopicOhm, Quantity{Label: LabelVoltage, Value: i * r}), nil
	case !hasI:
		if r == 0 {
			return Result{}, divisionByZero(TopicOhm, "resistance")
		}
		return newResult(TopicOhm, Quantity{Label: LabelCurrent, Value: v / r}), nil
	default:
		if i == 0 {
			return Result{}, divisionByZero(TopicOhm, "current")
		}
		return newResult(TopicOhm, Quantity{Label: LabelResistance, Value: v / i}), nil
	}
}

// LorentzForce returns q·v·B·sin θ for a charge moving at angleDeg to the
// field.
func LorentzForce(c Constants, charge, speed, field, angleDeg float64) Result {
	force := charge * speed * field * sinDeg(angleDeg)
	return newResult(TopicLorentz, Quantity{Label: LabelLorentzForce, Value: force})
}

// CapacitorEnergy returns the stored energy ½·C·V².
func CapacitorEnergy(c Constants, capacitance, voltage float64) Result {
	return newResult(TopicCapacitor, Quantity{Label: LabelEnergy, Value: 0.5 * capacitance * voltage * voltage})
}
