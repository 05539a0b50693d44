package formula

import "math"

// ProjectileMotion evaluates launch at speed v0 and angle angleDeg above the
// horizontal over flat ground.
func ProjectileMotion(c Constants, v0, angleDeg float64) Result {
	theta := radians(angleDeg)
	sin := math.Sin(theta)

	flight := 2 * v0 * sin / c.G
	height := v0 * v0 * sin * sin / (2 * c.G)
	rng := v0 * v0 * math.Sin(2*theta) / c.G

	return newResult(TopicProjectile,
		Quantity{Label: LabelTimeOfFlight, Value: flight},
		Quantity{Label: LabelMaxHeight, Value: height},
		Quantity{Label: LabelRange, Value: rng},
	)
}

// NewtonsSecondLaw returns the acceleration F/m.
func NewtonsSecondLaw(c Constants, force, mass float64) (Result, error) {
	if mass == 0 {
		return Result{}, divisionByZero(TopicNewton, "mass")
	}
	return newResult(TopicNewton, Quantity{Label: LabelAcceleration, Value: force / mass}), nil
}

// CircularMotion returns the centripetal acceleration v²/r.
func CircularMotion(c Constants, speed, radius float64) (Result, error) {
	if radius == 0 {
		return Result{}, divisionByZero(TopicCircular, "radius")
	}
	return newResult(TopicCircular, Quantity{Label: LabelCentripetal, Value: speed * speed / radius}), nil
}
