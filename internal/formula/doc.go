// Package formula provides closed-form physics formulas.
//
// Each formula is a pure function of a [Constants] table and a handful of
// scalar inputs, returning a [Result] of labeled quantities:
//
//   - [ProjectileMotion]: time of flight, maximum height and range
//   - [NewtonsSecondLaw]: acceleration from force and mass
//   - [CoulombsLaw]: electrostatic force between two point charges
//   - [OhmsLaw]: the missing one of voltage, current and resistance
//   - [CircularMotion]: centripetal acceleration
//   - [LorentzForce]: magnetic force on a moving charge
//   - [CapacitorEnergy]: energy stored in a capacitor
//   - [BlackbodyRadiation]: Stefan-Boltzmann radiated power per area
//
// Angles are taken in degrees. Domain failures are returned as [*Error]
// values that unwrap to [ErrDivisionByZero] or [ErrInvalidInput].
//
// # Example
//
//	consts := formula.DefaultConstants()
//	res, err := formula.NewtonsSecondLaw(consts, 10, 2)
//	if err != nil {
//	    return err
//	}
//	a, _ := res.Value(formula.LabelAcceleration)
package formula
