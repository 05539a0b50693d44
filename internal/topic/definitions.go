package topic

import (
	"math"

	"github.com/san-kum/physcalc/internal/formula"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

func free(name, label, unit string, def float64) Param {
	return Param{Name: name, Label: label, Unit: unit, Default: def, Min: negInf, Max: posInf}
}

func atLeast(name, label, unit string, def, lo float64) Param {
	p := free(name, label, unit, def)
	p.Min = lo
	return p
}

func optional(name, label, unit string) Param {
	p := free(name, label, unit, 0)
	p.Optional = true
	return p
}

func builtinTopics() []*Topic {
	angle := atLeast("angle", "Launch Angle", "°", 45, 0)
	angle.Max = 90

	temperature := atLeast("temperature", "Temperature", "K", 300, 0)
	temperature.MinOpen = true

	return []*Topic{
		{
			Name:    formula.TopicProjectile,
			Title:   "Projectile Motion",
			Summary: "flight time, peak height and range over flat ground",
			Params: []Param{
				atLeast("v0", "Initial Velocity", "m/s", 20, 0),
				angle,
			},
			Outputs: []string{formula.LabelTimeOfFlight, formula.LabelMaxHeight, formula.LabelRange},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.ProjectileMotion(c, in["v0"], in["angle"]), nil
			},
		},
		{
			Name:    formula.TopicNewton,
			Title:   "Newton's Second Law",
			Summary: "acceleration from net force and mass",
			Params: []Param{
				free("force", "Force", "N", 10),
				free("mass", "Mass", "kg", 2),
			},
			Outputs: []string{formula.LabelAcceleration},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.NewtonsSecondLaw(c, in["force"], in["mass"])
			},
		},
		{
			Name:    formula.TopicCoulomb,
			Title:   "Coulomb's Law",
			Summary: "electrostatic force between two point charges",
			Params: []Param{
				free("q1", "Charge 1", "C", 1e-6),
				free("q2", "Charge 2", "C", 2e-6),
				free("distance", "Distance", "m", 0.1),
			},
			Outputs: []string{formula.LabelForce},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.CoulombsLaw(c, in["q1"], in["q2"], in["distance"])
			},
		},
		{
			Name:    formula.TopicOhm,
			Title:   "Ohm's Law",
			Summary: "leave exactly one of voltage, current, resistance blank",
			Params: []Param{
				optional("voltage", "Voltage", "V"),
				optional("current", "Current", "A"),
				optional("resistance", "Resistance", "Ω"),
			},
			Outputs: []string{formula.LabelVoltage, formula.LabelCurrent, formula.LabelResistance},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.OhmsLaw(c, in.optional("voltage"), in.optional("current"), in.optional("resistance"))
			},
		},
		{
			Name:    formula.TopicCircular,
			Title:   "Circular Motion",
			Summary: "centripetal acceleration",
			Params: []Param{
				free("speed", "Speed", "m/s", 10),
				free("radius", "Radius", "m", 2),
			},
			Outputs: []string{formula.LabelCentripetal},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.CircularMotion(c, in["speed"], in["radius"])
			},
		},
		{
			Name:    formula.TopicLorentz,
			Title:   "Lorentz Force",
			Summary: "magnetic force on a moving charge",
			Params: []Param{
				free("charge", "Charge", "C", 1),
				free("speed", "Speed", "m/s", 1),
				free("field", "Magnetic Field", "T", 1),
				free("angle", "Angle", "°", 90),
			},
			Outputs: []string{formula.LabelLorentzForce},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.LorentzForce(c, in["charge"], in["speed"], in["field"], in["angle"]), nil
			},
		},
		{
			Name:    formula.TopicCapacitor,
			Title:   "Capacitor Energy",
			Summary: "energy stored at a given voltage",
			Params: []Param{
				atLeast("capacitance", "Capacitance", "F", 1e-6, 0),
				free("voltage", "Voltage", "V", 5),
			},
			Outputs: []string{formula.LabelEnergy},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.CapacitorEnergy(c, in["capacitance"], in["voltage"]), nil
			},
		},
		{
			Name:    formula.TopicBlackbody,
			Title:   "Blackbody Radiation",
			Summary: "Stefan-Boltzmann power per unit area",
			Params:  []Param{temperature},
			Outputs: []string{formula.LabelPowerPerArea},
			eval: func(c formula.Constants, in Inputs) (formula.Result, error) {
				return formula.BlackbodyRadiation(c, in["temperature"]), nil
			},
		},
	}
}
