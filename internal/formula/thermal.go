package formula

import "math"

// BlackbodyRadiation returns the Stefan-Boltzmann power per unit area σT⁴.
// Temperature is in kelvin; non-positive values are not rejected here.
func BlackbodyRadiation(c Constants, temperature float64) Result {
	return newResult(TopicBlackbody, Quantity{Label: LabelPowerPerArea, Value: c.Sigma * math.Pow(temperature, 4)})
}
