package formula

// Result labels. Each carries its unit annotation.
const (
	LabelTimeOfFlight = "Time of Flight (s)"
	LabelMaxHeight    = "Maximum Height (m)"
	LabelRange        = "Range (m)"
	LabelAcceleration = "Acceleration (m/s²)"
	LabelForce        = "Force (N)"
	LabelVoltage      = "Voltage (V)"
	LabelCurrent      = "Current (A)"
	LabelResistance   = "Resistance (Ω)"
	LabelCentripetal  = "Centripetal Acceleration (m/s²)"
	LabelLorentzForce = "Lorentz Force (N)"
	LabelEnergy       = "Energy (J)"
	LabelPowerPerArea = "Power per Unit Area (W/m²)"
)

type Quantity struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Result is the success variant of a formula evaluation. Quantities keep
// the order the formula produced them in.
type Result struct {
	Topic      string     `json:"topic"`
	Quantities []Quantity `json:"quantities"`
}

func newResult(topic string, qs ...Quantity) Result {
	return Result{Topic: topic, Quantities: qs}
}

func (r Result) Value(label string) (float64, bool) {
	for _, q := range r.Quantities {
		if q.Label == label {
			return q.Value, true
		}
	}
	return 0, false
}

func (r Result) Labels() []string {
	labels := make([]string, len(r.Quantities))
	for i, q := range r.Quantities {
		labels[i] = q.Label
	}
	return labels
}

// Map returns a fresh label→value map owned by the caller.
func (r Result) Map() map[string]float64 {
	m := make(map[string]float64, len(r.Quantities))
	for _, q := range r.Quantities {
		m[q.Label] = q.Value
	}
	return m
}
