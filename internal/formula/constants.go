package formula

import "math"

const (
	DefaultGravity          = 9.81
	DefaultElementaryCharge = 1.602e-19
	DefaultCoulomb          = 8.99e9
	DefaultEpsilon0         = 8.854e-12
	DefaultPlanck           = 6.626e-34
	DefaultLightSpeed       = 3e8
	DefaultStefanBoltzmann  = 5.67e-8
)

// DefaultMu0 is the permeability of free space, 4π·1e-7 T·m/A.
const DefaultMu0 = 4 * math.Pi * 1e-7

// Constants is the read-only table of physical constants the formulas use.
// It is built once at start-up and passed by value.
type Constants struct {
	G        float64 `yaml:"g" toml:"g" json:"g"`
	E        float64 `yaml:"e" toml:"e" json:"e"`
	K        float64 `yaml:"k" toml:"k" json:"k"`
	Epsilon0 float64 `yaml:"epsilon_0" toml:"epsilon_0" json:"epsilon_0"`
	Mu0      float64 `yaml:"mu_0" toml:"mu_0" json:"mu_0"`
	H        float64 `yaml:"h" toml:"h" json:"h"`
	C        float64 `yaml:"c" toml:"c" json:"c"`
	Sigma    float64 `yaml:"sigma" toml:"sigma" json:"sigma"`
}

func DefaultConstants() Constants {
	return Constants{
		G:        DefaultGravity,
		E:        DefaultElementaryCharge,
		K:        DefaultCoulomb,
		Epsilon0: DefaultEpsilon0,
		Mu0:      DefaultMu0,
		H:        DefaultPlanck,
		C:        DefaultLightSpeed,
		Sigma:    DefaultStefanBoltzmann,
	}
}

// Named returns the table as name/value pairs in a fixed order.
func (c Constants) Named() []Quantity {
	return []Quantity{
		{Label: "g (m/s²)", Value: c.G},
		{Label: "e (C)", Value: c.E},
		{Label: "k (N·m²/C²)", Value: c.K},
		{Label: "epsilon_0 (F/m)", Value: c.Epsilon0},
		{Label: "mu_0 (T·m/A)", Value: c.Mu0},
		{Label: "h (J·s)", Value: c.H},
		{Label: "c (m/s)", Value: c.C},
		{Label: "sigma (W/(m²·K⁴))", Value: c.Sigma},
	}
}
