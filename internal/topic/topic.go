package topic

import (
	"math"
	"sort"

	"github.com/san-kum/physcalc/internal/formula"
)

// Inputs maps parameter names to values. A missing key is an absent input.
type Inputs map[string]float64

func (in Inputs) optional(name string) formula.Optional {
	v, ok := in[name]
	if !ok {
		return formula.None()
	}
	return formula.Some(v)
}

// Clone returns a copy owned by the caller.
func (in Inputs) Clone() Inputs {
	c := make(Inputs, len(in))
	for k, v := range in {
		c[k] = v
	}
	return c
}

func (in Inputs) keys() []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type Param struct {
	Name    string
	Label   string
	Unit    string
	Default float64
	Min     float64
	Max     float64

	// MinOpen excludes Min itself from the valid range.
	MinOpen  bool
	Optional bool
}

func (p Param) bounded() bool {
	return !math.IsInf(p.Min, -1) || !math.IsInf(p.Max, 1)
}

func (p Param) inRange(v float64) bool {
	if p.MinOpen {
		if v <= p.Min {
			return false
		}
	} else if v < p.Min {
		return false
	}
	return v <= p.Max
}

// Display is the form label, e.g. "Launch Angle (°)".
func (p Param) Display() string {
	if p.Unit == "" {
		return p.Label
	}
	return p.Label + " (" + p.Unit + ")"
}

type evalFunc func(c formula.Constants, in Inputs) (formula.Result, error)

type Topic struct {
	Name    string
	Title   string
	Summary string
	Params  []Param
	Outputs []string

	eval evalFunc
}

func (t *Topic) Param(name string) (Param, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Defaults returns the default value of every required parameter.
func (t *Topic) Defaults() Inputs {
	in := make(Inputs, len(t.Params))
	for _, p := range t.Params {
		if !p.Optional {
			in[p.Name] = p.Default
		}
	}
	return in
}

// Validate checks in against the parameter set without evaluating.
func (t *Topic) Validate(in Inputs) error {
	for _, name := range in.keys() {
		if _, ok := t.Param(name); !ok {
			return formula.InvalidInput(t.Name, "unknown parameter %q", name)
		}
	}

	for _, p := range t.Params {
		v, ok := in[p.Name]
		if !ok {
			if p.Optional {
				continue
			}
			return formula.InvalidInput(t.Name, "missing %s", p.Name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return formula.InvalidInput(t.Name, "%s must be finite", p.Name)
		}
		if p.bounded() && !p.inRange(v) {
			return &RangeError{Topic: t.Name, Param: p, Value: v}
		}
	}
	return nil
}
