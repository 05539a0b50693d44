package formula

import (
	"strconv"
	"strings"
)

// Optional is a scalar input that may be absent.
type Optional struct {
	value float64
	ok    bool
}

// Some returns a present value.
func Some(v float64) Optional { return Optional{value: v, ok: true} }

// None returns an absent value.
func None() Optional { return Optional{} }

// ParseOptional reads a text field. Blank or non-numeric text is absent.
func ParseOptional(text string) Optional {
	text = strings.TrimSpace(text)
	if text == "" {
		return None()
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return None()
	}
	return Some(v)
}

func (o Optional) Get() (float64, bool) { return o.value, o.ok }

func (o Optional) Present() bool { return o.ok }

func (o Optional) String() string {
	if !o.ok {
		return "<absent>"
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}
