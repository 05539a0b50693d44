package topic

import (
	"strconv"
	"strings"

	"github.com/san-kum/physcalc/internal/formula"
)

// ParseInputs converts text fields into Inputs. Blank text is absent.
// Non-numeric text is an error for required parameters and absent for
// optional ones.
func ParseInputs(t *Topic, raw map[string]string) (Inputs, error) {
	for name := range raw {
		if _, ok := t.Param(name); !ok {
			return nil, formula.InvalidInput(t.Name, "unknown parameter %q", name)
		}
	}

	in := make(Inputs, len(raw))
	for _, p := range t.Params {
		text := strings.TrimSpace(raw[p.Name])
		if p.Optional {
			if v, ok := formula.ParseOptional(text).Get(); ok {
				in[p.Name] = v
			}
			continue
		}
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, formula.InvalidInput(t.Name, "%s: not a number: %q", p.Name, text)
		}
		in[p.Name] = v
	}
	return in, nil
}

// FormatValue renders a value for an editable text field.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
