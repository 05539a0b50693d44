package viz

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
)

// FormatValue prints v with the given number of significant digits.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

type Renderer struct {
	styles    Styles
	precision int
}

func NewRenderer(theme Theme, precision int) *Renderer {
	return &Renderer{styles: NewStyles(theme), precision: precision}
}

func (r *Renderer) Styles() Styles { return r.styles }

// RenderResult lays out one line per quantity: label column, value column.
func (r *Renderer) RenderResult(res formula.Result) string {
	width := 0
	for _, q := range res.Quantities {
		if w := lipgloss.Width(q.Label); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(res.Quantities))
	for _, q := range res.Quantities {
		label := r.styles.Label.Width(width).Render(q.Label)
		lines = append(lines, label+"  "+r.styles.Value.Render(FormatValue(q.Value, r.precision)))
	}
	return r.styles.Panel.Render(strings.Join(lines, "\n"))
}

// RenderError names the error kind when err came from a formula.
func (r *Renderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	kind := "Error"
	if k := formula.KindOf(err); k != 0 {
		kind = k.String()
	}

	msg := err.Error()
	var fe *formula.Error
	if errors.As(err, &fe) {
		msg = fe.Message
	}
	return r.styles.Error.Render(kind+": ") + msg
}

func WriteTable(w io.Writer, res formula.Result, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, q := range res.Quantities {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", q.Label, FormatValue(q.Value, precision)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type jsonDocument struct {
	Topic   string             `json:"topic"`
	Inputs  topic.Inputs       `json:"inputs"`
	Results []formula.Quantity `json:"results"`
}

func WriteJSON(w io.Writer, name string, in topic.Inputs, res formula.Result) error {
	doc := jsonDocument{
		Topic:   name,
		Inputs:  in,
		Results: res.Quantities,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
