package viz

import (
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{5, 6, "5"},
		{459.27, 6, "459.27"},
		{1.25e-5, 6, "1.25e-05"},
		{1.7980000000000003, 4, "1.798"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.precision); got != tt.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	g := NewWithT(t)
	res, err := formula.NewtonsSecondLaw(formula.DefaultConstants(), 10, 2)
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer
	g.Expect(WriteTable(&buf, res, 6)).To(Succeed())
	g.Expect(buf.String()).To(Equal("Acceleration (m/s²)  5\n"))
}

func TestWriteTableMultipleRows(t *testing.T) {
	g := NewWithT(t)
	res := formula.ProjectileMotion(formula.DefaultConstants(), 20, 45)

	var buf bytes.Buffer
	g.Expect(WriteTable(&buf, res, 4)).To(Succeed())
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	g.Expect(lines).To(HaveLen(3))
	g.Expect(string(lines[2])).To(HavePrefix("Range (m)"))
	g.Expect(string(lines[2])).To(HaveSuffix("40.77"))
}

func TestWriteJSON(t *testing.T) {
	g := NewWithT(t)
	in := topic.Inputs{"temperature": 300}
	res := formula.BlackbodyRadiation(formula.DefaultConstants(), 300)

	var buf bytes.Buffer
	g.Expect(WriteJSON(&buf, "blackbody", in, res)).To(Succeed())

	var doc struct {
		Topic   string             `json:"topic"`
		Inputs  map[string]float64 `json:"inputs"`
		Results []formula.Quantity `json:"results"`
	}
	g.Expect(json.Unmarshal(buf.Bytes(), &doc)).To(Succeed())
	g.Expect(doc.Topic).To(Equal("blackbody"))
	g.Expect(doc.Inputs).To(HaveKeyWithValue("temperature", 300.0))
	g.Expect(doc.Results).To(HaveLen(1))
	g.Expect(doc.Results[0].Label).To(Equal(formula.LabelPowerPerArea))
}

func TestRenderResult(t *testing.T) {
	g := NewWithT(t)
	r := NewRenderer(ThemeMinimal, 6)

	res, err := formula.CircularMotion(formula.DefaultConstants(), 10, 2)
	g.Expect(err).NotTo(HaveOccurred())

	out := r.RenderResult(res)
	g.Expect(out).To(ContainSubstring(formula.LabelCentripetal))
	g.Expect(out).To(ContainSubstring("50"))
}

func TestRenderError(t *testing.T) {
	g := NewWithT(t)
	r := NewRenderer(ThemeMinimal, 6)

	_, err := formula.NewtonsSecondLaw(formula.DefaultConstants(), 1, 0)
	out := r.RenderError(err)
	g.Expect(out).To(ContainSubstring("DivisionByZero"))
	g.Expect(out).To(ContainSubstring("mass must not be zero"))

	g.Expect(r.RenderError(nil)).To(BeEmpty())
}

func TestPlot(t *testing.T) {
	g := NewWithT(t)

	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}
	out, err := Plot(xs, ys, "squares")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("squares"))
	g.Expect(out).To(ContainSubstring("[x: 0 → 4]"))

	_, err = Plot([]float64{1}, []float64{1}, "one")
	g.Expect(err).To(MatchError(ErrTooFewPoints))

	_, err = Plot([]float64{1, 2}, []float64{1}, "mismatch")
	g.Expect(err).To(HaveOccurred())
}

func TestThemes(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nonexistent").Name != ThemeCyberpunk.Name {
		t.Error("expected fallback to cyberpunk")
	}
	if _, ok := LookupTheme("nonexistent"); ok {
		t.Error("LookupTheme should report unknown names")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}

	seen := map[string]bool{}
	theme := ThemeCyberpunk
	for range Themes {
		seen[theme.Name] = true
		theme = theme.Next()
	}
	if len(seen) != len(Themes) || theme.Name != ThemeCyberpunk.Name {
		t.Errorf("Next did not cycle through all themes: %v", seen)
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if hexColor(255, 128, 0) != "#ff8000" {
		t.Errorf("hexColor = %s", hexColor(255, 128, 0))
	}
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("expected empty gradient for empty text")
	}
}
