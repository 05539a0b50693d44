package topic_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
)

var _ = Describe("ParseInputs", func() {
	var reg *topic.Registry

	BeforeEach(func() {
		reg = topic.NewRegistry(formula.DefaultConstants(), nil)
	})

	It("treats blank Ohm's law fields as absent", func() {
		ohm, err := reg.Get("ohm")
		Expect(err).NotTo(HaveOccurred())

		in, err := topic.ParseInputs(ohm, map[string]string{"voltage": "10", "current": " 2 ", "resistance": ""})
		Expect(err).NotTo(HaveOccurred())
		Expect(in).To(Equal(topic.Inputs{"voltage": 10, "current": 2}))

		res, err := reg.Solve("ohm", in)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Map()).To(HaveKeyWithValue(formula.LabelResistance, 5.0))
	})

	It("treats unparseable Ohm's law fields as absent", func() {
		ohm, _ := reg.Get("ohm")
		in, err := topic.ParseInputs(ohm, map[string]string{"voltage": "ten", "resistance": "5"})
		Expect(err).NotTo(HaveOccurred())
		Expect(in).To(Equal(topic.Inputs{"resistance": 5}))

		_, err = reg.Solve("ohm", in)
		Expect(err).To(MatchError(formula.ErrInvalidInput))
	})

	It("rejects non-numeric required fields", func() {
		newton, _ := reg.Get("newton")
		_, err := topic.ParseInputs(newton, map[string]string{"force": "x", "mass": "2"})
		Expect(err).To(MatchError(formula.ErrInvalidInput))
	})

	It("leaves blank required fields missing", func() {
		newton, _ := reg.Get("newton")
		in, err := topic.ParseInputs(newton, map[string]string{"force": "3", "mass": ""})
		Expect(err).NotTo(HaveOccurred())
		Expect(in).NotTo(HaveKey("mass"))
	})

	It("rejects unknown field names", func() {
		newton, _ := reg.Get("newton")
		_, err := topic.ParseInputs(newton, map[string]string{"weight": "3"})
		Expect(err).To(MatchError(formula.ErrInvalidInput))
	})

	It("formats values round-trippably", func() {
		Expect(topic.FormatValue(1e-6)).To(Equal("1e-06"))
		Expect(topic.FormatValue(20)).To(Equal("20"))
	})
})

var _ = Describe("Param", func() {
	It("renders its display label with unit", func() {
		reg := topic.NewRegistry(formula.DefaultConstants(), nil)
		projectile, _ := reg.Get("projectile")
		p, ok := projectile.Param("angle")
		Expect(ok).To(BeTrue())
		Expect(p.Display()).To(Equal("Launch Angle (°)"))
	})
})
