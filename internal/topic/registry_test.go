package topic_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
)

var _ = Describe("Registry", func() {
	var reg *topic.Registry

	BeforeEach(func() {
		reg = topic.NewRegistry(formula.DefaultConstants(), nil)
	})

	It("lists the eight topics in display order", func() {
		Expect(reg.List()).To(Equal([]string{
			"projectile", "newton", "coulomb", "ohm",
			"circular", "lorentz", "capacitor", "blackbody",
		}))
		Expect(reg.Topics()).To(HaveLen(8))
	})

	It("returns a copy from List", func() {
		names := reg.List()
		names[0] = "changed"
		Expect(reg.List()[0]).To(Equal("projectile"))
	})

	It("rejects unknown topics", func() {
		_, err := reg.Get("thermodynamics")
		Expect(err).To(MatchError(topic.ErrUnknownTopic))

		_, err = reg.Solve("thermodynamics", topic.Inputs{})
		Expect(err).To(MatchError(topic.ErrUnknownTopic))
	})

	It("solves every topic with its defaults", func() {
		for _, t := range reg.Topics() {
			if t.Name == formula.TopicOhm {
				continue
			}
			res, err := reg.Solve(t.Name, t.Defaults())
			Expect(err).NotTo(HaveOccurred(), t.Name)
			Expect(res.Labels()).To(Equal(t.Outputs), t.Name)
		}
	})

	DescribeTable("documented examples",
		func(name string, in topic.Inputs, label string, want float64) {
			res, err := reg.Solve(name, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Map()).To(HaveKeyWithValue(label, BeNumerically("~", want, 1e-6)))
		},
		Entry("newton", "newton", topic.Inputs{"force": 10, "mass": 2}, formula.LabelAcceleration, 5.0),
		Entry("coulomb", "coulomb", topic.Inputs{"q1": 1e-6, "q2": 2e-6, "distance": 0.1}, formula.LabelForce, 1.798),
		Entry("ohm resistance", "ohm", topic.Inputs{"voltage": 10, "current": 2}, formula.LabelResistance, 5.0),
		Entry("circular", "circular", topic.Inputs{"speed": 10, "radius": 2}, formula.LabelCentripetal, 50.0),
		Entry("capacitor", "capacitor", topic.Inputs{"capacitance": 1e-6, "voltage": 5}, formula.LabelEnergy, 1.25e-5),
		Entry("blackbody", "blackbody", topic.Inputs{"temperature": 300}, formula.LabelPowerPerArea, 459.27),
	)

	DescribeTable("domain errors",
		func(name string, in topic.Inputs, want error) {
			_, err := reg.Solve(name, in)
			Expect(err).To(MatchError(want))
		},
		Entry("zero mass", "newton", topic.Inputs{"force": 10, "mass": 0}, formula.ErrDivisionByZero),
		Entry("zero distance", "coulomb", topic.Inputs{"q1": 1, "q2": 1, "distance": 0}, formula.ErrDivisionByZero),
		Entry("ohm with one value", "ohm", topic.Inputs{"resistance": 5}, formula.ErrInvalidInput),
		Entry("ohm with three values", "ohm", topic.Inputs{"voltage": 1, "current": 1, "resistance": 1}, formula.ErrInvalidInput),
		Entry("ohm zero current", "ohm", topic.Inputs{"voltage": 10, "current": 0}, formula.ErrDivisionByZero),
		Entry("zero radius", "circular", topic.Inputs{"speed": 10, "radius": 0}, formula.ErrDivisionByZero),
	)

	Context("input validation", func() {
		It("rejects unknown parameters", func() {
			_, err := reg.Solve("newton", topic.Inputs{"force": 1, "mass": 1, "volume": 3})
			Expect(err).To(MatchError(formula.ErrInvalidInput))
			Expect(err.Error()).To(ContainSubstring("volume"))
		})

		It("rejects missing required parameters", func() {
			_, err := reg.Solve("newton", topic.Inputs{"force": 1})
			Expect(err).To(MatchError(formula.ErrInvalidInput))
			Expect(err.Error()).To(ContainSubstring("missing mass"))
		})

		It("rejects non-finite values", func() {
			_, err := reg.Solve("circular", topic.Inputs{"speed": math.NaN(), "radius": 1})
			Expect(err).To(MatchError(formula.ErrInvalidInput))
		})

		It("enforces widget bounds", func() {
			_, err := reg.Solve("projectile", topic.Inputs{"v0": 20, "angle": 120})
			var rangeErr *topic.RangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Param.Name).To(Equal("angle"))
			Expect(err).To(MatchError(formula.ErrInvalidInput))
			Expect(err.Error()).To(Equal("projectile: angle = 120 is outside [0, 90]"))

			_, err = reg.Solve("projectile", topic.Inputs{"v0": -1, "angle": 30})
			Expect(err).To(MatchError(formula.ErrInvalidInput))

			_, err = reg.Solve("capacitor", topic.Inputs{"capacitance": -1e-6, "voltage": 5})
			Expect(err).To(MatchError(formula.ErrInvalidInput))
		})

		It("excludes zero temperature", func() {
			_, err := reg.Solve("blackbody", topic.Inputs{"temperature": 0})
			Expect(err).To(MatchError(formula.ErrInvalidInput))
			Expect(err.Error()).To(ContainSubstring("(0, +inf)"))
		})

		It("accepts the bound values themselves", func() {
			_, err := reg.Solve("projectile", topic.Inputs{"v0": 0, "angle": 90})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	It("solves projectile range largest at 45 degrees", func() {
		rangeAt := func(angle float64) float64 {
			res, err := reg.Solve("projectile", topic.Inputs{"v0": 20, "angle": angle})
			Expect(err).NotTo(HaveOccurred())
			v, _ := res.Value(formula.LabelRange)
			return v
		}
		Expect(rangeAt(45)).To(BeNumerically(">", rangeAt(30)))
		Expect(rangeAt(45)).To(BeNumerically(">", rangeAt(60)))
	})

	It("reports an underflowing distance as division by zero", func() {
		_, err := reg.Solve("coulomb", topic.Inputs{"q1": 0, "q2": 1, "distance": 1e-200})
		Expect(err).To(MatchError(formula.ErrDivisionByZero))
	})

	DescribeTable("rejects results that overflow",
		func(name string, in topic.Inputs) {
			res, err := reg.Solve(name, in)
			Expect(err).To(MatchError(formula.ErrInvalidInput))
			Expect(err.Error()).To(ContainSubstring("not finite"))
			Expect(res.Quantities).To(BeEmpty())
		},
		Entry("circular", "circular", topic.Inputs{"speed": 1e200, "radius": 1}),
		Entry("newton", "newton", topic.Inputs{"force": 1e300, "mass": 1e-300}),
		Entry("capacitor", "capacitor", topic.Inputs{"capacitance": 1, "voltage": 1e200}),
		Entry("blackbody", "blackbody", topic.Inputs{"temperature": 1e100}),
	)

	It("uses the constants it was built with", func() {
		consts := formula.DefaultConstants()
		consts.Sigma = 1
		custom := topic.NewRegistry(consts, nil)

		res, err := custom.Solve("blackbody", topic.Inputs{"temperature": 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Map()).To(HaveKeyWithValue(formula.LabelPowerPerArea, 16.0))
		Expect(custom.Constants().Sigma).To(Equal(1.0))
	})
})
