package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

var _ = Describe("Params", func() {
	It("defaults to gravity 9.8 and charge 1", func() {
		p := physics.DefaultParams()
		Expect(p.Gravity).To(Equal(9.8))
		Expect(p.Charge).To(Equal(1.0))
	})

	It("round-trips through SetParam and GetParams", func() {
		p := physics.DefaultParams()
		Expect(p.SetParam("gravity", 3)).To(Succeed())
		Expect(p.SetParam("charge", -2)).To(Succeed())
		Expect(p.GetParams()).To(Equal(map[string]float64{"gravity": 3, "charge": -2}))
	})

	It("rejects unknown names", func() {
		p := physics.DefaultParams()
		Expect(p.SetParam("mass", 1)).To(MatchError(physics.ErrUnknownParam))
	})
})

var _ = Describe("Fields", func() {
	p := physics.NewParticle(vec.New2(0, 0), vec.New2(2, 0), 1)

	It("builds gravity only when the magnetic field is zero", func() {
		fields := physics.FieldsFromParams(physics.DefaultParams(), vec.Zero(3))
		Expect(fields).To(HaveLen(1))
		Expect(fields[0].Force(p)).To(Equal(vec.New2(0, 9.8)))
	})

	It("adds a magnetic field using the configured charge", func() {
		fields := physics.FieldsFromParams(physics.Params{Gravity: 0, Charge: 2}, vec.New3(0, 0, 1))
		Expect(fields).To(HaveLen(2))
		Expect(fields[1].Force(p).ApproxEqual(vec.New3(0, -4, 0), 1e-12)).To(BeTrue())
	})

	It("applies uniform fields regardless of the particle", func() {
		f := physics.UniformField{F: vec.New2(1, 0)}
		Expect(f.Force(p)).To(Equal(vec.New2(1, 0)))
	})
})
