package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

// forceLog records every force it receives.
type forceLog struct {
	forces []vec.Vector
}

func (f *forceLog) ApplyForce(v vec.Vector) { f.forces = append(f.forces, v) }

var _ = Describe("ApplyGravity", func() {
	DescribeTable("applies exactly (0, g) once",
		func(g float64) {
			body := &forceLog{}
			physics.ApplyGravity(body, g)

			Expect(body.forces).To(HaveLen(1))
			Expect(body.forces[0].X()).To(Equal(0.0))
			Expect(body.forces[0].Y()).To(Equal(g))
			Expect(body.forces[0].Z()).To(Equal(0.0))
		},
		Entry("default magnitude", physics.DefaultGravity),
		Entry("zero", 0.0),
		Entry("upward", -3.5),
		Entry("large", 1e6),
	)

	It("adds gravity into a particle's accumulated force and nothing else", func() {
		p := physics.NewParticle(vec.New2(5, 5), vec.New2(1, 1), 10)
		p.ApplyForce(vec.New2(2, 0))
		physics.ApplyGravity(p, 9.8)

		Expect(p.Acceleration.X()).To(Equal(2.0))
		Expect(p.Acceleration.Y()).To(Equal(9.8))
		Expect(p.Position).To(Equal(vec.New2(5, 5)))
		Expect(p.Velocity).To(Equal(vec.New2(1, 1)))
	})

	It("uses the configured magnitude from Params", func() {
		body := &forceLog{}
		physics.Params{Gravity: 1.62}.ApplyGravity(body)
		Expect(body.forces[0].Y()).To(Equal(1.62))
	})
})

var _ = Describe("LorentzForce", func() {
	It("returns (0,0,1) for unit charge, v=(1,0,0), B=(0,1,0)", func() {
		f := physics.LorentzForce(vec.New3(1, 0, 0), vec.New3(0, 1, 0), 1)
		Expect(f.Dim()).To(Equal(3))
		Expect(f.ApproxEqual(vec.New3(0, 0, 1), 1e-12)).To(BeTrue())
	})

	DescribeTable("equals q(v x B)",
		func(v, b vec.Vector, q float64) {
			f := physics.LorentzForce(v, b, q)
			want := v.Cross(b).Scale(q)
			Expect(f.ApproxEqual(want, 1e-12)).To(BeTrue())
		},
		Entry("negative charge", vec.New3(1, 2, 3), vec.New3(-1, 0, 2), -2.0),
		Entry("planar velocity, axial field", vec.New2(3, 4), vec.New3(0, 0, 0.5), 1.0),
		Entry("zero charge", vec.New3(1, 1, 1), vec.New3(1, 0, 0), 0.0),
	)

	It("is perpendicular to the velocity", func() {
		v := vec.New3(0.3, -1.2, 2)
		f := physics.LorentzForce(v, vec.New3(1, 4, -2), 3)
		Expect(math.Abs(f.Dot(v))).To(BeNumerically("<", 1e-9))
	})

	It("does not mutate its inputs", func() {
		v, b := vec.New3(1, 0, 0), vec.New3(0, 1, 0)
		_ = physics.LorentzForce(v, b, 2)
		Expect(v).To(Equal(vec.New3(1, 0, 0)))
		Expect(b).To(Equal(vec.New3(0, 1, 0)))
	})

	It("uses the configured charge from Params", func() {
		f := physics.Params{Charge: -1}.Lorentz(vec.New3(1, 0, 0), vec.New3(0, 1, 0))
		Expect(f.Z()).To(Equal(-1.0))
	})

	Context("with untrusted input", func() {
		It("rejects NaN components", func() {
			_, err := physics.LorentzForceChecked(vec.New2(math.NaN(), 0), vec.New3(0, 0, 1), 1)
			Expect(errors.Is(err, physics.ErrInvalidVector)).To(BeTrue())

			var fe *physics.ForceError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Operand).To(Equal("velocity"))
		})

		It("rejects slices that are not 2D or 3D", func() {
			_, err := physics.LorentzFromSlices([]float64{1, 0, 0, 0}, []float64{0, 1, 0}, 1)
			Expect(err).To(MatchError(physics.ErrDimensionMismatch))

			_, err = physics.LorentzFromSlices([]float64{1, 0}, []float64{1}, 1)
			var fe *physics.ForceError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Operand).To(Equal("field"))
		})

		It("promotes planar slices onto z=0", func() {
			f, err := physics.LorentzFromSlices([]float64{1, 0}, []float64{0, 1}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.ApproxEqual(vec.New3(0, 0, 1), 1e-12)).To(BeTrue())
		})
	})
})
