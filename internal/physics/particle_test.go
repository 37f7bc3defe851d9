package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

type ellipse struct {
	x, y, d float64
}

type recordingSurface struct {
	fills    []string
	noStroke int
	ellipses []ellipse
}

func (r *recordingSurface) Fill(color string) { r.fills = append(r.fills, color) }
func (r *recordingSurface) NoStroke()         { r.noStroke++ }
func (r *recordingSurface) Ellipse(x, y, d float64) {
	r.ellipses = append(r.ellipses, ellipse{x, y, d})
}

var _ = Describe("Particle", func() {
	var p *physics.Particle

	BeforeEach(func() {
		p = physics.NewParticle(vec.New2(0, 0), vec.New2(0, 0), physics.DefaultRadius)
	})

	It("starts with zero acceleration of the position's dimension", func() {
		Expect(p.Acceleration.IsZero()).To(BeTrue())
		Expect(p.Acceleration.Dim()).To(Equal(2))

		p3 := physics.NewParticle(vec.New3(1, 2, 3), vec.Zero(3), 1)
		Expect(p3.Acceleration.Dim()).To(Equal(3))
	})

	Describe("Update", func() {
		It("integrates a single unit force with semi-implicit Euler", func() {
			p.ApplyForce(vec.New2(0, 1))
			p.Update()

			Expect(p.Velocity).To(Equal(vec.New2(0, 1)))
			Expect(p.Position).To(Equal(vec.New2(0, 1)))
			Expect(p.Acceleration).To(Equal(vec.New2(0, 0)))
		})

		It("translates at constant velocity on zero-force frames", func() {
			p.Velocity = vec.New2(2, -1)
			for i := 1; i <= 5; i++ {
				p.Update()
				Expect(p.Acceleration.IsZero()).To(BeTrue())
				Expect(p.Velocity).To(Equal(vec.New2(2, -1)))
				Expect(p.Position).To(Equal(vec.New2(float64(2*i), float64(-i))))
			}
		})

		It("updates position from the post-update velocity", func() {
			p.Velocity = vec.New2(1, 0)
			p.ApplyForce(vec.New2(1, 0))
			p.Update()

			// explicit Euler would give x=1 here
			Expect(p.Position.X()).To(Equal(2.0))
		})

		It("accumulates forces the same as applying their sum", func() {
			f1, f2 := vec.New2(0.3, -1.7), vec.New2(2.25, 4.5)
			q := p.Clone()

			p.ApplyForce(f1)
			p.ApplyForce(f2)
			p.Update()

			q.ApplyForce(f1.Add(f2))
			q.Update()

			Expect(p.Velocity).To(Equal(q.Velocity))
			Expect(p.Position).To(Equal(q.Position))
		})

		It("does not carry forces across frames", func() {
			p.ApplyForce(vec.New2(0, 1))
			p.Update()
			p.Update()

			Expect(p.Velocity).To(Equal(vec.New2(0, 1)))
			Expect(p.Position).To(Equal(vec.New2(0, 2)))
		})

		It("promotes to 3D once a Lorentz force is applied", func() {
			p.Velocity = vec.New2(1, 0)
			p.ApplyForce(physics.LorentzForce(p.Velocity, vec.New3(0, 0, 1), 1))
			p.Update()

			Expect(p.Position.Dim()).To(Equal(3))
			Expect(p.Acceleration.Dim()).To(Equal(3))
			Expect(p.Acceleration.IsZero()).To(BeTrue())
			Expect(p.Position.Z()).To(Equal(0.0))
		})
	})

	Describe("Display", func() {
		It("draws a filled unstroked circle of diameter 2r at the position", func() {
			s := &recordingSurface{}
			p.Position = vec.New2(40, 25)
			p.Display(s, "blue")

			Expect(s.fills).To(Equal([]string{"blue"}))
			Expect(s.noStroke).To(Equal(1))
			Expect(s.ellipses).To(Equal([]ellipse{{40, 25, 20}}))
		})

		It("defaults to red", func() {
			s := &recordingSurface{}
			p.Display(s, "")
			Expect(s.fills).To(Equal([]string{physics.DefaultColor}))
		})

		It("never mutates kinematic state", func() {
			s := &recordingSurface{}
			p.Position = vec.New2(1, 2)
			p.Velocity = vec.New2(3, 4)
			p.ApplyForce(vec.New2(5, 6))
			before := *p

			for i := 0; i < 3; i++ {
				p.Display(s, "green")
			}

			Expect(*p).To(Equal(before))
			Expect(s.ellipses).To(HaveLen(3))
		})
	})

	It("reports speed and unit-mass kinetic energy", func() {
		p.Velocity = vec.New2(3, 4)
		Expect(p.Speed()).To(BeNumerically("~", 5, 1e-12))
		Expect(p.KineticEnergy()).To(BeNumerically("~", 12.5, 1e-12))
	})
})
