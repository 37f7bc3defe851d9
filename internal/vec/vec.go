package vec

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrDimension indicates a component slice that is neither 2D nor 3D.
	ErrDimension = errors.New("vec: dimension must be 2 or 3")
)

// Vector is an immutable 2D or 3D vector. A 2D vector lives in the z=0 plane,
// so its third component is always zero.
type Vector struct {
	v   mgl64.Vec3
	dim int
}

func New2(x, y float64) Vector {
	return Vector{v: mgl64.Vec3{x, y, 0}, dim: 2}
}

func New3(x, y, z float64) Vector {
	return Vector{v: mgl64.Vec3{x, y, z}, dim: 3}
}

// Zero returns the zero vector of the given dimension. Anything other than 3
// yields a 2D zero.
func Zero(dim int) Vector {
	if dim == 3 {
		return Vector{dim: 3}
	}
	return Vector{dim: 2}
}

func FromSlice(c []float64) (Vector, error) {
	switch len(c) {
	case 2:
		return New2(c[0], c[1]), nil
	case 3:
		return New3(c[0], c[1], c[2]), nil
	default:
		return Vector{}, fmt.Errorf("%w: got %d components", ErrDimension, len(c))
	}
}

// Dim reports 2 or 3. The zero value of Vector is treated as 2D.
func (a Vector) Dim() int {
	if a.dim == 3 {
		return 3
	}
	return 2
}

func (a Vector) X() float64 { return a.v.X() }
func (a Vector) Y() float64 { return a.v.Y() }
func (a Vector) Z() float64 { return a.v.Z() }

func (a Vector) Vec3() mgl64.Vec3 { return a.v }

// Promote returns a with at least the given dimension. Vectors are never demoted.
func (a Vector) Promote(dim int) Vector {
	if dim > a.Dim() {
		a.dim = 3
	}
	return a
}

func widest(a, b Vector) int {
	if a.Dim() == 3 || b.Dim() == 3 {
		return 3
	}
	return 2
}

func (a Vector) Add(b Vector) Vector {
	return Vector{v: a.v.Add(b.v), dim: widest(a, b)}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{v: a.v.Sub(b.v), dim: widest(a, b)}
}

func (a Vector) Scale(s float64) Vector {
	return Vector{v: a.v.Mul(s), dim: a.Dim()}
}

func (a Vector) Dot(b Vector) float64 {
	return a.v.Dot(b.v)
}

// Cross promotes both operands to 3D and returns a 3D vector.
func (a Vector) Cross(b Vector) Vector {
	return Vector{v: a.v.Cross(b.v), dim: 3}
}

func (a Vector) Len() float64    { return a.v.Len() }
func (a Vector) LenSqr() float64 { return a.v.LenSqr() }

func (a Vector) IsZero() bool {
	return a.v == mgl64.Vec3{}
}

func (a Vector) IsValid() bool {
	for _, c := range a.v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (a Vector) ApproxEqual(b Vector, eps float64) bool {
	return a.v.ApproxEqualThreshold(b.v, eps)
}

// Slice returns Dim() components.
func (a Vector) Slice() []float64 {
	if a.Dim() == 3 {
		return []float64{a.v[0], a.v[1], a.v[2]}
	}
	return []float64{a.v[0], a.v[1]}
}

func (a Vector) String() string {
	if a.Dim() == 3 {
		return fmt.Sprintf("(%g, %g, %g)", a.v[0], a.v[1], a.v[2])
	}
	return fmt.Sprintf("(%g, %g)", a.v[0], a.v[1])
}
