package math

import (
	"math"

	"github.com/kvartborg/vector"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is the immutable value a + bi + cj + dk.
type Quaternion struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

var (
	Zero     = Quaternion{0, 0, 0, 0}
	Identity = Quaternion{1, 0, 0, 0}
	I        = Quaternion{0, 1, 0, 0}
	J        = Quaternion{0, 0, 1, 0}
	K        = Quaternion{0, 0, 0, 1}
)

func NewQuaternion(a, b, c, d float64) Quaternion {
	return Quaternion{A: a, B: b, C: c, D: d}
}

// FromNumber converts a gonum quaternion.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{A: n.Real, B: n.Imag, C: n.Jmag, D: n.Kmag}
}

// FromAxisAngle returns the rotation of angle radians about axis.
// A zero-length axis yields Identity.
func FromAxisAngle(axis vector.Vector, angle float64) Quaternion {
	if len(axis) < 3 || axis.Magnitude() == 0 {
		return Identity
	}
	axis = axis.Unit()
	s := math.Sin(angle / 2)
	return Quaternion{
		A: math.Cos(angle / 2),
		B: axis[0] * s,
		C: axis[1] * s,
		D: axis[2] * s,
	}
}

func (q Quaternion) Add(other Quaternion) Quaternion {
	return Quaternion{A: q.A + other.A, B: q.B + other.B, C: q.C + other.C, D: q.D + other.D}
}

func (q Quaternion) Sub(other Quaternion) Quaternion {
	return Quaternion{A: q.A - other.A, B: q.B - other.B, C: q.C - other.C, D: q.D - other.D}
}

func (q Quaternion) Neg() Quaternion {
	return Quaternion{A: -q.A, B: -q.B, C: -q.C, D: -q.D}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{A: q.A * s, B: q.B * s, C: q.C * s, D: q.D * s}
}

// Mul returns the Hamilton product q*other. It is not commutative:
// I.Mul(J) is K while J.Mul(I) is -K.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		A: q.A*other.A - q.B*other.B - q.C*other.C - q.D*other.D,
		B: q.A*other.B + q.B*other.A + q.C*other.D - q.D*other.C,
		C: q.A*other.C - q.B*other.D + q.C*other.A + q.D*other.B,
		D: q.A*other.D + q.B*other.C - q.C*other.B + q.D*other.A,
	}
}

// Equal reports exact coefficient equality. NaN is never equal to anything.
func (q Quaternion) Equal(other Quaternion) bool {
	return q.A == other.A && q.B == other.B && q.C == other.C && q.D == other.D
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{A: q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Coefficients returns (a, b, c, d) by value.
func (q Quaternion) Coefficients() [4]float64 {
	return [4]float64{q.A, q.B, q.C, q.D}
}

func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.A, Imag: q.B, Jmag: q.C, Kmag: q.D}
}

// Norm is the modulus |q|.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

func (q Quaternion) Normalize() Quaternion {
	length := q.Norm()
	if length > 0 {
		return q.Scale(1 / length)
	}
	return q
}

func (q Quaternion) Inverse() Quaternion {
	if q.Norm() == 0 {
		return q
	}
	return FromNumber(quat.Inv(q.Number()))
}

// RotateVector rotates the first three components of v by the normalized q.
func (q Quaternion) RotateVector(v vector.Vector) vector.Vector {
	if len(v) < 3 {
		return v
	}
	u := q.Normalize()
	p := u.Mul(Quaternion{B: v[0], C: v[1], D: v[2]}).Mul(u.Conjugate())
	return vector.Vector{p.B, p.C, p.D}
}

func (q Quaternion) Lerp(other Quaternion, t float64) Quaternion {
	return q.Add(other.Sub(q).Scale(t)).Normalize()
}

func (q Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	dot := q.A*other.A + q.B*other.B + q.C*other.C + q.D*other.D

	if dot < 0 {
		dot = -dot
		other = other.Neg()
	}

	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := math.Acos(dot)
	theta := theta0 * t
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return q.Scale(s0).Add(other.Scale(s1))
}
