// Package shape computes surface areas and volumes of simple solids.
package shape

import "math"

type Shape interface {
	SurfaceArea() float64
	Volume() float64
}

type Sphere struct {
	Radius float64
}

func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}

// Box is a rectangular cuboid.
type Box struct {
	Width, Length, Depth float64
}

func (b Box) SurfaceArea() float64 {
	return 2*b.Width*b.Length + 2*b.Length*b.Depth + 2*b.Width*b.Depth
}

func (b Box) Volume() float64 {
	return b.Width * b.Length * b.Depth
}
