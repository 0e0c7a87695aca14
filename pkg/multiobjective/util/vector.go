package util

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot returns the dot product of a and b. The sum is accumulated with fused
// multiply-add so every step rounds once.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("util: slice lengths do not match")
	}
	sum := 0.0
	for i := range a {
		sum = math.FMA(a[i], b[i], sum)
	}
	return sum
}

// Sub returns the new vector a - b.
func Sub(a, b []float64) []float64 {
	dst := make([]float64, len(a))
	return floats.SubTo(dst, a, b)
}

// Scale returns the new vector c*a.
func Scale(c float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	return floats.ScaleTo(dst, c, a)
}

// Magnitude returns the Euclidean norm of a.
func Magnitude(a []float64) float64 {
	return floats.Norm(a, 2)
}

// Distance returns the perpendicular distance of point to the line through
// the origin along line.
func Distance(line, point []float64) float64 {
	k := Dot(line, point) / Dot(line, line)
	return Magnitude(Sub(Scale(k, line), point))
}
