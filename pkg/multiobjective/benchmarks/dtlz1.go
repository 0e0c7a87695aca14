package benchmarks

import (
	"math"

	"sigs.k8s.io/moea/pkg/multiobjective/framework"
)

const (
	DTLZ1Name = "DTLZ1"
)

var _ framework.Problem = &DTLZ1{}

// DTLZ1 is the scalable many-objective benchmark of Deb, Thiele, Laumanns and
// Zitzler. Its Pareto front is the linear hyperplane sum(f) = 0.5, which makes
// it the usual sanity check for reference-point based algorithms.
type DTLZ1 struct {
	numObjectives int
	numVars       int
}

// NewDTLZ1 returns DTLZ1 with m objectives and k distance variables, for a
// total of m+k-1 decision variables. k = 5 is the customary choice.
func NewDTLZ1(m, k int) *DTLZ1 {
	return &DTLZ1{
		numObjectives: m,
		numVars:       m + k - 1,
	}
}

func (p *DTLZ1) Name() string {
	return DTLZ1Name
}

func (p *DTLZ1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *DTLZ1) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := range funcs {
		funcs[i] = p.objective(i)
	}
	return funcs
}

// objective returns f_{i+1}:
// 0.5 (1+g) x_1 ... x_{M-i-1} (1 - x_{M-i}), the last factor omitted for i = 0.
func (p *DTLZ1) objective(i int) framework.ObjectiveFunc {
	m := p.numObjectives
	return func(x []float64) float64 {
		f := 0.5 * (1 + p.g(x))
		for j := 0; j < m-i-1; j++ {
			f *= x[j]
		}
		if i > 0 {
			f *= 1 - x[m-i-1]
		}
		return f
	}
}

func (p *DTLZ1) g(x []float64) float64 {
	tail := x[p.numObjectives-1:]
	sum := float64(len(tail))
	for _, xi := range tail {
		d := xi - 0.5
		sum += d*d - math.Cos(20*math.Pi*d)
	}
	return 100 * sum
}

// TrueParetoFront returns numPoints points on the front for two objectives and
// nil otherwise, where no uniform sampling of the simplex is provided.
func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{0.5 * x, 0.5 * (1 - x)}
	}
	return points
}
