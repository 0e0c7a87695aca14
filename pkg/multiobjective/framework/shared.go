package framework

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// NonDominatedSort performs non-dominated sorting on the population and
// returns the fronts as indices into it, the first front first. Indices within
// a front are ascending.
func NonDominatedSort(population *Solutions) [][]int {
	n := population.Len()
	var fronts [][]int
	dominated := make([][]int, n)
	domCount := make([]int, n)

	// Calculate domination for each individual
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch Dominance(population.At(i), population.At(j)) {
			case 1:
				dominated[i] = append(dominated[i], j)
			case -1:
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := []int{}
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Find subsequent fronts
	for len(currentFront) > 0 {
		fronts = append(fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		sort.Ints(nextFront)
		currentFront = nextFront
	}

	return fronts
}

// Dominance compares u and v under minimization. It returns 1 if u dominates
// v, -1 if v dominates u and 0 if neither does.
// It panics if the vectors differ in length.
func Dominance(u, v ObjectiveSpacePoint) int {
	if len(u) != len(v) {
		panic(fmt.Sprintf("dominance of vectors with %d and %d objectives", len(u), len(v)))
	}

	uBetter, vBetter := false, false
	for i := range u {
		if u[i] < v[i] {
			uBetter = true
		} else if v[i] < u[i] {
			vBetter = true
		}
		if uBetter && vBetter {
			return 0
		}
	}

	switch {
	case uBetter:
		return 1
	case vBetter:
		return -1
	default:
		return 0
	}
}

// Dominates checks if a dominates b
func Dominates(a, b ObjectiveSpacePoint) bool {
	return Dominance(a, b) == 1
}

// Evaluate calculates the objective vector of the decision variables vars.
func Evaluate(p Problem, vars []float64) ObjectiveSpacePoint {
	funcs := p.ObjectiveFuncs()
	objs := make(ObjectiveSpacePoint, len(funcs))
	for i, f := range funcs {
		objs[i] = f(vars)
	}
	return objs
}

// Sample draws size uniform decision vectors within the problem bounds and
// returns the population of their objective vectors.
func Sample(p Problem, size int, rng *rand.Rand) (*Solutions, error) {
	b := p.Bounds()
	points := make([]ObjectiveSpacePoint, size)

	for i := 0; i < size; i++ {
		vars := make([]float64, len(b))
		for j := range b {
			vars[j] = b[j].L + rng.Float64()*(b[j].H-b[j].L)
		}
		points[i] = Evaluate(p, vars)
	}

	s, err := Wrap(points)
	if err != nil {
		return nil, fmt.Errorf("sampling %s: %w", p.Name(), err)
	}
	return s, nil
}
