package framework

import (
	"errors"
	"fmt"
)

// Solutions is an insertion-ordered population of objective vectors that all
// have the same number of objectives. It is built once per generation and
// handed to the normalization and association steps.
type Solutions struct {
	objectives int
	points     []ObjectiveSpacePoint
}

// NewSolutions copies points into a new population.
func NewSolutions(points []ObjectiveSpacePoint) (*Solutions, error) {
	cloned := make([]ObjectiveSpacePoint, len(points))
	for i, p := range points {
		cloned[i] = p.Clone()
	}
	return Wrap(cloned)
}

// Wrap builds a population that takes ownership of points without copying
// them. The caller must not keep using the slice or its vectors.
func Wrap(points []ObjectiveSpacePoint) (*Solutions, error) {
	m, err := dimension(points)
	if err != nil {
		if errors.Is(err, ErrEmptyPopulation) {
			return nil, err
		}
		return nil, fmt.Errorf("solutions: %w", err)
	}
	return &Solutions{objectives: m, points: points}, nil
}

// Objectives returns the number of objectives M shared by every vector.
func (s *Solutions) Objectives() int {
	return s.objectives
}

// Len returns the number of solutions.
func (s *Solutions) Len() int {
	return len(s.points)
}

// At returns the i-th solution. The returned vector aliases the population.
func (s *Solutions) At(i int) ObjectiveSpacePoint {
	return s.points[i]
}

// Points returns a view of the population in insertion order.
func (s *Solutions) Points() []ObjectiveSpacePoint {
	return s.points
}

// Subset returns a new population holding copies of the solutions at the
// given indices, in that order.
func (s *Solutions) Subset(indices []int) (*Solutions, error) {
	points := make([]ObjectiveSpacePoint, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(s.points) {
			return nil, fmt.Errorf("subset index %d out of range [0, %d)", idx, len(s.points))
		}
		points[i] = s.points[idx].Clone()
	}
	return Wrap(points)
}

// Release detaches the vectors from s and returns them. After Release the
// population is empty and Released reports true.
func (s *Solutions) Release() []ObjectiveSpacePoint {
	points := s.points
	s.points = nil
	return points
}

// Released reports whether the population was handed over with Release.
func (s *Solutions) Released() bool {
	return s.points == nil
}

// Weights is the fixed, ordered set of reference directions used for niching.
// The index of a direction is its identity.
type Weights struct {
	objectives int
	directions []ObjectiveSpacePoint
}

// NewWeights copies directions into an immutable reference set.
func NewWeights(directions []ObjectiveSpacePoint) (*Weights, error) {
	if len(directions) == 0 {
		return nil, ErrEmptyWeights
	}
	m, err := dimension(directions)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	cloned := make([]ObjectiveSpacePoint, len(directions))
	for i, d := range directions {
		cloned[i] = d.Clone()
	}
	return &Weights{objectives: m, directions: cloned}, nil
}

// Objectives returns the length of every direction.
func (w *Weights) Objectives() int {
	return w.objectives
}

// Len returns the number of reference directions.
func (w *Weights) Len() int {
	return len(w.directions)
}

// At returns a copy of the i-th direction.
func (w *Weights) At(i int) ObjectiveSpacePoint {
	return w.directions[i].Clone()
}

// direction returns the i-th direction without copying.
func (w *Weights) direction(i int) ObjectiveSpacePoint {
	return w.directions[i]
}

// Each calls fn for every direction in index order. fn must not modify d.
func (w *Weights) Each(fn func(i int, d ObjectiveSpacePoint)) {
	for i := range w.directions {
		fn(i, w.direction(i))
	}
}

func dimension(points []ObjectiveSpacePoint) (int, error) {
	if len(points) == 0 {
		return 0, ErrEmptyPopulation
	}
	m := len(points[0])
	if m == 0 {
		return 0, ErrNoObjectives
	}
	for i, p := range points {
		if len(p) != m {
			return 0, fmt.Errorf("vector %d has %d objectives, want %d: %w", i, len(p), m, ErrDimensionMismatch)
		}
	}
	return m, nil
}
