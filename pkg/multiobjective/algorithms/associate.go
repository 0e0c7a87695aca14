package algorithms

import (
	"fmt"

	"github.com/go-logr/logr"

	"sigs.k8s.io/moea/pkg/multiobjective/framework"
	"sigs.k8s.io/moea/pkg/multiobjective/util"
)

// Associator assigns normalized solutions to their closest reference line.
type Associator struct {
	weights *framework.Weights
	logger  logr.Logger
}

// NewAssociator returns an Associator for the reference directions w.
// Only WithLogger is relevant to it.
func NewAssociator(w *framework.Weights, opts ...Option) (*Associator, error) {
	if w == nil || w.Len() == 0 {
		return nil, framework.ErrEmptyWeights
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	a := &Associator{
		weights: w,
		logger:  o.logger.WithName("associator"),
	}
	w.Each(func(i int, d framework.ObjectiveSpacePoint) {
		if util.Magnitude(d) == 0 {
			a.logger.Info("Warning: reference direction has zero length, its distances are undefined", "index", i)
		}
	})
	return a, nil
}

// Weights returns the reference directions of a.
func (a *Associator) Weights() *framework.Weights {
	return a.weights
}

// Assign returns, for every solution in input order, the index of the
// reference line with the smallest perpendicular distance. Ties go to the
// smallest index.
func (a *Associator) Assign(s *framework.Solutions) ([]int, error) {
	if s == nil {
		return nil, ErrNilSolutions
	}
	if s.Released() {
		return nil, ErrConsumed
	}
	if s.Objectives() != a.weights.Objectives() {
		return nil, fmt.Errorf("solutions have %d objectives, reference directions %d: %w",
			s.Objectives(), a.weights.Objectives(), framework.ErrDimensionMismatch)
	}

	directions := make([]framework.ObjectiveSpacePoint, a.weights.Len())
	a.weights.Each(func(i int, d framework.ObjectiveSpacePoint) {
		directions[i] = d
	})

	assignment := make([]int, s.Len())
	for i, p := range s.Points() {
		assignment[i] = util.ArgminOf(directions, func(line framework.ObjectiveSpacePoint) float64 {
			return util.Distance(line, p)
		})
	}
	return assignment, nil
}

// Associate partitions s by reference point. The result has one entry per
// reference direction, in index order; entries may be empty and the order
// within an entry carries no meaning.
func (a *Associator) Associate(s *framework.Solutions) ([][]framework.ObjectiveSpacePoint, error) {
	assignment, err := a.Assign(s)
	if err != nil {
		return nil, err
	}

	buckets := make([][]framework.ObjectiveSpacePoint, a.weights.Len())
	for i := range buckets {
		buckets[i] = []framework.ObjectiveSpacePoint{}
	}
	for i, ref := range assignment {
		buckets[ref] = append(buckets[ref], s.At(i))
	}

	if v := a.logger.V(5); v.Enabled() {
		sizes := make([]int, len(buckets))
		for i, b := range buckets {
			sizes[i] = len(b)
		}
		v.Info("Associated population", "solutions", s.Len(), "bucketSizes", sizes)
	}
	return buckets, nil
}
