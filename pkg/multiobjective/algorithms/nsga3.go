package algorithms

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"sigs.k8s.io/moea/pkg/multiobjective/framework"
)

const (
	Name = "NSGA-III"
)

// ErrInvalidSize is returned when the requested number of survivors is not
// positive.
var ErrInvalidSize = errors.New("population size must be positive")

// Selector prepares the environmental selection of NSGA-III: it keeps the
// fronts that fit, then normalizes and associates the candidates so that a
// niching step can pick the remaining survivors from the last front.
type Selector struct {
	normalizer *Normalizer
	associator *Associator
	logger     logr.Logger
}

var _ framework.Algorithm = &Selector{}

// Preparation is the hand-off from Prepare to niching.
type Preparation struct {
	// Accepted are the indices of solutions whose whole front fits.
	Accepted []int
	// Last is the first front that does not fit, empty if none overflowed.
	Last []int
	// Members lists the indices of Accepted followed by Last; it is the
	// population that was normalized and associated.
	Members []int
	// Assignment holds the reference point of Members[i] at position i.
	Assignment []int
	// Normalized holds the normalized objective vectors of Members.
	Normalized *framework.Solutions
}

// NewSelector returns a Selector for the reference directions w.
func NewSelector(w *framework.Weights, opts ...Option) (*Selector, error) {
	normalizer, err := NewNormalizer(opts...)
	if err != nil {
		return nil, err
	}
	associator, err := NewAssociator(w, opts...)
	if err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Selector{
		normalizer: normalizer,
		associator: associator,
		logger:     o.logger.WithName("selector"),
	}, nil
}

func (sel *Selector) Name() string {
	return Name
}

// SplitFronts sorts the combined population into fronts and adds them whole
// while they fit into size. The first front that does not fit is returned as
// last.
func SplitFronts(population *framework.Solutions, size int) (accepted, last []int, err error) {
	if size <= 0 {
		return nil, nil, ErrInvalidSize
	}
	if population == nil {
		return nil, nil, ErrNilSolutions
	}

	// Non-dominated sorting
	fronts := framework.NonDominatedSort(population)

	accepted = make([]int, 0, size)
	frontIndex := 0

	// Add fronts to new population
	for frontIndex < len(fronts) && len(accepted)+len(fronts[frontIndex]) <= size {
		accepted = append(accepted, fronts[frontIndex]...)
		frontIndex++
	}

	// The front that overflows is left for niching
	if len(accepted) < size && frontIndex < len(fronts) {
		last = fronts[frontIndex]
	}

	return accepted, last, nil
}

// Prepare splits the combined parent and offspring population and normalizes
// and associates the candidates for the next generation of the given size.
// population is not modified.
func (sel *Selector) Prepare(population *framework.Solutions, size int) (*Preparation, error) {
	accepted, last, err := SplitFronts(population, size)
	if err != nil {
		return nil, err
	}

	members := make([]int, 0, len(accepted)+len(last))
	members = append(members, accepted...)
	members = append(members, last...)

	candidates, err := population.Subset(members)
	if err != nil {
		return nil, fmt.Errorf("collecting candidates: %w", err)
	}
	normalized, err := sel.normalizer.Normalize(candidates)
	if err != nil {
		return nil, fmt.Errorf("normalizing candidates: %w", err)
	}
	assignment, err := sel.associator.Assign(normalized)
	if err != nil {
		return nil, fmt.Errorf("associating candidates: %w", err)
	}

	sel.logger.V(5).Info("Prepared environmental selection",
		"population", population.Len(), "size", size,
		"accepted", len(accepted), "last", len(last))

	return &Preparation{
		Accepted:   accepted,
		Last:       last,
		Members:    members,
		Assignment: assignment,
		Normalized: normalized,
	}, nil
}
