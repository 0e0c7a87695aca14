package framework

import "errors"

var (
	// ErrDimensionMismatch is returned when vectors of one call do not share
	// the same number of objectives.
	ErrDimensionMismatch = errors.New("objective dimension mismatch")

	// ErrEmptyPopulation is returned when a population holds no solutions.
	ErrEmptyPopulation = errors.New("population is empty")

	// ErrEmptyWeights is returned when a reference set holds no directions.
	ErrEmptyWeights = errors.New("reference set is empty")

	// ErrNoObjectives is returned for vectors of length zero.
	ErrNoObjectives = errors.New("vectors must have at least one objective")
)

// ObjectiveFunc defines the interface for objective functions
type ObjectiveFunc func([]float64) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Clone returns a copy of p that shares no memory with it.
func (p ObjectiveSpacePoint) Clone() ObjectiveSpacePoint {
	c := make(ObjectiveSpacePoint, len(p))
	copy(c, p)
	return c
}

// Bounds is the closed interval a decision variable is sampled from.
type Bounds struct {
	L float64
	H float64
}

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	Bounds() []Bounds
	ObjectiveFuncs() []ObjectiveFunc

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that a MOO algorithm needs to implement.
type Algorithm interface {
	Name() string
}
