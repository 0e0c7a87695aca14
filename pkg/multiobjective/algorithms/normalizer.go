package algorithms

import (
	"errors"
	"math"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/mat"

	"sigs.k8s.io/moea/apis/config/v1alpha1"
	"sigs.k8s.io/moea/pkg/multiobjective/framework"
	"sigs.k8s.io/moea/pkg/multiobjective/linalg"
	"sigs.k8s.io/moea/pkg/multiobjective/util"
)

var (
	// ErrNilSolutions is returned when a nil population is passed in.
	ErrNilSolutions = errors.New("solutions are nil")

	// ErrConsumed is returned when a population that was already handed to
	// Normalize is used again.
	ErrConsumed = errors.New("solutions were consumed by a previous normalization")
)

// Normalizer implements the normalization step of NSGA-III: translate the
// population by its ideal point, find the hyperplane through the extreme
// points and divide every objective by the hyperplane's axis intercept.
// It is safe for concurrent use on distinct populations.
type Normalizer struct {
	epsilon       float64
	minIntercept  float64
	extremeWeight float64
	idealPoint    v1alpha1.IdealPointMode
	logger        logr.Logger
}

// hyperplane holds the transient values of a single normalization.
type hyperplane struct {
	ideal      []float64
	extremes   []framework.ObjectiveSpacePoint
	intercepts []float64
	degenerate bool
}

// NewNormalizer returns a Normalizer configured by opts.
func NewNormalizer(opts ...Option) (*Normalizer, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		epsilon:       *o.args.Epsilon,
		minIntercept:  *o.args.MinIntercept,
		extremeWeight: *o.args.ExtremeWeight,
		idealPoint:    *o.args.IdealPoint,
		logger:        o.logger.WithName("normalizer"),
	}, nil
}

// Normalize consumes s and returns the normalized population. The vectors of
// s are not modified, but s itself is released and must not be used again;
// the returned population is the only valid handle.
func (n *Normalizer) Normalize(s *framework.Solutions) (*framework.Solutions, error) {
	if s == nil {
		return nil, ErrNilSolutions
	}
	if s.Released() {
		return nil, ErrConsumed
	}

	h, translated, err := n.fit(s)
	if err != nil {
		return nil, err
	}
	rescale(translated, h.intercepts)
	s.Release()

	n.logger.V(5).Info("Normalized population",
		"solutions", translated.Len(),
		"idealPoint", h.ideal,
		"intercepts", h.intercepts,
		"degenerate", h.degenerate)
	return translated, nil
}

// fit computes the hyperplane of s and returns it with the translated copy
// of s.
func (n *Normalizer) fit(s *framework.Solutions) (*hyperplane, *framework.Solutions, error) {
	h := &hyperplane{}
	h.ideal = n.idealPointOf(s)

	translated, err := translate(s, h.ideal)
	if err != nil {
		return nil, nil, err
	}

	h.extremes = n.extremePoints(translated)
	h.intercepts, h.degenerate = n.intercepts(translated, h.extremes)
	return h, translated, nil
}

func (n *Normalizer) idealPointOf(s *framework.Solutions) []float64 {
	if n.idealPoint == v1alpha1.IdealPointMinimum {
		return minimumPoint(s)
	}
	return idealPoint(s)
}

// idealPoint seeds every objective at +Inf and folds the population with
// math.Max. The seed dominates the fold, so every coordinate stays +Inf.
func idealPoint(s *framework.Solutions) []float64 {
	point := make([]float64, s.Objectives())
	for j := range point {
		point[j] = math.Inf(1)
	}

	for _, p := range s.Points() {
		for j := range point {
			point[j] = math.Max(point[j], p[j])
		}
	}
	return point
}

// minimumPoint returns the per-objective minimum of the population.
func minimumPoint(s *framework.Solutions) []float64 {
	point := make([]float64, s.Objectives())
	for j := range point {
		point[j] = math.Inf(1)
	}

	for _, p := range s.Points() {
		for j := range point {
			point[j] = math.Min(point[j], p[j])
		}
	}
	return point
}

// translate returns a new population holding p - ideal for every p in s.
func translate(s *framework.Solutions, ideal []float64) (*framework.Solutions, error) {
	points := make([]framework.ObjectiveSpacePoint, s.Len())
	for i, p := range s.Points() {
		points[i] = util.Sub(p, ideal)
	}
	return framework.Wrap(points)
}

// extremePoints returns, for every objective, the translated solution that
// minimizes the achievement scalarizing function biased toward it.
func (n *Normalizer) extremePoints(s *framework.Solutions) []framework.ObjectiveSpacePoint {
	extremes := make([]framework.ObjectiveSpacePoint, s.Objectives())
	for j := range extremes {
		extremes[j] = s.At(n.extremePoint(s, j))
	}
	return extremes
}

func (n *Normalizer) extremePoint(s *framework.Solutions, objective int) int {
	weights := make([]float64, s.Objectives())
	for k := range weights {
		weights[k] = n.extremeWeight
	}
	weights[objective] = 1

	return util.ArgminOf(s.Points(), asf(weights))
}

// asf is the Chebyshev achievement scalarizing function for weights.
func asf(weights []float64) func(framework.ObjectiveSpacePoint) float64 {
	return func(p framework.ObjectiveSpacePoint) float64 {
		worst := math.Inf(-1)
		for k := range p {
			worst = math.Max(worst, p[k]/weights[k])
		}
		return worst
	}
}

// intercepts returns the axis intercepts of the hyperplane through extremes.
// If the hyperplane cannot be solved, or any intercept is below the accepted
// minimum, all intercepts fall back to the per-objective maximum of s, floored
// at epsilon. The second result reports the fallback.
func (n *Normalizer) intercepts(s *framework.Solutions, extremes []framework.ObjectiveSpacePoint) ([]float64, bool) {
	m := s.Objectives()

	a := mat.NewDense(m, m, nil)
	for j, e := range extremes {
		a.SetRow(j, e)
	}
	b := make([]float64, m)
	for j := range b {
		b[j] = 1
	}

	x, err := linalg.Solve(a, b)
	if err != nil {
		n.logger.V(4).Info("Extreme points do not span a hyperplane, scaling by the nadir point", "err", err)
		return n.nadirIntercepts(s), true
	}

	intercepts := make([]float64, m)
	for j := range intercepts {
		intercepts[j] = 1 / x[j]
	}
	for j, v := range intercepts {
		// Written as a negated comparison so NaN intercepts fall back too.
		if !(v >= n.minIntercept) {
			n.logger.V(4).Info("Degenerate intercept, scaling by the nadir point",
				"objective", j, "intercept", v, "minIntercept", n.minIntercept)
			return n.nadirIntercepts(s), true
		}
	}
	return intercepts, false
}

func (n *Normalizer) nadirIntercepts(s *framework.Solutions) []float64 {
	intercepts := make([]float64, s.Objectives())
	for j := range intercepts {
		intercepts[j] = n.epsilon
	}

	for _, p := range s.Points() {
		for j, v := range p {
			if v > intercepts[j] {
				intercepts[j] = v
			}
		}
	}
	return intercepts
}

// rescale divides every objective of s by its intercept in place.
func rescale(s *framework.Solutions, intercepts []float64) {
	for _, p := range s.Points() {
		for j := range p {
			p[j] /= intercepts[j]
		}
	}
}
