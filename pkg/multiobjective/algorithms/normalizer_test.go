package algorithms

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/moea/apis/config/v1alpha1"
	"sigs.k8s.io/moea/pkg/multiobjective/benchmarks"
	"sigs.k8s.io/moea/pkg/multiobjective/framework"
	"sigs.k8s.io/moea/pkg/multiobjective/linalg"
)

const eps = linalg.EPS

func mustSolutions(t *testing.T, points ...framework.ObjectiveSpacePoint) *framework.Solutions {
	t.Helper()
	s, err := framework.NewSolutions(points)
	require.NoError(t, err)
	return s
}

func newTestNormalizer(t *testing.T, mode v1alpha1.IdealPointMode) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(
		WithArgs(&v1alpha1.NormalizerArgs{IdealPoint: ptr.To(mode)}),
		WithLogger(testr.New(t)),
	)
	require.NoError(t, err)
	return n
}

func TestNewNormalizerRejectsInvalidArgs(t *testing.T) {
	_, err := NewNormalizer(WithArgs(&v1alpha1.NormalizerArgs{MinIntercept: ptr.To(-1.0)}))
	assert.Error(t, err)
}

func TestNewNormalizerDoesNotModifyArgs(t *testing.T) {
	args := &v1alpha1.NormalizerArgs{}
	_, err := NewNormalizer(WithArgs(args))
	require.NoError(t, err)
	assert.Nil(t, args.Epsilon)
}

func TestIdealPointKeepsInfiniteSeed(t *testing.T) {
	s := mustSolutions(t, framework.ObjectiveSpacePoint{2, 1}, framework.ObjectiveSpacePoint{1, 2}, framework.ObjectiveSpacePoint{5, 5})
	assert.Equal(t, []float64{math.Inf(1), math.Inf(1)}, idealPoint(s))
	assert.Equal(t, []float64{1, 1}, minimumPoint(s))
}

func TestTranslateReturnsFreshVectors(t *testing.T) {
	s := mustSolutions(t, framework.ObjectiveSpacePoint{2, 1}, framework.ObjectiveSpacePoint{1, 2})

	translated, err := translate(s, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []framework.ObjectiveSpacePoint{{1, 0}, {0, 1}}, translated.Points())

	translated.At(0)[0] = 99
	assert.Equal(t, framework.ObjectiveSpacePoint{2, 1}, s.At(0))
}

func TestExtremePoints(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)

	tests := []struct {
		name   string
		points []framework.ObjectiveSpacePoint
		want   []framework.ObjectiveSpacePoint
	}{
		{
			name:   "axis points",
			points: []framework.ObjectiveSpacePoint{{1, 0}, {0, 1}, {4, 4}},
			want:   []framework.ObjectiveSpacePoint{{1, 0}, {0, 1}},
		},
		{
			name:   "ties keep the first occurrence",
			points: []framework.ObjectiveSpacePoint{{3, 0}, {0, 2}, {3, 0}, {0, 2}},
			want:   []framework.ObjectiveSpacePoint{{3, 0}, {0, 2}},
		},
		{
			name:   "three objectives",
			points: []framework.ObjectiveSpacePoint{{0.1, 0.1, 0.8}, {0.8, 0.1, 0.1}, {0.1, 0.8, 0.1}},
			want:   []framework.ObjectiveSpacePoint{{0.8, 0.1, 0.1}, {0.1, 0.8, 0.1}, {0.1, 0.1, 0.8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.extremePoints(mustSolutions(t, tt.points...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtremePointsTieReturnsFirstIndex(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)
	s := mustSolutions(t, framework.ObjectiveSpacePoint{0, 0}, framework.ObjectiveSpacePoint{0, 0})
	assert.Equal(t, 0, n.extremePoint(s, 0))
	assert.Equal(t, 0, n.extremePoint(s, 1))
}

func TestIntercepts(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)

	tests := []struct {
		name           string
		points         []framework.ObjectiveSpacePoint
		want           []float64
		wantDegenerate bool
	}{
		{
			// Extremes (2,0) and (0,4) span x/2 + y/4 = 1.
			name:   "solved hyperplane",
			points: []framework.ObjectiveSpacePoint{{2, 0}, {0, 4}, {1, 1}},
			want:   []float64{2, 4},
		},
		{
			// Both extreme points are (0,0).
			name:           "coincident extreme points",
			points:         []framework.ObjectiveSpacePoint{{0, 0}, {1, 3}, {2, 1}},
			want:           []float64{2, 3},
			wantDegenerate: true,
		},
		{
			// The solved intercepts are 1e-4, below the accepted minimum.
			name:           "small intercepts",
			points:         []framework.ObjectiveSpacePoint{{1e-4, 0}, {0, 1e-4}, {0.5, 0.5}},
			want:           []float64{0.5, 0.5},
			wantDegenerate: true,
		},
		{
			// Extremes (-2,-1) and (-1,-2) give intercepts of -3.
			name:           "negative intercepts",
			points:         []framework.ObjectiveSpacePoint{{-2, -1}, {-1, -2}},
			want:           []float64{eps, eps},
			wantDegenerate: true,
		},
		{
			name:           "all zero population",
			points:         []framework.ObjectiveSpacePoint{{0, 0, 0}, {0, 0, 0}},
			want:           []float64{eps, eps, eps},
			wantDegenerate: true,
		},
	}

	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSolutions(t, tt.points...)
			got, degenerate := n.intercepts(s, n.extremePoints(s))
			assert.Equal(t, tt.wantDegenerate, degenerate)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("intercepts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDegenerateFallbackUsesPopulationMaximum(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)
	s := mustSolutions(t,
		framework.ObjectiveSpacePoint{1, 1},
		framework.ObjectiveSpacePoint{2, 2},
		framework.ObjectiveSpacePoint{3, 1.5},
	)

	h, translated, err := n.fit(s)
	require.NoError(t, err)
	require.True(t, h.degenerate)

	for j := 0; j < translated.Objectives(); j++ {
		want := eps
		for _, p := range translated.Points() {
			want = math.Max(want, p[j])
		}
		assert.Equal(t, want, h.intercepts[j], "objective %d", j)
	}
	assert.Equal(t, []float64{2, 1}, h.intercepts)
}

func TestNormalizeConsumesInput(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)
	s := mustSolutions(t, framework.ObjectiveSpacePoint{1, 3}, framework.ObjectiveSpacePoint{3, 1})
	original := s.Points()

	normalized, err := n.Normalize(s)
	require.NoError(t, err)
	assert.Equal(t, 2, normalized.Len())

	assert.True(t, s.Released())
	assert.Equal(t, []framework.ObjectiveSpacePoint{{1, 3}, {3, 1}}, original)

	_, err = n.Normalize(s)
	assert.ErrorIs(t, err, ErrConsumed)

	_, err = n.Normalize(nil)
	assert.ErrorIs(t, err, ErrNilSolutions)
}

func TestNormalizeMinimum(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)
	s := mustSolutions(t,
		framework.ObjectiveSpacePoint{2, 1},
		framework.ObjectiveSpacePoint{1, 2},
		framework.ObjectiveSpacePoint{5, 5},
	)

	normalized, err := n.Normalize(s)
	require.NoError(t, err)
	want := []framework.ObjectiveSpacePoint{{1, 0}, {0, 1}, {4, 4}}
	if diff := cmp.Diff(want, normalized.Points(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("normalized mismatch (-want +got):\n%s", diff)
	}
}

// With the default fold the ideal point is +Inf, the translated population is
// -Inf everywhere and the solve yields NaN, which the fallback replaces.
func TestNormalizeMaximumFallsBackToEpsilon(t *testing.T) {
	n := newTestNormalizer(t, v1alpha1.IdealPointMaximum)
	s := mustSolutions(t,
		framework.ObjectiveSpacePoint{2, 1},
		framework.ObjectiveSpacePoint{1, 2},
		framework.ObjectiveSpacePoint{5, 5},
	)

	h, _, err := n.fit(s)
	require.NoError(t, err)
	assert.True(t, h.degenerate)
	assert.Equal(t, []float64{eps, eps}, h.intercepts)

	normalized, err := n.Normalize(s)
	require.NoError(t, err)
	for _, p := range normalized.Points() {
		for _, v := range p {
			assert.True(t, math.IsInf(v, -1), "got %v", v)
		}
	}
}

func TestInterceptsArePositive(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	problems := []framework.Problem{
		benchmarks.NewZDT1(10),
		benchmarks.NewDTLZ1(3, 5),
		benchmarks.NewDTLZ1(5, 5),
	}

	for _, mode := range []v1alpha1.IdealPointMode{v1alpha1.IdealPointMaximum, v1alpha1.IdealPointMinimum} {
		n := newTestNormalizer(t, mode)
		for _, p := range problems {
			for round := 0; round < 5; round++ {
				s, err := framework.Sample(p, 40, rng)
				require.NoError(t, err)

				h, _, err := n.fit(s)
				require.NoError(t, err)
				for j, v := range h.intercepts {
					if h.degenerate {
						assert.GreaterOrEqual(t, v, eps, "%s %s objective %d", mode, p.Name(), j)
					} else {
						assert.GreaterOrEqual(t, v, 0.001, "%s %s objective %d", mode, p.Name(), j)
					}
				}
			}
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	raw, err := framework.Sample(benchmarks.NewDTLZ1(4, 5), 30, rng)
	require.NoError(t, err)

	n := newTestNormalizer(t, v1alpha1.IdealPointMinimum)
	first, err := n.Normalize(mustSolutions(t, raw.Points()...))
	require.NoError(t, err)
	second, err := n.Normalize(mustSolutions(t, raw.Points()...))
	require.NoError(t, err)

	assert.Equal(t, first.Points(), second.Points())
}
