// Package linalg holds the small dense solver used to locate the hyperplane
// spanned by the extreme points of a population.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EPS is the magnitude below which a pivot is treated as zero.
const EPS = 1e-10

var (
	// ErrSingularMatrix is returned when a pivot vanishes after row exchange.
	ErrSingularMatrix = errors.New("matrix is (near) singular")

	// ErrDimensionMismatch is returned when the system is not square or the
	// right-hand side does not match it.
	ErrDimensionMismatch = errors.New("system dimensions do not match")
)

// Solve solves A·x = b using Gaussian elimination with partial pivoting.
// A and b are copied and left untouched. Row updates use fused
// multiply-add so ill-conditioned systems see a single rounding per step.
func Solve(a mat.Matrix, b []float64) ([]float64, error) {
	r, c := a.Dims()
	if r == 0 || r != c || r != len(b) {
		return nil, fmt.Errorf("coefficients %dx%d, right-hand side %d: %w", r, c, len(b), ErrDimensionMismatch)
	}
	n := r

	work := mat.DenseCopyOf(a)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = work.RawRowView(i)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	for p := 0; p < n; p++ {
		// Find pivot row and swap.
		pivot := p
		for i := p + 1; i < n; i++ {
			if math.Abs(rows[i][p]) > math.Abs(rows[pivot][p]) {
				pivot = i
			}
		}
		rows[p], rows[pivot] = rows[pivot], rows[p]
		rhs[p], rhs[pivot] = rhs[pivot], rhs[p]

		if math.Abs(rows[p][p]) < EPS {
			return nil, fmt.Errorf("pivot %d is %g: %w", p, rows[p][p], ErrSingularMatrix)
		}

		for i := p + 1; i < n; i++ {
			alpha := rows[i][p] / rows[p][p]
			rhs[i] = -math.FMA(alpha, rhs[p], -rhs[i])
			for j := p; j < n; j++ {
				rows[i][j] = -math.FMA(alpha, rows[p][j], -rows[i][j])
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum = math.FMA(rows[i][j], x[j], sum)
		}
		x[i] = (rhs[i] - sum) / rows[i][i]
	}

	return x, nil
}
