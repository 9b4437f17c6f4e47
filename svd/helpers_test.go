package svd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powersvd/matrix"
)

// fixture23 is [[3,1,1],[1,3,1]]: σ₁ = √18, u₁ = [1,1]/√2, v₁ = [2,2,1]/3.
func fixture23(t *testing.T) *matrix.Dense {
	t.Helper()
	a, err := matrix.NewDenseFromRows([][]float64{
		{3, 1, 1},
		{1, 3, 1},
	})
	require.NoError(t, err)

	return a
}

// randDense BUILDS an r×c *Dense with deterministic U(-1,1) entries.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	a, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return a
}

// requireParallel asserts |⟨x,y⟩| ≈ ‖x‖·‖y‖, i.e. x = ±y up to scale.
func requireParallel(t *testing.T, x, y []float64, delta float64) {
	t.Helper()
	require.Len(t, x, len(y))
	cos := math.Abs(matrix.Dot(x, y)) / (matrix.Norm(x) * matrix.Norm(y))
	require.InDelta(t, 1.0, cos, delta)
}

// funcOp adapts closures to matrix.Operator.
type funcOp struct {
	rows, cols int
	apply      func(dst, x []float64) error
	applyT     func(dst, x []float64) error
}

func (f *funcOp) Rows() int                             { return f.rows }
func (f *funcOp) Cols() int                             { return f.cols }
func (f *funcOp) Apply(dst, x []float64) error          { return f.apply(dst, x) }
func (f *funcOp) ApplyTranspose(dst, x []float64) error { return f.applyT(dst, x) }

// wrap exposes a *Dense only through the Operator methods.
func wrap(a *matrix.Dense) *funcOp {
	return &funcOp{rows: a.Rows(), cols: a.Cols(), apply: a.Apply, applyT: a.ApplyTranspose}
}
