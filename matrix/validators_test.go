package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powersvd/matrix"
	"github.com/stretchr/testify/require"
)

// zeroShapeOp is a custom Operator reporting an empty shape.
type zeroShapeOp struct{}

func (zeroShapeOp) Rows() int                           { return 0 }
func (zeroShapeOp) Cols() int                           { return 3 }
func (zeroShapeOp) Apply(_, _ []float64) error          { return nil }
func (zeroShapeOp) ApplyTranspose(_, _ []float64) error { return nil }

// ptrOp is a pointer-receiver Operator; dereferencing a nil *ptrOp panics.
type ptrOp struct{ r, c int }

func (p *ptrOp) Rows() int                           { return p.r }
func (p *ptrOp) Cols() int                           { return p.c }
func (p *ptrOp) Apply(_, _ []float64) error          { return nil }
func (p *ptrOp) ApplyTranspose(_, _ []float64) error { return nil }

// TestValidateOperatorTypedNilCustom: a nil pointer of any Operator type is
// rejected before Rows/Cols are called.
func TestValidateOperatorTypedNilCustom(t *testing.T) {
	var op *ptrOp
	require.NotPanics(t, func() {
		require.ErrorIs(t, matrix.ValidateOperator(op), matrix.ErrNilMatrix)
	})
	require.NoError(t, matrix.ValidateOperator(&ptrOp{r: 2, c: 3}))

	var h *hide
	require.ErrorIs(t, matrix.ValidateNotNil(h), matrix.ErrNilMatrix)
}

func TestValidateOperator(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateOperator(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateOperator(typedNil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateOperator(zeroShapeOp{}), matrix.ErrInvalidDimensions)

	require.NoError(t, matrix.ValidateOperator(MustDense(t, 1, 1)))
}

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 2, 2)))
}

func TestValidateVecLen(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateFinite(t *testing.T) {
	clean := RandFilledDense(t, 3, 3, 1)
	require.NoError(t, matrix.ValidateFinite(clean))
	require.NoError(t, matrix.ValidateFinite(hide{clean}))

	dirty, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, dirty.Set(1, 0, math.NaN()))

	err = matrix.ValidateFinite(dirty)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,0)")

	// Fallback path reports the same sentinel.
	require.ErrorIs(t, matrix.ValidateFinite(hide{dirty}), matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
