package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powersvd/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestNewMatrixOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(nil) // nil setters are ignored
	require.True(t, o.ValidateNaNInf())
}

// TestNoValidatePolicyPropagates checks that the relaxed policy reaches Set and Clone.
func TestNoValidatePolicyPropagates(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, math.NaN()))

	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}
