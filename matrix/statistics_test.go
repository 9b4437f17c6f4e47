package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powersvd/matrix"
	"github.com/stretchr/testify/require"
)

func TestCenterRows(t *testing.T) {
	x := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		-1, 0, 4,
	})
	before := x.String()

	xc, means, err := matrix.CenterRows(x)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 1}, means, 1e-15)
	require.Equal(t, "[-1, 0, 1]\n[-2, -1, 3]\n", xc.String())
	require.Equal(t, before, x.String()) // input untouched

	// Each centered row sums to zero.
	var i int
	for i = 0; i < xc.Rows(); i++ {
		row, err := xc.RawRowView(i)
		require.NoError(t, err)
		require.InDelta(t, 0.0, row[0]+row[1]+row[2], 1e-12)
	}
}

func TestCenterRowsFallbackMatchesFastPath(t *testing.T) {
	x := RandFilledDense(t, 4, 7, 11)

	fast, fm, err := matrix.CenterRows(x)
	require.NoError(t, err)
	slow, sm, err := matrix.CenterRows(hide{x})
	require.NoError(t, err)

	require.Equal(t, fm, sm)
	require.Equal(t, fast.String(), slow.String())
}

func TestCenterRowsNil(t *testing.T) {
	_, _, err := matrix.CenterRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFrobeniusNorm(t *testing.T) {
	a := NewFilledDense(t, 2, 3, opFixture)

	got, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(22), got, 1e-14) // 9+1+1+1+9+1

	slow, err := matrix.FrobeniusNorm(hide{a})
	require.NoError(t, err)
	require.InDelta(t, got, slow, 1e-14)

	_, err = matrix.FrobeniusNorm(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFrobeniusNormExtremeMagnitudes: both paths scale, so entries near the
// float64 limits neither overflow nor flush to zero.
func TestFrobeniusNormExtremeMagnitudes(t *testing.T) {
	big := NewFilledDense(t, 2, 2, []float64{3e200, 0, 0, 4e200})
	fast, err := matrix.FrobeniusNorm(big)
	require.NoError(t, err)
	require.InEpsilon(t, 5e200, fast, 1e-14)

	slow, err := matrix.FrobeniusNorm(hide{big})
	require.NoError(t, err)
	require.False(t, math.IsInf(slow, 0))
	require.InEpsilon(t, fast, slow, 1e-14)

	tiny := NewFilledDense(t, 1, 2, []float64{3e-200, 4e-200})
	slow, err = matrix.FrobeniusNorm(hide{tiny})
	require.NoError(t, err)
	require.InEpsilon(t, 5e-200, slow, 1e-14)
}

func TestTranspose(t *testing.T) {
	a := NewFilledDense(t, 2, 3, opFixture)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, "[3, 1]\n[1, 3]\n[1, 1]\n", at.String())

	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.Equal(t, at.String(), slow.String())

	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	require.Equal(t, a.String(), att.String())
}
