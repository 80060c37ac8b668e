package matrix_test

import (
	"testing"

	"github.com/katalvlaran/trimat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToTriDense(t *testing.T) {
	m := mustTri[int](t, 3)
	v := 1
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			require.NoError(t, m.Set(i, j, v))
			v++
		}
	}

	td, err := matrix.ToTriDense(m)
	require.NoError(t, err)
	n, kind := td.Triangle()
	require.Equal(t, 3, n)
	require.Equal(t, mat.Upper, kind)
	require.Equal(t, 1.0, td.At(0, 0))
	require.Equal(t, 3.0, td.At(0, 2))
	require.Equal(t, 5.0, td.At(1, 2))
	require.Equal(t, 6.0, td.At(2, 2))
	require.Equal(t, 0.0, td.At(2, 0))
}

func TestToTriDenseErrors(t *testing.T) {
	_, err := matrix.ToTriDense(mustTri[int](t, 0))
	require.ErrorIs(t, err, matrix.ErrEmpty)

	var nilM *matrix.Triangular[int]
	_, err = matrix.ToTriDense(nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromTriDenseRoundTrip(t *testing.T) {
	td := mat.NewTriDense(3, mat.Upper, []float64{
		1, 2, 3,
		0, 4, 5,
		0, 0, 6,
	})
	m, err := matrix.FromTriDense[float64](td)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.Equal(t, "[1, 2, 3]\n[0, 4, 5]\n[0, 0, 6]\n", m.String())

	back, err := matrix.ToTriDense(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(td, back))
}

func TestFromTriDenseTruncatesToInt(t *testing.T) {
	td := mat.NewTriDense(2, mat.Upper, []float64{1.9, -2.7, 0, 3})
	m, err := matrix.FromTriDense[int](td)
	require.NoError(t, err)
	got, _ := m.At(0, 0)
	require.Equal(t, 1, got)
	got, _ = m.At(0, 1)
	require.Equal(t, -2, got)
}

func TestFromTriDenseErrors(t *testing.T) {
	_, err := matrix.FromTriDense[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	lower := mat.NewTriDense(2, mat.Lower, nil)
	_, err = matrix.FromTriDense[int](lower)
	require.ErrorIs(t, err, matrix.ErrNotUpper)

	big := mat.NewTriDense(4, mat.Upper, nil)
	_, err = matrix.FromTriDense[int](big, matrix.WithMaxSize(3))
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	empty, err := matrix.FromTriDense[int](&mat.TriDense{})
	require.NoError(t, err)
	require.Zero(t, empty.Size())
}
