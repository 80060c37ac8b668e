package vector_test

import (
	"testing"

	"github.com/katalvlaran/trimat/vector"
	"github.com/stretchr/testify/require"
)

func TestScalarOps(t *testing.T) {
	tests := []struct {
		name string
		fill int
		op   func(v *vector.Vector[int]) *vector.Vector[int]
		want int
	}{
		{"add", 0, func(v *vector.Vector[int]) *vector.Vector[int] { return v.AddScalar(3) }, 3},
		{"sub", 4, func(v *vector.Vector[int]) *vector.Vector[int] { return v.SubScalar(3) }, 1},
		{"mul", 3, func(v *vector.Vector[int]) *vector.Vector[int] { return v.MulScalar(3) }, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := filled(t, 5, tc.fill)
			got := tc.op(v)
			require.Equal(t, v.Len(), got.Len())
			require.True(t, filled(t, 5, tc.want).Equal(got))
			// operand untouched
			require.True(t, filled(t, 5, tc.fill).Equal(v))
		})
	}
}

func TestScalarOpsKeepStartIndex(t *testing.T) {
	v := mustVector[float64](t, 2, vector.WithStartIndex(4))
	require.Equal(t, 4, v.AddScalar(1).StartIndex())
}

func TestAddSub(t *testing.T) {
	a := filled(t, 3, 3)
	b := filled(t, 3, 3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{6, 6, 6}, sum.Slice())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, diff.Slice())

	x, _ := vector.FromSlice([]float64{1, 2, 3})
	y, _ := vector.FromSlice([]float64{0.5, 0.5, 4})
	d, err := x.Sub(y)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5, -1}, d.Slice())
}

func TestDot(t *testing.T) {
	a := filled(t, 3, 3)
	b := filled(t, 3, 3)
	got, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 27, got)

	x, _ := vector.FromSlice([]int{1, 2, 3})
	y, _ := vector.FromSlice([]int{4, -5, 6})
	got, err = x.Dot(y)
	require.NoError(t, err)
	require.Equal(t, 12, got)

	e := mustVector[int](t, 0)
	got, err = e.Dot(e)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestOpsSizeMismatch(t *testing.T) {
	a := filled(t, 3, 1)
	b := filled(t, 4, 1)

	sum, err := a.Add(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
	require.Nil(t, sum)

	diff, err := a.Sub(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
	require.Nil(t, diff)

	dot, err := a.Dot(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
	require.Zero(t, dot)
}

func TestOpsNilOperand(t *testing.T) {
	a := filled(t, 3, 1)

	_, err := a.Add(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = a.Dot(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}
