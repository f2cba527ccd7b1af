package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tgmt2/mt2"
	"github.com/tgmt2/mt2/batch"
)

func TestEval_AllScalarsMatchesCompute(t *testing.T) {
	ev := mt2.Event{
		MVis1: 100, PxVis1: 410, PyVis1: 20,
		MVis2: 150, PxVis2: -210, PyVis2: -300,
		PxMiss: -200, PyMiss: 280,
		MInvis1: 100, MInvis2: 100,
	}
	fields := batch.Fields{
		MVis1: batch.ScalarField(ev.MVis1), PxVis1: batch.ScalarField(ev.PxVis1), PyVis1: batch.ScalarField(ev.PyVis1),
		MVis2: batch.ScalarField(ev.MVis2), PxVis2: batch.ScalarField(ev.PxVis2), PyVis2: batch.ScalarField(ev.PyVis2),
		PxMiss: batch.ScalarField(ev.PxMiss), PyMiss: batch.ScalarField(ev.PyMiss),
		MInvis1: batch.ScalarField(ev.MInvis1), MInvis2: batch.ScalarField(ev.MInvis2),
	}

	out, shape, err := batch.Eval(fields, mt2.DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Empty(t, shape)
	assert.Len(t, out, 1)
	assert.InDelta(t, mt2.Compute(ev, mt2.DefaultOptions()), out[0], 1e-9)
}

func TestEval_ShapeMismatch(t *testing.T) {
	fields := batch.Fields{
		MVis1: batch.SliceField([]float64{1, 2, 3}, batch.Shape{3}),
		MVis2: batch.SliceField([]float64{1, 2, 3, 4}, batch.Shape{4}),
	}
	_, _, err := batch.Eval(fields, mt2.DefaultOptions(), nil)
	assert.ErrorIs(t, err, batch.ErrShapeMismatch)
}

func TestEval_OutBufferLengthMismatch(t *testing.T) {
	fields := batch.Fields{MVis1: batch.SliceField([]float64{1, 2, 3}, batch.Shape{3})}
	_, _, err := batch.Eval(fields, mt2.DefaultOptions(), make([]float64, 2))
	assert.ErrorIs(t, err, batch.ErrShapeMismatch)
}

func TestEval_BroadcastOverColumn(t *testing.T) {
	masses := []float64{0, 50, 100}
	fields := batch.Fields{
		MVis1: batch.ScalarField(100), PxVis1: batch.ScalarField(410), PyVis1: batch.ScalarField(20),
		MVis2: batch.ScalarField(150), PxVis2: batch.ScalarField(-210), PyVis2: batch.ScalarField(-300),
		PxMiss: batch.ScalarField(-200), PyMiss: batch.ScalarField(280),
		MInvis1: batch.SliceField(masses, batch.Shape{3}), MInvis2: batch.ScalarField(100),
	}

	out, shape, err := batch.Eval(fields, mt2.DefaultOptions(), nil)
	require.NoError(t, err)
	assert.Equal(t, batch.Shape{3}, shape)
	assert.True(t, floats.Min(out) <= floats.Max(out))

	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i], out[i-1])
	}
}

func TestEvalGrid_Scenario6(t *testing.T) {
	n := 400
	mass1 := make([]float64, n)
	mass2 := make([]float64, n)
	for i := range mass1 {
		mass1[i] = 10 + float64(i)*(200-10)/float64(n-1)
		mass2[i] = 10 + float64(i)*(200-10)/float64(n-1)
	}

	tmpl := mt2.Event{
		MVis1: 100, PxVis1: 410, PyVis1: 20,
		MVis2: 150, PxVis2: -210, PyVis2: -300,
		PxMiss: -200, PyMiss: 280,
	}

	grid, err := batch.EvalGrid(mass1, mass2, tmpl, mt2.DefaultOptions())
	require.NoError(t, err)

	r, c := grid.Dims()
	assert.Equal(t, n, r)
	assert.Equal(t, n, c)

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.False(t, grid.At(i, j) < 0)
		}
	}
}
