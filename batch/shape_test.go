package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroadcastShape_ScalarsOnly(t *testing.T) {
	shape, err := broadcastShape(nil, nil, Shape{})
	assert.NoError(t, err)
	assert.Equal(t, 1, shape.size())
}

func TestBroadcastShape_ColumnByRow(t *testing.T) {
	shape, err := broadcastShape(Shape{400, 1}, Shape{1, 400}, nil)
	assert.NoError(t, err)
	assert.Equal(t, Shape{400, 400}, shape)
	assert.Equal(t, 160000, shape.size())
}

func TestBroadcastShape_Mismatch(t *testing.T) {
	_, err := broadcastShape(Shape{3}, Shape{4})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestShape_MultiIndexRoundTrip(t *testing.T) {
	shape := Shape{2, 3}
	for flat := 0; flat < shape.size(); flat++ {
		idx := shape.multiIndex(flat)
		assert.Len(t, idx, 2)
		assert.Less(t, idx[0], 2)
		assert.Less(t, idx[1], 3)

		back := 0
		for i, stride := range shape.strides() {
			back += idx[i] * stride
		}
		assert.Equal(t, flat, back)
	}
}
