package collections_test

import (
	"strconv"
	"testing"

	"github.com/Invicton-Labs/go-search/collections"
	"github.com/Invicton-Labs/go-search/comparison"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopySlice(t *testing.T) {
	assert.Nil(t, collections.CopySlice[int](nil))

	src := []int{1, 2, 3}
	dst := collections.CopySlice(src)
	assert.Equal(t, src, dst)
	dst[0] = 10
	assert.Equal(t, 1, src[0])
}

func TestSliceEqual(t *testing.T) {
	eq := comparison.Comparator[int]()
	assert.True(t, collections.SliceEqual(nil, nil, eq))
	assert.False(t, collections.SliceEqual(nil, []int{}, eq))
	assert.False(t, collections.SliceEqual([]int{1}, []int{1, 2}, eq))
	assert.True(t, collections.SliceEqual([]int{1, 2}, []int{1, 2}, eq))
	assert.False(t, collections.SliceEqual([]int{1, 2}, []int{2, 1}, eq))
}

func TestTransformSliceWithErr(t *testing.T) {
	atoi := func(index int, value string) (int, stackerr.Error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, stackerr.Errorf("element %d: %v", index, err)
		}
		return n, nil
	}

	out, err := collections.TransformSliceWithErr([]string{"1", "2", "3"}, atoi)
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	out, err = collections.TransformSliceWithErr([]string{"1", "x"}, atoi)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "element 1")
	assert.Nil(t, out)

	out, err = collections.TransformSliceWithErr[string, int](nil, atoi)
	assert.Nil(t, err)
	assert.Nil(t, out)
}

func TestMaps(t *testing.T) {
	a := map[string]any{"a": 1, "b": 2}
	b := map[string]any{"b": 3, "c": 4}

	merged := collections.MergeMaps(a, b)
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, merged)
	assert.Nil(t, collections.MergeMaps[string, any]())

	c := collections.CopyMap(a)
	c["a"] = 5
	assert.Equal(t, 1, a["a"])

	assert.ElementsMatch(t, []string{"a", "b"}, collections.MapKeys(a))
}
