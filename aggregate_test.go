package microagg1d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterSizes(t *testing.T) {
	sizes, err := ClusterSizes([]int{1, 0, 1, 0, 1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, sizes)

	sizes, err = ClusterSizes(nil)
	require.NoError(t, err)
	assert.Empty(t, sizes)
}

func TestClusterSizesRejectsBadLabels(t *testing.T) {
	_, err := ClusterSizes([]int{0, -1})
	require.ErrorIs(t, err, ErrBadLabels)

	_, err = ClusterSizes([]int{0, 2, 2})
	require.ErrorIs(t, err, ErrBadLabels)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClusterMeansAndAggregate(t *testing.T) {
	x := []float64{12, 1, 11, 2, 10, 3}
	labels := []int{1, 0, 1, 0, 1, 0}

	means, err := ClusterMeans(x, labels)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 11}, means, 1e-12)

	masked, err := Aggregate(x, labels)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{11, 2, 11, 2, 11, 2}, masked, 1e-12)
}

func TestClusterCost(t *testing.T) {
	cost, err := ClusterCost([]float64{1, 2, 3, 10, 11, 12}, []int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cost, 1e-12)

	cost, err = ClusterCost([]float64{1, 100}, []int{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4900.5, cost, 1e-9)

	// Singleton groups contribute nothing.
	cost, err = ClusterCost([]float64{1, 2, 3}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Zero(t, cost)

	// Unsorted input with a large offset.
	cost, err = ClusterCost([]float64{1e9 + 3, 1e9 + 1, 7, 1e9 + 2, 5}, []int{1, 1, 0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cost, 1e-6)
}

func TestAggregateLengthMismatch(t *testing.T) {
	_, err := Aggregate([]float64{1, 2, 3}, []int{0, 0})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ClusterCost([]float64{1}, []int{0, 0})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAggregatePreservesTotal(t *testing.T) {
	x := []float64{4.5, 9.25, 1, 7, 3.5, 8, 2, 6.75}
	labels, err := Microaggregate(x, 3, MethodAuto)
	require.NoError(t, err)

	masked, err := Aggregate(x, labels)
	require.NoError(t, err)

	var before, after float64
	for i := range x {
		before += x[i]
		after += masked[i]
	}
	assert.InDelta(t, before, after, 1e-9)
}
