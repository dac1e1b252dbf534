package microagg1d

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ClusterSizes returns the number of elements in each group. labels may be in
// any order but must use every ID in 0..c-1 at least once.
func ClusterSizes(labels []int) ([]int, error) {
	c := 0
	for i, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("%w: labels[%d] = %d", ErrBadLabels, i, l)
		}
		c = max(c, l+1)
	}

	sizes := make([]int, c)
	for _, l := range labels {
		sizes[l]++
	}
	for id, size := range sizes {
		if size == 0 {
			return nil, fmt.Errorf("%w: no element has label %d", ErrBadLabels, id)
		}
	}
	return sizes, nil
}

// groupValues splits x by label, returning one slice of values per group.
func groupValues(x []float64, labels []int) ([][]float64, error) {
	if len(x) != len(labels) {
		return nil, fmt.Errorf("%w: %d values, %d labels", ErrLengthMismatch, len(x), len(labels))
	}
	sizes, err := ClusterSizes(labels)
	if err != nil {
		return nil, err
	}

	groups := make([][]float64, len(sizes))
	for id, size := range sizes {
		groups[id] = make([]float64, 0, size)
	}
	for i, l := range labels {
		groups[l] = append(groups[l], x[i])
	}
	return groups, nil
}

// ClusterMeans returns the mean of the values in each group, indexed by group ID.
func ClusterMeans(x []float64, labels []int) ([]float64, error) {
	groups, err := groupValues(x, labels)
	if err != nil {
		return nil, err
	}
	means := make([]float64, len(groups))
	for id, g := range groups {
		means[id] = stat.Mean(g, nil)
	}
	return means, nil
}

// ClusterCost returns the total within-group sum of squared error of x under
// labels.
func ClusterCost(x []float64, labels []int) (float64, error) {
	groups, err := groupValues(x, labels)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		_, variance := stat.MeanVariance(g, nil)
		total += variance * float64(len(g)-1)
	}
	return total, nil
}

// Aggregate returns the microaggregated values: x[i] replaced by the mean of
// its group.
func Aggregate(x []float64, labels []int) ([]float64, error) {
	means, err := ClusterMeans(x, labels)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, l := range labels {
		out[i] = means[l]
	}
	return out, nil
}
