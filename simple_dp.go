package microagg1d

import "math"

// SimpleDynamicProgram computes the optimal partition of the sorted values v
// into contiguous groups of at least k elements in O(n·k) time.
//
// It returns back pointers and the minimal total cost. back[i] = j means the
// optimal partition of v[0..i] ends with the group v[j+1..i]; -1 means the
// prefix is a single group, or that no valid partition of v[0..i] exists
// (i < k-1). Pass back to RelabelBacktracks to obtain group IDs.
//
// The last group of an optimal prefix never has 2k or more elements, since
// splitting it into two groups of at least k never raises the cost, so only
// the k candidate boundaries i-2k+1..i-k are examined per position. Ties go
// to the smallest boundary.
//
// Requires 1 <= k <= len(v) and v sorted ascending.
func SimpleDynamicProgram(v []float64, k int, calc CostCalculator) ([]int, float64) {
	n := len(v)
	if n == 0 {
		return nil, 0
	}

	minCost := make([]float64, n)
	back := make([]int, n)

	for i := 0; i < min(k-1, n); i++ {
		minCost[i] = math.Inf(1)
		back[i] = -1
	}
	for i := k - 1; i < min(2*k-1, n); i++ {
		minCost[i] = calc.Cost(0, i)
		back[i] = -1
	}

	for i := 2*k - 1; i < n; i++ {
		best := math.Inf(1)
		bestJ := -1
		for j := max(i-2*k+1, k-1); j <= i-k; j++ {
			c := minCost[j] + calc.Cost(j+1, i)
			if c < best {
				best = c
				bestJ = j
			}
		}
		minCost[i] = best
		back[i] = bestJ
	}

	return back, minCost[n-1]
}
