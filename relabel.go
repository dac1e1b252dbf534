package microagg1d

import "fmt"

// RelabelBacktracks converts back pointers produced by SimpleDynamicProgram or
// WilberDynamicProgram into group IDs over the sorted sequence. IDs start at 0
// for the group containing the smallest value and increase by one per group.
//
// The chain is walked iteratively from the last position: back[cur] is the
// end of the preceding group, and a negative pointer terminates the walk.
func RelabelBacktracks(back []int) []int {
	n := len(back)
	labels := make([]int, n)
	if n == 0 {
		return labels
	}

	groups := 0
	for cur := n - 1; cur >= 0; cur = back[cur] {
		if back[cur] >= cur {
			panic(fmt.Sprintf("microagg1d: back pointer %d at position %d does not point backward", back[cur], cur))
		}
		groups++
	}

	id := groups - 1
	for cur := n - 1; cur >= 0; {
		prev := back[cur]
		for t := prev + 1; t <= cur; t++ {
			labels[t] = id
		}
		id--
		cur = prev
	}
	return labels
}

// numClusters returns one more than the largest ID in labels, which for
// labels from RelabelBacktracks is the number of groups.
func numClusters(labels []int) int {
	c := 0
	for _, l := range labels {
		c = max(c, l+1)
	}
	return c
}
