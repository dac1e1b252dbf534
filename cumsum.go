package microagg1d

import "gonum.org/v1/gonum/floats"

// CostCalculator answers sum-of-squared-error queries over contiguous ranges
// of a sorted value sequence.
type CostCalculator interface {
	// Cost returns the sum of squared deviations from the mean of v[i..j],
	// both ends inclusive. An empty range (j < i) costs 0.
	Cost(i, j int) float64
}

// CumsumCalculator answers Cost queries in O(1) from global prefix sums of the
// values and of their squares.
type CumsumCalculator struct {
	sum   []float64 // sum[t] = v[0] + ... + v[t]
	sumSq []float64 // sumSq[t] = v[0]² + ... + v[t]²
}

// NewCumsumCalculator precomputes the prefix sums of v.
func NewCumsumCalculator(v []float64) *CumsumCalculator {
	sq := make([]float64, len(v))
	floats.MulTo(sq, v, v)
	return &CumsumCalculator{
		sum:   floats.CumSum(make([]float64, len(v)), v),
		sumSq: floats.CumSum(sq, sq),
	}
}

// Cost implements CostCalculator.
func (c *CumsumCalculator) Cost(i, j int) float64 {
	if j <= i {
		return 0
	}
	sum, sumSq := c.sum[j], c.sumSq[j]
	if i > 0 {
		sum -= c.sum[i-1]
		sumSq -= c.sumSq[i-1]
	}
	// Cancellation can push a near-zero SSE slightly negative.
	return max(sumSq-sum*sum/float64(j-i+1), 0)
}

// summary is a mergeable (count, mean, M2) triple, where M2 is the sum of
// squared deviations from mean.
type summary struct {
	count int
	mean  float64
	m2    float64
}

// add incorporates x using Welford's update.
func (s summary) add(x float64) summary {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
	return s
}

// merge combines two disjoint summaries (Chan et al.).
func (s summary) merge(o summary) summary {
	if o.count == 0 {
		return s
	}
	if s.count == 0 {
		return o
	}
	n := s.count + o.count
	delta := o.mean - s.mean
	return summary{
		count: n,
		mean:  s.mean + delta*float64(o.count)/float64(n),
		m2:    s.m2 + o.m2 + delta*delta*float64(s.count)*float64(o.count)/float64(n),
	}
}

// remove returns the summary of the elements of s not in the prefix p.
// p must summarise a subset of the elements summarised by s.
func (s summary) remove(p summary) summary {
	if p.count == 0 {
		return s
	}
	rest := s.count - p.count
	if rest <= 0 {
		return summary{}
	}
	mean := (float64(s.count)*s.mean - float64(p.count)*p.mean) / float64(rest)
	delta := mean - p.mean
	m2 := s.m2 - p.m2 - delta*delta*float64(p.count)*float64(rest)/float64(s.count)
	return summary{count: rest, mean: mean, m2: max(m2, 0)}
}

// directCellMerge is the largest number of fully covered cells that Cost merges
// one by one; longer ranges query the cell tree.
const directCellMerge = 4

// StableCumsumCalculator answers Cost queries from prefix summaries that
// restart at every cell of cellSize elements. A query merges the tail of the
// first cell, the fully covered cells and the head of the last cell.
//
// Every piece is a (count, mean, M2) summary rather than a raw sum of squares,
// and covered cells are only ever merged, never subtracted from a running
// total, so no step cancels quantities much larger than the range's own M2.
// Up to directCellMerge covered cells are merged directly, which covers every
// DP window when cellSize == k. Longer ranges combine O(log n) nodes of a
// segment tree over the cells.
type StableCumsumCalculator struct {
	cellSize int
	local    []summary // local[t] summarises v[cellStart(t)..t]
	leaves   int       // number of leaf slots in tree, a power of two
	tree     []summary // tree[leaves+c] summarises cell c; tree[p] merges its children
}

// NewStableCumsumCalculator precomputes cell summaries of v. cellSize values
// below 1 are treated as 1.
func NewStableCumsumCalculator(v []float64, cellSize int) *StableCumsumCalculator {
	cellSize = max(cellSize, 1)
	numCells := (len(v) + cellSize - 1) / cellSize
	leaves := 1
	for leaves < numCells {
		leaves <<= 1
	}

	local := make([]summary, len(v))
	tree := make([]summary, 2*leaves)
	var running summary
	for t, x := range v {
		if t%cellSize == 0 {
			running = summary{}
		}
		running = running.add(x)
		local[t] = running

		if t%cellSize == cellSize-1 || t == len(v)-1 {
			tree[leaves+t/cellSize] = running
		}
	}
	for p := leaves - 1; p >= 1; p-- {
		tree[p] = tree[2*p].merge(tree[2*p+1])
	}

	return &StableCumsumCalculator{cellSize: cellSize, local: local, leaves: leaves, tree: tree}
}

// Cost implements CostCalculator. Cost(i, i) is exactly 0.
func (c *StableCumsumCalculator) Cost(i, j int) float64 {
	if j <= i {
		return 0
	}
	ci, cj := i/c.cellSize, j/c.cellSize
	if ci == cj {
		return c.localRange(i, j).m2
	}

	s := c.localRange(i, (ci+1)*c.cellSize-1)
	if cj-ci-1 <= directCellMerge {
		for m := ci + 1; m < cj; m++ {
			s = s.merge(c.tree[c.leaves+m])
		}
	} else {
		s = s.merge(c.cellRange(ci+1, cj))
	}
	return s.merge(c.local[j]).m2
}

// localRange summarises v[i..j] where both indices lie in the same cell.
func (c *StableCumsumCalculator) localRange(i, j int) summary {
	if i%c.cellSize == 0 {
		return c.local[j]
	}
	return c.local[j].remove(c.local[i-1])
}

// cellRange summarises the cells lo..hi-1 by merging tree nodes.
func (c *StableCumsumCalculator) cellRange(lo, hi int) summary {
	var left, right summary
	for lo, hi = lo+c.leaves, hi+c.leaves; lo < hi; lo, hi = lo>>1, hi>>1 {
		if lo&1 == 1 {
			left = left.merge(c.tree[lo])
			lo++
		}
		if hi&1 == 1 {
			hi--
			right = c.tree[hi].merge(right)
		}
	}
	return left.merge(right)
}
