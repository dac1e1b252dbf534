package microagg1d

import (
	"math"
	"sort"
)

// WilberDynamicProgram solves the same problem as SimpleDynamicProgram in
// O(n log n) time independent of k, returning back pointers in the same
// format and the minimal total cost.
//
// The SSE of a range of sorted values satisfies the quadrangle inequality
// cost(a,c) + cost(b,d) <= cost(a,d) + cost(b,c) for a <= b <= c <= d, and
// setting the cost of groups shorter than k to +Inf preserves it. The matrix
// of candidate values f(j) + cost(j+1, i) is therefore Monge: once a later
// boundary j2 beats an earlier j1 at some position, it beats j1 at every later
// position. Candidates are kept in a queue, each owning the contiguous range
// of positions where it is optimal, and a new candidate's range is found by
// binary search.
//
// Ties go to the earlier boundary. Under exact ties the grouping may differ
// from SimpleDynamicProgram's; the cost does not.
//
// Requires 1 <= k <= len(v) and v sorted ascending.
func WilberDynamicProgram(v []float64, k int, calc CostCalculator) ([]int, float64) {
	n := len(v)
	if n == 0 {
		return nil, 0
	}

	// f[j+1] is the optimal cost of v[0..j]; f[0] is the empty prefix.
	f := make([]float64, n+1)
	back := make([]int, n)

	value := func(j, i int) float64 {
		if i-j < k {
			return math.Inf(1)
		}
		return f[j+1] + calc.Cost(j+1, i)
	}
	beats := func(newer, older, i int) bool {
		vn := value(newer, i)
		return !math.IsInf(vn, 1) && vn < value(older, i)
	}

	q := newCandidateQueue(n)
	q.push(-1, 0)

	for i := 0; i < n; i++ {
		q.advance(i)
		j := q.front()
		f[i+1] = value(j, i)
		back[i] = j
		if i == n-1 || math.IsInf(f[i+1], 1) {
			continue
		}

		// Candidate i is only usable from position i+k, but positions between
		// i+1 and i+k-1 are still in its queue range and simply never won.
		from := i + 1
		for !q.empty() {
			last := q.back()
			if !beats(i, last.boundary, max(last.from, from)) {
				break
			}
			q.pop()
		}
		if q.empty() {
			q.push(i, from)
			continue
		}
		last := q.back()
		lo := max(last.from, from) + 1
		r := lo + sort.Search(n-lo, func(t int) bool {
			return beats(i, last.boundary, lo+t)
		})
		if r < n {
			q.push(i, r)
		}
	}

	return back, f[n]
}

// candidate is a group boundary together with the first position from which it
// is the best boundary among the queued candidates.
type candidate struct {
	boundary int
	from     int
}

// candidateQueue is a deque over a single backing slice; elements are popped
// from the front by advancing head and from the back by truncation.
type candidateQueue struct {
	items []candidate
	head  int
}

func newCandidateQueue(capacity int) *candidateQueue {
	return &candidateQueue{items: make([]candidate, 0, capacity+1)}
}

func (q *candidateQueue) empty() bool { return len(q.items) == q.head }

func (q *candidateQueue) push(boundary, from int) {
	q.items = append(q.items, candidate{boundary: boundary, from: from})
}

func (q *candidateQueue) back() candidate { return q.items[len(q.items)-1] }

func (q *candidateQueue) pop() { q.items = q.items[:len(q.items)-1] }

func (q *candidateQueue) front() int { return q.items[q.head].boundary }

// advance drops front candidates whose range ends before position i.
func (q *candidateQueue) advance(i int) {
	for len(q.items)-q.head >= 2 && q.items[q.head+1].from <= i {
		q.head++
	}
}
