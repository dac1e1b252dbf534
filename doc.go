// Package microagg1d implements optimal univariate microaggregation.
//
// Microaggregation replaces individual values with the mean of a small group
// of similar values so that every published value is shared by at least k
// records. In one dimension the optimal grouping (minimum total
// within-group sum of squared error) is a partition of the sorted values into
// contiguous runs of at least k elements, and it can be found exactly with a
// dynamic program.
//
// Basic usage:
//
//	labels, err := microagg1d.Microaggregate(values, 3, microagg1d.MethodAuto)
//	// labels[i] is the group ID of values[i]; IDs increase with value.
//	masked, err := microagg1d.Aggregate(values, labels)
//	// masked[i] is the mean of the group values[i] belongs to.
//
// Single-row or single-column matrices are reduced to a vector first:
//
//	values, err := microagg1d.Squeeze(matrix) // ErrBadShape for any other shape
//	labels, err := microagg1d.Microaggregate(values, 3, microagg1d.MethodAuto)
//
// For more control (stable cumulative sums, logging, cost of the result):
//
//	cfg := microagg1d.DefaultConfig()
//	cfg.K = 5
//	result, err := microagg1d.Cluster(values, cfg)
//
// # Algorithm selection
//
// By default (Method: "auto"), Cluster uses the O(n·k) dynamic program for
// k <= 21 and the O(n log n) monotone-candidate optimizer for larger k. Both
// return a partition of the same minimal cost. Set Config.Method to force one:
//
//	cfg.Method = microagg1d.MethodSimple // O(n·k) windowed DP
//	cfg.Method = microagg1d.MethodWilber // O(n log n), exploits the quadrangle inequality
package microagg1d
