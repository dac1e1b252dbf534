package microagg1d

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// largeInput is the size above which Cluster warns when the global prefix-sum
// calculator is used instead of the stable one.
const largeInput = 1 << 16

// Config controls microaggregation behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// K is the minimum number of elements per group. Must satisfy
	// 1 <= K <= len(x). Default: 2.
	K int

	// Method chooses the dynamic program. "auto" picks "simple" for K <= 21
	// and "wilber" otherwise. Default: "auto".
	Method Method

	// Stable computes group costs from per-cell mean/M2 summaries instead of
	// global prefix sums of values and squares. Slightly slower, but accurate
	// for long sequences and values with a large offset. Default: true.
	Stable bool

	// CellSize is the cell length of the stable calculator. Only used when
	// Stable is set. 0 means K.
	CellSize int

	// Logger receives debug output and warnings. Default: zap.NewNop().
	Logger *zap.Logger
}

// Result contains the output of microaggregation.
type Result struct {
	// Labels assigns each input element, in the caller's order, the ID of its
	// group. IDs run from 0 to NumClusters-1 and increase with value.
	Labels []int

	// SortedLabels holds the group IDs of the values in ascending value order.
	// It is non-decreasing and every group is a contiguous run.
	SortedLabels []int

	// NumClusters is the number of groups.
	NumClusters int

	// Cost is the total within-group sum of squared error.
	Cost float64

	// Method is the concrete method that was run (never MethodAuto).
	Method Method
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		K:      2,
		Method: MethodAuto,
		Stable: true,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Method == "" {
		cfg.Method = MethodAuto
	}
	if cfg.CellSize == 0 {
		cfg.CellSize = cfg.K
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// validateConfig checks cfg and x and returns a descriptive error if either is
// unusable. All checks run before any sorting or dynamic programming.
func validateConfig(cfg *Config, x []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: got empty input", ErrBadShape)
	}
	if cfg.K <= 0 || cfg.K > len(x) {
		return fmt.Errorf("%w: k must be in [1, %d], got %d", ErrKOutOfRange, len(x), cfg.K)
	}
	if !validMethod(cfg.Method) {
		return fmt.Errorf("%w: %q (want %q, %q or %q)", ErrUnknownMethod, cfg.Method, MethodAuto, MethodSimple, MethodWilber)
	}
	if cfg.CellSize < 0 {
		return fmt.Errorf("%w: CellSize must be >= 0, got %d", ErrInvalidArgument, cfg.CellSize)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: x[%d] = %v", ErrNonFinite, i, v)
		}
	}
	return nil
}

// Microaggregate partitions x into groups of at least k elements that are
// contiguous in value order and minimize the total within-group sum of
// squared error. It returns the group ID of every element in the order of x.
//
// It runs Cluster with DefaultConfig, so costs use the stable calculator.
func Microaggregate(x []float64, k int, method Method) ([]int, error) {
	cfg := DefaultConfig()
	cfg.K = k
	cfg.Method = method
	result, err := Cluster(x, cfg)
	if err != nil {
		return nil, err
	}
	return result.Labels, nil
}

// Cluster performs optimal univariate microaggregation of x. x is not
// modified. Returns an error wrapping ErrInvalidArgument if the input or the
// config is invalid.
func Cluster(x []float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg, x); err != nil {
		return nil, err
	}
	method := selectMethod(cfg.Method, cfg.K)

	n := len(x)
	sorted := make([]float64, n)
	copy(sorted, x)
	order := make([]int, n)
	floats.ArgsortStable(sorted, order)

	var calc CostCalculator
	if cfg.Stable {
		calc = NewStableCumsumCalculator(sorted, cfg.CellSize)
	} else {
		if n >= largeInput {
			cfg.Logger.Warn("large input with global prefix sums; costs may lose precision",
				zap.Int("n", n), zap.Int("k", cfg.K))
		}
		calc = NewCumsumCalculator(sorted)
	}

	sortedLabels := clusterSorted(sorted, cfg.K, method, calc, cfg.Logger)

	labels := make([]int, n)
	for rank, idx := range order {
		labels[idx] = sortedLabels[rank]
	}

	result := &Result{
		Labels:       labels,
		SortedLabels: sortedLabels,
		NumClusters:  numClusters(sortedLabels),
		Cost:         sortedCost(calc, sortedLabels),
		Method:       method,
	}
	cfg.Logger.Debug("microaggregation complete",
		zap.Int("n", n),
		zap.Int("k", cfg.K),
		zap.String("method", string(method)),
		zap.Int("clusters", result.NumClusters),
		zap.Float64("cost", result.Cost),
	)
	return result, nil
}

// clusterSorted returns group IDs for the sorted values v, handling the two
// degenerate cases before running the dynamic program.
func clusterSorted(v []float64, k int, method Method, calc CostCalculator, logger *zap.Logger) []int {
	n := len(v)
	labels := make([]int, n)

	switch {
	case n/2 < k:
		// Too few elements for two groups of k: everything is one group.
		logger.Debug("single group", zap.Int("n", n), zap.Int("k", k))
		return labels
	case k == 1:
		logger.Debug("singleton groups", zap.Int("n", n))
		for i := range labels {
			labels[i] = i
		}
		return labels
	}

	back, _ := solver(method)(v, k, calc)
	return RelabelBacktracks(back)
}

// sortedCost sums the cost of each contiguous run of equal labels.
func sortedCost(calc CostCalculator, sortedLabels []int) float64 {
	total := 0.0
	start := 0
	for i := 1; i <= len(sortedLabels); i++ {
		if i == len(sortedLabels) || sortedLabels[i] != sortedLabels[start] {
			total += calc.Cost(start, i-1)
			start = i
		}
	}
	return total
}
