package microagg1d

// Method selects the dynamic-programming strategy.
type Method string

const (
	MethodAuto   Method = "auto"
	MethodSimple Method = "simple"
	MethodWilber Method = "wilber"
)

// autoSimpleMaxK is the largest k for which MethodAuto picks the O(n·k)
// program. Above it the O(n log n) optimizer is faster in practice.
const autoSimpleMaxK = 21

// validMethod reports whether m is one of the recognized methods.
func validMethod(m Method) bool {
	switch m {
	case MethodAuto, MethodSimple, MethodWilber:
		return true
	default:
		return false
	}
}

// selectMethod resolves MethodAuto into a concrete method based on k. m must
// already have passed validateConfig.
func selectMethod(m Method, k int) Method {
	if m != MethodAuto {
		return m
	}
	if k <= autoSimpleMaxK {
		return MethodSimple
	}
	return MethodWilber
}

// solver returns the dynamic program implementing a concrete method.
func solver(m Method) func([]float64, int, CostCalculator) ([]int, float64) {
	if m == MethodWilber {
		return WilberDynamicProgram
	}
	return SimpleDynamicProgram
}
