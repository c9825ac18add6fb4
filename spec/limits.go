package spec

const (
	// DefaultMaxDepth is the largest number of times a numeral may apply its
	// function while being built or run.
	DefaultMaxDepth = 1 << 16
	// SafetyMargin is kept between a depth limit and the largest natural
	// drawn as a test sample.
	SafetyMargin = 100
	// DefaultSamples is the number of successful samples each law needs.
	DefaultSamples = 100
)

// BoundedMax returns the largest natural that is safe to sample when
// conversions are limited to maxDepth applications.
func BoundedMax(maxDepth int) int {
	if maxDepth <= SafetyMargin {
		return 0
	}
	return maxDepth - SafetyMargin
}
