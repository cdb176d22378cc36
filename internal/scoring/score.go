// Package scoring converts validation verdicts into points and grades
// finished level runs into medals.
package scoring

import "time"

const (
	// maxTimeBonus is the bonus for an instant answer. It decays by
	// decayPerSecond and reaches zero at 100 seconds.
	maxTimeBonus   = 500
	decayPerSecond = 5

	// defaultBaseScore substitutes for a zero score delta, so a correct
	// answer always earns something.
	defaultBaseScore = 100
)

// TimeBonus returns the speed bonus for an answer submitted after the
// given elapsed time. Never negative.
func TimeBonus(elapsed time.Duration) int {
	bonus := maxTimeBonus - int(elapsed.Seconds()*decayPerSecond)
	if bonus < 0 {
		return 0
	}
	return bonus
}

// EarnedScore computes the points for a correct answer: the validation
// score delta (or the default base when the delta is zero) plus the time
// bonus.
func EarnedScore(scoreDelta int, elapsed time.Duration) int {
	base := scoreDelta
	if base <= 0 {
		base = defaultBaseScore
	}
	return base + TimeBonus(elapsed)
}
