// Package results computes metrics for a completed typing test.
package results

import "time"

// TestResult is an immutable snapshot of a completed session.
type TestResult struct {
	// TotalWords is the number of words in the target text.
	TotalWords int
	// CharsTyped counts forward keystrokes; corrections never
	// decrement it.
	CharsTyped int
	// CharsInText is the length of the final input buffer.
	CharsInText int
	// Errors counts forward keystrokes that mismatched the target.
	Errors int
	// FinalCorrect counts final buffer positions matching the target.
	FinalCorrect int
	// FinalUncorrected counts final buffer positions that do not.
	FinalUncorrected int

	StartedAt time.Time
	EndedAt   time.Time
}

// Duration is the elapsed wall time of the typing phase.
func (r TestResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Accuracy is the fraction of forward keystrokes that were correct,
// in [0, 1]. Zero when nothing was typed.
func (r TestResult) Accuracy() float64 {
	if r.CharsTyped == 0 {
		return 0
	}
	return float64(r.CharsTyped-r.Errors) / float64(r.CharsTyped)
}

// WPM converts correct final characters to words (5 chars per word),
// penalized by uncorrected errors and floored at zero, per elapsed
// minute. Zero when the duration is not positive.
func (r TestResult) WPM() float64 {
	minutes := r.Duration().Seconds() / 60.0
	if minutes <= 0 {
		return 0
	}
	net := float64(r.FinalCorrect)/5.0 - float64(r.FinalUncorrected)
	if net < 0 {
		net = 0
	}
	return net / minutes
}

// Remark maps a WPM value to a qualitative message. A value equal to a
// bucket boundary falls into the higher bucket.
func Remark(wpm float64) string {
	switch {
	case wpm < 10:
		return "A turtle could type faster."
	case wpm < 20:
		return "Not bad."
	case wpm < 30:
		return "Just a tad below average."
	case wpm < 40:
		return "You're right at the average speed."
	case wpm < 50:
		return "Great job, you're above average!"
	case wpm < 70:
		return "You type like a pro!"
	default:
		return "You're a typing god!"
	}
}
