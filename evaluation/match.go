package evaluation

import (
	"math"
	"strconv"

	"github.com/hupe1980/callmetrics/core"
)

// match selects, in prediction order, every prediction whose function name
// occurs among the references. It also returns the selected positions.
func match(predictions, references []core.Call) ([]core.Call, []int) {
	names := make(map[string]struct{}, len(references))
	for _, r := range references {
		names[r.Function.Name] = struct{}{}
	}
	matched := make([]core.Call, 0, len(predictions))
	indices := make([]int, 0, len(predictions))
	for i, p := range predictions {
		if _, ok := names[p.Function.Name]; ok {
			matched = append(matched, p)
			indices = append(indices, i)
		}
	}
	return matched, indices
}

// hallucinationRate is (predictions - matched) / references. No predictions
// means no hallucination; unmatched predictions against zero references are
// unbounded.
func hallucinationRate(predictions, matched, references int) float64 {
	if predictions == 0 {
		return 0
	}
	unmatched := predictions - matched
	if references == 0 {
		if unmatched > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(unmatched) / float64(references)
}

// formatRate renders a rate for logs; slog's JSON handler rejects +Inf floats.
func formatRate(rate float64) string { return strconv.FormatFloat(rate, 'g', -1, 64) }
