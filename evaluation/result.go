package evaluation

import (
	"encoding/json"
	"math"

	"github.com/hupe1980/callmetrics/core"
)

// Result holds the agreement metrics of one evaluation. All fields are set on
// every path, including the empty-input short-circuit.
type Result struct {
	// MatchedCalls are the predictions whose name occurs among the references,
	// in prediction order.
	MatchedCalls []core.Call `json:"matched_calls"`
	// MatchedIndices are the positions of MatchedCalls inside the predictions.
	MatchedIndices []int `json:"matched_indices"`
	// ToolRecognitionRate is true when at least one prediction was made.
	ToolRecognitionRate bool `json:"tool_recognition_rate"`
	// CorrectWorkflowSelection is true when len(MatchedCalls) reaches the
	// threshold. Always false when either input is empty.
	CorrectWorkflowSelection bool `json:"correct_workflow_selection"`
	// HallucinationRate is unmatched predictions per reference; +Inf when
	// there are unmatched predictions but no references.
	HallucinationRate float64 `json:"hallucination_rate"`
	// Predictions is the number of scored predictions.
	Predictions int `json:"predictions"`
}

// Unmatched returns the number of predictions without a reference name.
func (r Result) Unmatched() int { return r.Predictions - len(r.MatchedCalls) }

// MarshalJSON encodes an unbounded hallucination rate as the string "+Inf",
// which encoding/json cannot represent as a number.
func (r Result) MarshalJSON() ([]byte, error) {
	var rate any = r.HallucinationRate
	if math.IsInf(r.HallucinationRate, 1) {
		rate = "+Inf"
	}
	return json.Marshal(struct {
		MatchedCalls             []core.Call `json:"matched_calls"`
		MatchedIndices           []int       `json:"matched_indices"`
		ToolRecognitionRate      bool        `json:"tool_recognition_rate"`
		CorrectWorkflowSelection bool        `json:"correct_workflow_selection"`
		HallucinationRate        any         `json:"hallucination_rate"`
		Predictions              int         `json:"predictions"`
	}{
		MatchedCalls:             r.MatchedCalls,
		MatchedIndices:           r.MatchedIndices,
		ToolRecognitionRate:      r.ToolRecognitionRate,
		CorrectWorkflowSelection: r.CorrectWorkflowSelection,
		HallucinationRate:        rate,
		Predictions:              r.Predictions,
	})
}
