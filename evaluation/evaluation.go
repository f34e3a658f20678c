package evaluation

import (
	"github.com/hupe1980/callmetrics/core"
	"github.com/hupe1980/callmetrics/logging"
)

// DefaultThreshold is the minimum match count for a correct workflow selection.
const DefaultThreshold = 1

// Options configures an Evaluator.
type Options struct {
	// Threshold is the number of matched calls at which the workflow selection
	// counts as correct. Must be non-negative.
	Threshold int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Evaluator scores predicted function calls against references. It holds no
// mutable state and is safe for concurrent use.
type Evaluator struct {
	opts Options
}

// New creates an Evaluator with optional overrides.
func New(optFns ...func(o *Options)) *Evaluator {
	opts := Options{
		Threshold: DefaultThreshold,
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Evaluator{opts: opts}
}

// Evaluate scores typed records with a one-off Evaluator.
func Evaluate(predictions, references []core.Call, optFns ...func(o *Options)) (*Result, error) {
	return New(optFns...).Evaluate(predictions, references)
}

// EvaluateAny scores untyped (decoded JSON) records. predictions and
// references must be lists; threshold must be an integer. Matched records
// are returned as normalized core.Call values, so extra keys are dropped;
// use Result.MatchedIndices to index back into the original predictions.
func EvaluateAny(predictions, references, threshold any) (*Result, error) {
	return New().evaluateAny(predictions, references, threshold)
}

// Evaluate scores typed records. Records are only checked when both sides
// are non-empty.
func (e *Evaluator) Evaluate(predictions, references []core.Call) (*Result, error) {
	if err := checkThreshold(e.opts.Threshold); err != nil {
		return nil, e.reject(err)
	}
	if len(predictions) == 0 || len(references) == 0 {
		return e.shortCircuit(len(predictions), len(references)), nil
	}
	if err := checkCalls(paramPredictions, predictions); err != nil {
		return nil, e.reject(err)
	}
	if err := checkCalls(paramReferences, references); err != nil {
		return nil, e.reject(err)
	}
	return e.score(predictions, references, e.opts.Threshold), nil
}

// EvaluateAny scores untyped records using the configured threshold. As with
// the package-level EvaluateAny, MatchedIndices locate the original records.
func (e *Evaluator) EvaluateAny(predictions, references any) (*Result, error) {
	return e.evaluateAny(predictions, references, e.opts.Threshold)
}

// EvaluateInvocation scores the calls of actual against those of expected.
func (e *Evaluator) EvaluateInvocation(actual, expected Invocation) (*Result, error) {
	return e.Evaluate(actual.Calls(), expected.Calls())
}

func (e *Evaluator) evaluateAny(predictions, references, thresholdValue any) (*Result, error) {
	predItems, err := sequence(paramPredictions, predictions)
	if err != nil {
		return nil, e.reject(err)
	}
	refItems, err := sequence(paramReferences, references)
	if err != nil {
		return nil, e.reject(err)
	}
	t, err := threshold(thresholdValue)
	if err != nil {
		return nil, e.reject(err)
	}
	if err := checkThreshold(t); err != nil {
		return nil, e.reject(err)
	}
	if len(predItems) == 0 || len(refItems) == 0 {
		return e.shortCircuit(len(predItems), len(refItems)), nil
	}
	preds, err := decodeCalls(paramPredictions, predItems)
	if err != nil {
		return nil, e.reject(err)
	}
	refs, err := decodeCalls(paramReferences, refItems)
	if err != nil {
		return nil, e.reject(err)
	}
	return e.score(preds, refs, t), nil
}

// shortCircuit builds the result for an empty side without inspecting records.
func (e *Evaluator) shortCircuit(predictions, references int) *Result {
	res := &Result{
		MatchedCalls:             []core.Call{},
		MatchedIndices:           []int{},
		ToolRecognitionRate:      predictions > 0,
		CorrectWorkflowSelection: false,
		HallucinationRate:        hallucinationRate(predictions, 0, references),
		Predictions:              predictions,
	}
	e.opts.Logger.Debug("evaluation short-circuited",
		"predictions", predictions,
		"references", references,
		"hallucination_rate", formatRate(res.HallucinationRate),
	)
	return res
}

func (e *Evaluator) score(predictions, references []core.Call, threshold int) *Result {
	matched, indices := match(predictions, references)
	res := &Result{
		MatchedCalls:             matched,
		MatchedIndices:           indices,
		ToolRecognitionRate:      len(predictions) > 0,
		CorrectWorkflowSelection: len(matched) >= threshold,
		HallucinationRate:        hallucinationRate(len(predictions), len(matched), len(references)),
		Predictions:              len(predictions),
	}
	e.opts.Logger.Debug("evaluation completed",
		"predictions", len(predictions),
		"references", len(references),
		"matched", len(matched),
		"threshold", threshold,
		"hallucination_rate", formatRate(res.HallucinationRate),
	)
	return res
}

func (e *Evaluator) reject(err error) error {
	e.opts.Logger.Warn("evaluation rejected input", "error", err.Error())
	return err
}

// Invocation is one recorded exchange of an agent run: the user's request,
// the final response and optionally the full event trajectory behind it.
type Invocation struct {
	UserContent   core.Content
	FinalResponse core.Content
	Trajectory    []core.Event
}

// Calls returns the function calls of the invocation. The trajectory takes
// precedence over the final response when present.
func (inv Invocation) Calls() []core.Call {
	if len(inv.Trajectory) > 0 {
		return core.CallsFromEvents(inv.Trajectory)
	}
	return core.CallsFromContent(inv.FinalResponse)
}
