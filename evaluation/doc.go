// Package evaluation scores a predicted set of function calls against a
// reference set.
//
// Records are matched by function name: every prediction whose name appears
// anywhere among the references is a match, so reference multiplicity
// collapses while prediction multiplicity is kept. Four metrics are derived:
//
//   - MatchedCalls: the matching predictions in their original order
//   - ToolRecognitionRate: whether any prediction was made at all
//   - CorrectWorkflowSelection: whether the match count reaches a threshold
//   - HallucinationRate: unmatched predictions per reference (may be +Inf)
//
// Evaluate works on typed core.Call slices. EvaluateAny accepts decoded JSON
// (any slice of objects) and performs the full shape check before scoring.
// When either side is empty no record is inspected and the result follows
// from the emptiness alone.
//
// Failures are *Error values of kind KindType or KindValue and can be tested
// with errors.Is against ErrType and ErrValue.
package evaluation
