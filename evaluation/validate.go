package evaluation

import "github.com/hashicorp/go-multierror"

// Validate checks the shape of every record in both inputs and reports all
// violations at once. Unlike EvaluateAny it does not skip the records of a
// side when the other side is empty. It returns nil when both inputs are
// well formed, otherwise a *multierror.Error whose entries are *Error values.
func Validate(predictions, references any) error {
	var result *multierror.Error
	inputs := []struct {
		param string
		value any
	}{
		{paramPredictions, predictions},
		{paramReferences, references},
	}
	for _, in := range inputs {
		items, err := sequence(in.param, in.value)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		for i, item := range items {
			if _, err := decodeCall(in.param, i, item); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	return result.ErrorOrNil()
}
