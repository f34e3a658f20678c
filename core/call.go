package core

import "github.com/google/uuid"

// CallTypeFunction is the only accepted value of Call.Type.
const CallTypeFunction = "function"

// Call is a single tool/function invocation record.
type Call struct {
	ID       string   `json:"id"`       // Opaque identifier, never used for matching
	Type     string   `json:"type"`     // Always "function"
	Function Function `json:"function"` // Invocation target
}

// Function describes the concrete function target of a call.
type Function struct {
	Name      string `json:"name"`      // Matching key (exact, case-sensitive)
	Arguments string `json:"arguments"` // JSON text of the arguments
}

// NewCall builds a function call record, generating an ID when id is empty.
func NewCall(id, name, arguments string) Call {
	if id == "" {
		id = NewID()
	}
	if arguments == "" {
		arguments = "{}"
	}
	return Call{ID: id, Type: CallTypeFunction, Function: Function{Name: name, Arguments: arguments}}
}

// NewID returns a new UUID string.
func NewID() string { return uuid.NewString() }

// Names returns the function names of calls preserving order.
func Names(calls []Call) []string {
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Function.Name
	}
	return names
}

// CallsFromContent flattens the function call parts of c into call records.
func CallsFromContent(c Content) []Call {
	var calls []Call
	for _, p := range c.Parts {
		if fc, ok := p.(FunctionCallPart); ok {
			calls = append(calls, fc.FunctionCall.ToCall())
		}
	}
	return calls
}

// CallsFromEvents flattens a trajectory into call records. Partial (streaming)
// events are skipped since their calls are repeated by the final event.
func CallsFromEvents(events []Event) []Call {
	var calls []Call
	for _, e := range events {
		if e.IsPartial() {
			continue
		}
		for _, fc := range e.GetFunctionCalls() {
			calls = append(calls, fc.ToCall())
		}
	}
	return calls
}
