package evaluation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/hupe1980/callmetrics/core"
)

const (
	paramPredictions = "predictions"
	paramReferences  = "references"
	paramThreshold   = "threshold"
)

var errNotJSONText = errors.New("arguments is not JSON text")

// sequence converts an untyped collection into its items. Any slice or array
// other than []byte is accepted; a json.RawMessage must hold a JSON array.
func sequence(param string, v any) ([]any, error) {
	switch s := v.(type) {
	case nil:
		return nil, newTypeError(param, "must be a list, got nil")
	case []any:
		return s, nil
	case []byte:
		return nil, newTypeError(param, "must be a list, got []byte")
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(s, &decoded); err != nil {
			e := newTypeError(param, "must be a JSON array")
			e.Err = err
			return nil, e
		}
		items, ok := decoded.([]any)
		if !ok {
			return nil, newTypeError(param, "must be a list, got JSON %s", jsonTypeName(decoded))
		}
		return items, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, newTypeError(param, "must be a list, got %s", typeName(v))
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return typeName(v)
	}
}

// threshold converts an untyped threshold into an int. Only integer kinds
// and integral json.Number values are accepted.
func threshold(v any) (int, error) {
	if n, ok := v.(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			return 0, newTypeError(paramThreshold, "must be an integer, got json.Number %q", n.String())
		}
		return clampInt(i), nil
	}
	if v == nil {
		return 0, newTypeError(paramThreshold, "must be an integer, got nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return clampInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return math.MaxInt, nil
		}
		return int(u), nil
	}
	return 0, newTypeError(paramThreshold, "must be an integer, got %s", typeName(v))
}

// clampInt narrows i to the platform int range. Thresholds beyond it can
// never be reached by a match count anyway.
func clampInt(i int64) int {
	if i > math.MaxInt {
		return math.MaxInt
	}
	if i < math.MinInt {
		return math.MinInt
	}
	return int(i)
}

func checkThreshold(t int) error {
	if t < 0 {
		return newValueError(paramThreshold, -1, nil, "must be non-negative, got %d", t)
	}
	return nil
}

// decodeCalls converts every item into a call record, stopping at the first
// malformed one.
func decodeCalls(param string, items []any) ([]core.Call, error) {
	calls := make([]core.Call, len(items))
	for i, item := range items {
		c, err := decodeCall(param, i, item)
		if err != nil {
			return nil, err
		}
		calls[i] = c
	}
	return calls, nil
}

// decodeCall checks the record shape in a fixed order: mapping, top-level
// keys, type literal, function mapping, function keys, arguments JSON, name.
func decodeCall(param string, index int, item any) (core.Call, error) {
	switch r := item.(type) {
	case core.Call:
		return r, checkCall(param, index, r)
	case *core.Call:
		if r != nil {
			return *r, checkCall(param, index, *r)
		}
	default:
		if m, ok := asObject(item); ok {
			return decodeMap(param, index, m)
		}
	}
	return core.Call{}, newValueError(param, index, nil, "must be an object, got %s", typeName(item))
}

func decodeMap(param string, index int, m map[string]any) (core.Call, error) {
	for _, key := range []string{"id", "type", "function"} {
		if _, ok := m[key]; !ok {
			return core.Call{}, newValueError(param, index, nil, "missing required field: %s", key)
		}
	}
	if t, _ := m["type"].(string); t != core.CallTypeFunction {
		return core.Call{}, newValueError(param, index, nil, "type must be %q, got %v", core.CallTypeFunction, m["type"])
	}

	var fn core.Function
	if f, ok := m["function"].(core.Function); ok {
		if err := validArguments(f.Arguments); err != nil {
			return core.Call{}, argumentsError(param, index, err)
		}
		fn = f
	} else if f, ok := asObject(m["function"]); ok {
		for _, key := range []string{"name", "arguments"} {
			if _, ok := f[key]; !ok {
				return core.Call{}, newValueError(param, index, nil, "function missing required field: %s", key)
			}
		}
		args, err := argumentsText(f["arguments"])
		if err != nil {
			return core.Call{}, argumentsError(param, index, err)
		}
		name, ok := f["name"].(string)
		if !ok {
			return core.Call{}, newValueError(param, index, nil, "function.name must be a string, got %s", typeName(f["name"]))
		}
		fn = core.Function{Name: name, Arguments: args}
	} else {
		return core.Call{}, newValueError(param, index, nil, "function must be an object, got %s", typeName(m["function"]))
	}

	id, ok := m["id"].(string)
	if !ok && m["id"] != nil {
		id = fmt.Sprint(m["id"])
	}
	return core.Call{ID: id, Type: core.CallTypeFunction, Function: fn}, nil
}

// asObject normalizes any string-keyed map into map[string]any.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// checkCall runs the checks a typed record can still fail.
func checkCall(param string, index int, c core.Call) error {
	if c.Type != core.CallTypeFunction {
		return newValueError(param, index, nil, "type must be %q, got %v", core.CallTypeFunction, c.Type)
	}
	if err := validArguments(c.Function.Arguments); err != nil {
		return argumentsError(param, index, err)
	}
	return nil
}

func checkCalls(param string, calls []core.Call) error {
	for i, c := range calls {
		if err := checkCall(param, i, c); err != nil {
			return err
		}
	}
	return nil
}

// argumentsText returns the JSON text held by v. Values that are not text
// count as parse failures.
func argumentsText(v any) (string, error) {
	var text string
	switch a := v.(type) {
	case string:
		text = a
	case json.RawMessage:
		text = string(a)
	case []byte:
		text = string(a)
	default:
		return "", fmt.Errorf("%w: got %s", errNotJSONText, typeName(v))
	}
	if err := validArguments(text); err != nil {
		return "", err
	}
	return text, nil
}

func validArguments(text string) error {
	var v any
	return json.Unmarshal([]byte(text), &v)
}

func argumentsError(param string, index int, err error) *Error {
	return newValueError(param, index, err, "function.arguments is not a valid JSON string")
}
