package testutil

import (
	"strings"

	"github.com/hupe1980/callmetrics/core"
)

// CallBuilder provides a fluent helper for constructing call records in tests.
// Example:
//
//	c := NewCall("search").ID("call-1").Args(`{"q":"go"}`).Build()
//	raw := NewCall("search").Without("function.arguments").Raw()
//
// Defaults: type "function", arguments "{}", id derived from the name.
type CallBuilder struct {
	id      string
	typ     any
	name    any
	args    any
	without map[string]bool
}

// NewCall creates a builder for a call to the named function.
func NewCall(name string) *CallBuilder {
	return &CallBuilder{
		id:      "call-" + name,
		typ:     core.CallTypeFunction,
		name:    name,
		args:    "{}",
		without: map[string]bool{},
	}
}

// ID overrides the record id (chainable).
func (b *CallBuilder) ID(id string) *CallBuilder { b.id = id; return b }

// Type overrides the type literal; any value is allowed to build malformed records (chainable).
func (b *CallBuilder) Type(t any) *CallBuilder { b.typ = t; return b }

// Name overrides the function name; any value is allowed in Raw records (chainable).
func (b *CallBuilder) Name(n any) *CallBuilder { b.name = n; return b }

// Args overrides the arguments; any value is allowed in Raw records (chainable).
func (b *CallBuilder) Args(a any) *CallBuilder { b.args = a; return b }

// Without drops a key from the Raw record. Nested keys use a "function." prefix (chainable).
func (b *CallBuilder) Without(key string) *CallBuilder { b.without[key] = true; return b }

// Build constructs the typed core.Call. Non-string overrides are rendered empty.
func (b *CallBuilder) Build() core.Call {
	typ, _ := b.typ.(string)
	name, _ := b.name.(string)
	args, _ := b.args.(string)
	return core.Call{ID: b.id, Type: typ, Function: core.Function{Name: name, Arguments: args}}
}

// Raw constructs the record as decoded JSON would present it.
func (b *CallBuilder) Raw() map[string]any {
	fn := map[string]any{"name": b.name, "arguments": b.args}
	rec := map[string]any{"id": b.id, "type": b.typ, "function": fn}
	for key := range b.without {
		if nested, ok := strings.CutPrefix(key, "function."); ok {
			delete(fn, nested)
			continue
		}
		delete(rec, key)
	}
	return rec
}

// Calls builds one typed record per name with default fields.
func Calls(names ...string) []core.Call {
	calls := make([]core.Call, len(names))
	for i, n := range names {
		calls[i] = NewCall(n).ID(core.NewID()).Build()
	}
	return calls
}

// RawCalls builds one untyped record per name with default fields.
func RawCalls(names ...string) []any {
	items := make([]any, len(names))
	for i, n := range names {
		items[i] = NewCall(n).Raw()
	}
	return items
}
