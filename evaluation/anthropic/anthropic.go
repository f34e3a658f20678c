// Package anthropic converts Anthropic Messages API tool_use blocks into call
// records so a Claude response can be scored against references.
package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/callmetrics/core"
)

// FromContentBlocks converts the tool_use blocks of a message body preserving
// order; other block types are ignored. The tool input is re-encoded as JSON
// text and missing ids are generated.
func FromContentBlocks(blocks []anthropic.ContentBlockUnion) []core.Call {
	var calls []core.Call
	for _, block := range blocks {
		if block.Type != "tool_use" {
			continue
		}
		toolBlock := block.AsToolUse()
		args := ""
		if argsBytes, err := json.Marshal(toolBlock.Input); err == nil && string(argsBytes) != "null" {
			args = string(argsBytes)
		}
		calls = append(calls, core.NewCall(toolBlock.ID, toolBlock.Name, args))
	}
	return calls
}

// FromMessage converts the tool_use blocks of a message.
func FromMessage(msg *anthropic.Message) []core.Call {
	if msg == nil {
		return nil
	}
	return FromContentBlocks(msg.Content)
}
