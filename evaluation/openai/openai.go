// Package openai converts OpenAI Chat Completions tool calls into call
// records so a model's response can be scored directly against references.
package openai

import (
	"github.com/hupe1980/callmetrics/core"
	"github.com/openai/openai-go"
)

// FromToolCalls converts tool calls preserving order. Missing ids are
// generated and empty arguments become "{}".
func FromToolCalls(toolCalls []openai.ChatCompletionMessageToolCall) []core.Call {
	if len(toolCalls) == 0 {
		return nil
	}
	calls := make([]core.Call, 0, len(toolCalls))
	for _, tc := range toolCalls {
		c := core.NewCall(tc.ID, tc.Function.Name, tc.Function.Arguments)
		if t := string(tc.Type); t != "" {
			c.Type = t
		}
		calls = append(calls, c)
	}
	return calls
}

// FromMessage converts the tool calls of an assistant message.
func FromMessage(msg openai.ChatCompletionMessage) []core.Call {
	return FromToolCalls(msg.ToolCalls)
}

// FromChatCompletion converts the tool calls of the first choice. It returns
// nil when the completion has no choices.
func FromChatCompletion(resp *openai.ChatCompletion) []core.Call {
	if resp == nil || len(resp.Choices) == 0 {
		return nil
	}
	return FromMessage(resp.Choices[0].Message)
}
