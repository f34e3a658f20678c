package openai

import (
	"encoding/json"
	"testing"

	"github.com/hupe1980/callmetrics/core"
	"github.com/hupe1980/callmetrics/evaluation"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "finish_reason": "tool_calls",
    "logprobs": null,
    "message": {
      "role": "assistant",
      "content": null,
      "refusal": null,
      "tool_calls": [
        {"id": "call_1", "type": "function", "function": {"name": "get_weather", "arguments": "{\"city\":\"Berlin\"}"}},
        {"id": "call_2", "type": "function", "function": {"name": "get_time", "arguments": ""}}
      ]
    }
  }]
}`

func TestFromChatCompletion(t *testing.T) {
	var resp openai.ChatCompletion
	require.NoError(t, json.Unmarshal([]byte(completionJSON), &resp))

	calls := FromChatCompletion(&resp)
	require.Len(t, calls, 2)
	assert.Equal(t, core.Call{
		ID:       "call_1",
		Type:     "function",
		Function: core.Function{Name: "get_weather", Arguments: `{"city":"Berlin"}`},
	}, calls[0])
	assert.Equal(t, "get_time", calls[1].Function.Name)
	assert.Equal(t, "{}", calls[1].Function.Arguments)

	res, err := evaluation.Evaluate(calls, []core.Call{core.NewCall("ref-1", "get_weather", `{"city":"Paris"}`)})
	require.NoError(t, err)
	assert.Equal(t, []string{"get_weather"}, core.Names(res.MatchedCalls))
	assert.Equal(t, 1.0, res.HallucinationRate)
}

func TestFromToolCalls_FillsMissingFields(t *testing.T) {
	calls := FromToolCalls([]openai.ChatCompletionMessageToolCall{
		{Function: openai.ChatCompletionMessageToolCallFunction{Name: "search"}},
	})
	require.Len(t, calls, 1)
	assert.NotEmpty(t, calls[0].ID)
	assert.Equal(t, core.CallTypeFunction, calls[0].Type)
	assert.Equal(t, "{}", calls[0].Function.Arguments)
}

func TestFromChatCompletion_Empty(t *testing.T) {
	assert.Nil(t, FromChatCompletion(nil))
	assert.Nil(t, FromChatCompletion(&openai.ChatCompletion{}))
	assert.Nil(t, FromMessage(openai.ChatCompletionMessage{}))
}
