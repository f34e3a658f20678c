package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/callmetrics/core"
	"github.com/hupe1980/callmetrics/evaluation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messageJSON = `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-3-5-sonnet-latest",
  "stop_reason": "tool_use",
  "content": [
    {"type": "text", "text": "Let me look that up."},
    {"type": "tool_use", "id": "toolu_1", "name": "get_weather", "input": {"city": "Berlin"}},
    {"type": "tool_use", "id": "toolu_2", "name": "get_weather", "input": {"city": "Paris"}},
    {"type": "tool_use", "id": "toolu_3", "name": "book_flight", "input": {}}
  ],
  "usage": {"input_tokens": 10, "output_tokens": 20}
}`

func TestFromMessage(t *testing.T) {
	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(messageJSON), &msg))

	calls := FromMessage(&msg)
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"get_weather", "get_weather", "book_flight"}, core.Names(calls))
	assert.Equal(t, "toolu_1", calls[0].ID)
	assert.Equal(t, core.CallTypeFunction, calls[0].Type)
	assert.JSONEq(t, `{"city":"Berlin"}`, calls[0].Function.Arguments)
	assert.JSONEq(t, `{}`, calls[2].Function.Arguments)

	res, err := evaluation.Evaluate(calls, []core.Call{core.NewCall("", "get_weather", "")})
	require.NoError(t, err)
	assert.Len(t, res.MatchedCalls, 2)
	assert.Equal(t, []int{0, 1}, res.MatchedIndices)
	assert.Equal(t, 1.0, res.HallucinationRate)
}

func TestFromContentBlocks_NoToolUse(t *testing.T) {
	var msg anthropic.Message
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m","type":"message","role":"assistant","content":[{"type":"text","text":"hi"}]}`), &msg))
	assert.Empty(t, FromMessage(&msg))
	assert.Nil(t, FromMessage(nil))
}
