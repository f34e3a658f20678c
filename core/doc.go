// Package core provides the foundational domain types shared by the metrics
// evaluator and the provider adapters:
//
//   - Call / Function (one tool invocation in the OpenAI tool-call shape)
//   - Content and its closed set of Parts (text, function call, function response)
//   - Event (one recorded step of an agent run; a slice of them is a trajectory)
//
// The package keeps scoring concerns out of scope. Helpers flatten content
// and trajectories into ordered call records ready for evaluation.
package core
