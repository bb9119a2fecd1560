// Package engine implements the group chat run loop. The Engine owns one
// responsibility: drive a multi-party conversation to completion and return
// its transcript. At each step it pulls a decision from the selection
// strategy, invokes the chosen agents in order, appends their replies to the
// shared transcript and consults the termination strategy.
//
// Failure semantics follow three categories:
//   - configuration errors abort before the loop starts
//   - selection errors abort the run in progress
//   - individual agent invocation failures are recorded as error-marked turns
//     and the run continues, so a malfunctioning agent never silently kills
//     the whole conversation
package engine
