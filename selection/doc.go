// Package selection contains the turn-selection strategies that decide which
// registered agent speaks next in a group chat run. The set of policies is
// small and closed:
//
//  1. RoundRobin — cycles through the registry in registration order
//  2. FixedSequence — replays a caller-supplied workflow with wraparound
//  3. LeadSelection — consults an external decision function once per run to
//     compute a speaking plan, then replays it like a fixed sequence
//
// Strategy instances carry run-scoped counters only. They are owned by a
// single engine run at a time; the engine calls Reset at the start of every
// run so an instance may be reused across sequential runs but must never be
// shared between concurrently executing ones.
package selection
