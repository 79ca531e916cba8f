// Package wait provides the timeout catalog and the blocking poll primitive.
//
// Every timed operation in the module derives its timeout from a named wait
// type scaled by a session-wide multiplier:
//
//	waits := wait.NewClock(2.0)
//	timeout := waits.Length(wait.JobCompletion) // 60s with multiplier 2.0
//
// The default lengths make sense for a development server under low load;
// scaling the multiplier rescales every timeout at once without touching
// call sites, which is what lets one suite run against both a fast local
// instance and a loaded shared one.
//
// Until is the sole blocking primitive: it re-evaluates a condition at a
// fixed interval until the condition yields a value or the deadline passes.
// Every other "wait for X" in the module is a condition function plus a
// timeout chosen from the catalog.
package wait
