// Package orchestrator wires the survey schema, the state controller and the
// renderer registry together, providing dependency injection friendly helpers
// for consumers that prefer a single entry point.
package orchestrator
