// Package policy implements the two decision procedures an agent runs
// each tick: the separation policy (how much room to keep from
// neighbors) and the direction policy (greedy or gaussian-process, which
// way to move). See SPEC_FULL.md §4.4-4.5.
package policy
