// Package space implements the bounded, non-toroidal 2-D region agents
// drift over: a uniform-grid bucket index for neighbor queries, and the
// reflecting-boundary motion rule. See SPEC_FULL.md §4.2.
package space
