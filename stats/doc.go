// Package stats fits a normal distribution to a sample and evaluates its
// cumulative mass over an interval (spec.md §4.3).
package stats
