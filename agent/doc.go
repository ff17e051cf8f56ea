// Package agent implements the per-tick WEC agent state and step rule:
// Dynamic (full decision loop), Static (harvest only, no motion), and GP
// (Dynamic with the gaussian-process direction policy). See
// SPEC_FULL.md §4.6-4.7.
package agent
