// Package swarm is the orchestrator: it owns the field, the spatial
// index and the agent population, and drives one tick at a time across
// them (spec.md §5). It also implements agent.Environment so agents can
// sense and move without importing swarm themselves.
package swarm
