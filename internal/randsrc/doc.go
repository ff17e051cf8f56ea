// Package randsrc provides seeded, reproducible random sub-streams for the
// swarm simulation. Field noise, initial agent placement, and per-tick
// activation order each draw from their own Stream so that, for a fixed
// orchestrator seed, changing the population size never perturbs field
// generation and vice versa (spec.md §9).
package randsrc
