// Package config provides configuration structures and validation for the
// WEC swarm simulation. A zero-value Swarm is not ready to use; call
// DefaultSwarm and override the fields the caller cares about, then run
// NormalizeAndValidate before handing the config to the swarm package.
package config
