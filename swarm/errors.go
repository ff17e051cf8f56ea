package swarm

import "errors"

var (
	// ErrInvalidConfig indicates the swarm's configuration failed
	// validation.
	ErrInvalidConfig = errors.New("invalid swarm configuration")
	// ErrUnknownAgentKind indicates config.Swarm.Kind didn't match any
	// known agent variant.
	ErrUnknownAgentKind = errors.New("unknown agent kind")
)
