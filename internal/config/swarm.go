package config

import "fmt"

// AgentKind selects which agent step rule a swarm's population runs
// (agent.Kind mirrors this; config can't import agent since agent
// imports config).
type AgentKind string

const (
	KindDynamic AgentKind = "dynamic"
	KindStatic  AgentKind = "static"
	KindGP      AgentKind = "gp"
)

// Zone is an axis-aligned rectangle used to count how often an agent
// visits a designated region of the field.
type Zone struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether (x, y) falls inside the zone, bounds inclusive.
func (z Zone) Contains(x, y float64) bool {
	return x >= z.MinX && x <= z.MaxX && y >= z.MinY && y <= z.MaxY
}

// Swarm holds every configurable parameter for one simulation run.
// Zero values, except in Efficiency and InitialLoad, are replaced with
// the defaults from DefaultSwarm by NormalizeAndValidate.
type Swarm struct {
	// Population and field geometry
	PopulationSize int
	Width          int
	Height         int
	MaxPower       float64 // peak field value; field cells live in [0, MaxPower]

	// Agent dynamics
	MaxSpeed      float64
	Vision        float64 // neighbor query radius
	Separation    float64 // initial / minimum separation distance
	Efficiency    float64 // recharge conversion coefficient, [0, 1]
	Consume       float64 // consumption coefficient
	InitialBattery float64 // initial battery per agent, [0, 100]
	InitialLoad    float64 // initial load per agent

	// Reproducibility
	Seed int64

	// Zone counted by Agent.CountInZone (spec.md §4.6 sub-rule 1)
	Zone Zone

	// Kind selects the step rule every agent in the population runs.
	Kind AgentKind
}

// DefaultSwarm returns the configuration spec.md §6 lists as defaults,
// plus the MaxPower and Zone additions SPEC_FULL.md documents.
func DefaultSwarm() Swarm {
	return Swarm{
		PopulationSize: 100,
		Width:          100,
		Height:         100,
		MaxPower:       1.0,
		MaxSpeed:       1.0,
		Vision:         10.0,
		Separation:     5.0,
		Efficiency:     0.3,
		Consume:        1.0,
		InitialBattery: 50.0,
		InitialLoad:    0.0,
		Seed:           10,
		Zone: Zone{
			MinX: 0, MinY: 0,
			MaxX: 25, MaxY: 25,
		},
		Kind: KindDynamic,
	}
}

// NormalizeAndValidate fills unset (zero-value) fields other than
// Efficiency and InitialLoad with DefaultSwarm's values, then validates
// the result. Configuration errors are returned to
// the caller rather than surfaced mid-simulation (spec.md §7).
func (s *Swarm) NormalizeAndValidate() error {
	def := DefaultSwarm()

	if s.PopulationSize == 0 {
		s.PopulationSize = def.PopulationSize
	}
	if s.Width == 0 {
		s.Width = def.Width
	}
	if s.Height == 0 {
		s.Height = def.Height
	}
	if s.MaxPower == 0 {
		s.MaxPower = def.MaxPower
	}
	if s.MaxSpeed == 0 {
		s.MaxSpeed = def.MaxSpeed
	}
	if s.Vision == 0 {
		s.Vision = def.Vision
	}
	if s.Separation == 0 {
		s.Separation = def.Separation
	}
	if s.Consume == 0 {
		s.Consume = def.Consume
	}
	if s.InitialBattery == 0 {
		s.InitialBattery = def.InitialBattery
	}
	if s.Seed == 0 {
		s.Seed = def.Seed
	}
	if s.Zone == (Zone{}) {
		s.Zone = def.Zone
	}
	if s.Kind == "" {
		s.Kind = def.Kind
	}
	// Efficiency and InitialLoad are not backfilled: 0 is a valid value
	// for both, so a zero Efficiency stays 0 here rather than becoming
	// DefaultSwarm's 0.3 (InitialLoad's default is 0 anyway).

	return s.Validate()
}

// Validate checks Swarm for configuration errors (spec.md §7: these fail
// at construction rather than degrading silently).
func (s Swarm) Validate() error {
	var errs ValidationErrors

	requirePositiveInt(&errs, "PopulationSize", s.PopulationSize)
	requirePositiveInt(&errs, "Width", s.Width)
	requirePositiveInt(&errs, "Height", s.Height)
	requirePositive(&errs, "MaxPower", s.MaxPower)
	requirePositive(&errs, "MaxSpeed", s.MaxSpeed)
	requirePositive(&errs, "Vision", s.Vision)
	requirePositive(&errs, "Separation", s.Separation)
	requireRange(&errs, "Efficiency", s.Efficiency, 0, 1)
	requireNonNegative(&errs, "Consume", s.Consume)
	requireRange(&errs, "InitialBattery", s.InitialBattery, 0, 100)
	requireNonNegative(&errs, "InitialLoad", s.InitialLoad)

	switch s.Kind {
	case KindDynamic, KindStatic, KindGP:
	default:
		errs = append(errs, ValidationError{Field: "Kind", Value: s.Kind, Message: "must be one of dynamic, static, gp"})
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid swarm configuration: %w", errs)
	}
	return nil
}
