package config

// Agent holds the per-agent parameters derived from a Swarm configuration.
// It is a pure data structure so agent.New can stay free of the config
// package's validation concerns.
type Agent struct {
	MaxSpeed       float64
	Vision         float64
	MinSeparation  float64
	Efficiency     float64
	ConsumeCoeff   float64
	InitialBattery float64
	InitialLoad    float64
}

// AgentFromSwarm derives the per-agent parameters every agent in the swarm
// shares, mirroring the teacher's AgentFromSwarm(config.Swarm) pattern.
func AgentFromSwarm(sc Swarm) Agent {
	return Agent{
		MaxSpeed:       sc.MaxSpeed,
		Vision:         sc.Vision,
		MinSeparation:  sc.Separation,
		Efficiency:     sc.Efficiency,
		ConsumeCoeff:   sc.Consume,
		InitialBattery: sc.InitialBattery,
		InitialLoad:    sc.InitialLoad,
	}
}
