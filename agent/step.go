package agent

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"wecswarm/policy"
	"wecswarm/space"
)

var (
	greedyPolicy policy.DirectionPolicy = policy.Greedy{}
	gpPolicy     policy.DirectionPolicy = policy.GP{}
)

// stepStatic implements the Static variant (spec.md §4.7): sample the
// field, account energy, never move and never query neighbors.
func (a *Agent) stepStatic(env Environment, pos r2.Vec) {
	power := env.FieldSample(pos)
	a.load.Store(a.efficiency * power)
	a.energyHarvested.Store(power)
	a.totalEnergyHarvested.Add(power)
	a.neighborsCount.Store(0)
}

// stepDynamic implements the Dynamic/GP step rule (spec.md §4.5-4.6):
// sense, update battery/load/separation, then either hold course (no
// neighbors) or pick a new direction via dirPolicy and move.
func (a *Agent) stepDynamic(env Environment, pos r2.Vec, dirPolicy policy.DirectionPolicy) {
	raw := env.Neighbors(a.ID, pos, a.vision)
	neighbors := make([]space.Neighbor, 0, len(raw))
	for _, n := range raw {
		if n.ID != a.ID {
			neighbors = append(neighbors, n)
		}
	}

	power := env.FieldSample(pos)
	speed := speedFor(a.maxSpeed, a.battery.Load())
	load := loadFor(a.battery.Load())
	consumption := math.Pow(speed, 3)*a.consumeCoeff + load
	recharge := a.efficiency * power
	wecPower := recharge - consumption
	newBattery := clamp(a.battery.Load()+wecPower, 0, 100)

	a.speed.Store(speed)
	a.load.Store(load)
	a.wecPower.Store(wecPower)
	a.battery.Store(newBattery)
	a.energyHarvested.Store(power)
	a.totalEnergyHarvested.Add(power)
	a.neighborsCount.Store(int64(len(neighbors)))

	if len(neighbors) == 0 {
		a.meanEnergyHarvestedNbors.Store(0)
		a.separation.Store(a.minSeparation)
		a.move(env, pos, a.Direction(), speed)
		return
	}

	sumHarvested := 0.0
	neighborPowers := make([]float64, len(neighbors))
	infos := make([]policy.NeighborInfo, len(neighbors))
	for i, n := range neighbors {
		neighborPower := env.FieldSample(n.Position)
		neighborPowers[i] = neighborPower
		infos[i] = policy.NeighborInfo{
			ID:       n.ID,
			Position: n.Position,
			Distance: n.Distance,
			Power:    neighborPower,
		}
		if other, ok := env.AgentByID(n.ID); ok {
			sumHarvested += other.EnergyHarvested()
		}
	}
	a.meanEnergyHarvestedNbors.Store(sumHarvested / float64(len(neighbors)))

	sep := policy.DesiredSeparation(a.minSeparation, power, neighborPowers)
	a.separation.Store(sep)

	ctx := policy.Context{
		Position:   pos,
		Direction:  a.Direction(),
		Separation: sep,
		Battery:    newBattery,
		Vision:     a.vision,
	}
	dir := dirPolicy.Direction(ctx, infos)
	a.move(env, pos, dir, speed)
}

// move reflects the tentative (dir, speed) step off the boundary and
// commits the agent's new position/direction, including the index entry
// env owns.
func (a *Agent) move(env Environment, pos, dir r2.Vec, speed float64) {
	newPos, newDir := env.Reflect(pos, dir, speed)
	a.setPositionDirection(newPos, newDir)
	env.SetPosition(a.ID, newPos)
}

// speedFor implements the quadratic speed law centered at battery 60,
// floored to zero below battery 5 (spec.md §4.4).
func speedFor(maxSpeed, battery float64) float64 {
	if battery < 5 {
		return 0
	}
	factor := 1 - math.Pow(60-battery, 2)/3600
	if factor < 0 {
		factor = 0
	}
	return maxSpeed * factor
}

// loadFor implements the piecewise load law (spec.md §4.4).
func loadFor(battery float64) float64 {
	var load float64
	switch {
	case battery > 80:
		load = 0.6
	case battery >= 20:
		load = 0.2 + math.Pow(battery/100-0.2, 2)
	case battery >= 5:
		load = 0.1
	default:
		load = 0.05
	}
	if load < 0 {
		load = 0
	}
	return load
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
