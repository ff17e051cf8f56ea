package policy

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/spatial/r2"
)

// gpLengthScale and gpJitter mirror original_source/direction.py's
// RBF(length_scale=3) kernel and GaussianProcessRegressor(alpha=1e-6).
const (
	gpLengthScale = 3.0
	gpJitter      = 1e-6
)

// GP is the direction policy used by GP agents: fit a gaussian-process
// regressor (RBF kernel) over visible neighbors' (position, power) pairs,
// then move toward the point in the agent's vision box that maximizes
// the regressor's predicted power (spec.md §4.5 regression variant).
type GP struct{}

// Direction implements DirectionPolicy. The crowding override is
// identical to Greedy's.
func (GP) Direction(ctx Context, neighbors []NeighborInfo) r2.Vec {
	if len(neighbors) == 0 {
		return ctx.Direction
	}

	if ctx.Battery >= emergencyBatteryThreshold {
		if dir, crowded := crowdAvoidance(ctx, neighbors); crowded {
			return dir
		}
	}

	mean, ok := fitGP(neighbors)
	if !ok {
		return r2.Vec{}
	}

	best, ok := minimizeNegMean(ctx, mean)
	if !ok {
		return r2.Vec{}
	}

	delta := r2.Sub(best, ctx.Position)
	norm := r2.Norm(delta)
	if norm <= epsilon {
		return r2.Vec{}
	}
	return r2.Scale(1/norm, delta)
}

func rbfKernel(a, b r2.Vec) float64 {
	d := r2.Norm(r2.Sub(a, b))
	return math.Exp(-(d * d) / (2 * gpLengthScale * gpLengthScale))
}

// fitGP solves for the GP posterior-mean weights over neighbors via a
// Cholesky-regularized kernel solve (alpha = (K + jitter*I)^-1 y),
// returning a function evaluating the predicted mean at any point. ok is
// false if the kernel Gram matrix isn't numerically positive-definite
// even after jitter, a numerical degeneracy handled locally (spec.md §7).
func fitGP(neighbors []NeighborInfo) (mean func(r2.Vec) float64, ok bool) {
	n := len(neighbors)

	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rbfKernel(neighbors[i].Position, neighbors[j].Position)
			if i == j {
				v += gpJitter
			}
			k.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(k) {
		return nil, false
	}

	y := mat.NewVecDense(n, nil)
	for i, nb := range neighbors {
		y.SetVec(i, nb.Power)
	}

	weights := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(weights, y); err != nil {
		return nil, false
	}

	mean = func(x r2.Vec) float64 {
		sum := 0.0
		for i, nb := range neighbors {
			sum += rbfKernel(x, nb.Position) * weights.AtVec(i)
		}
		return sum
	}
	return mean, true
}

// minimizeNegMean minimizes the GP's negative predicted mean over the
// box [x0-vision, x0+vision] x [y0-vision, y0+vision] starting at the
// agent's current position (spec.md §4.5). gonum's Nelder-Mead has no
// native box constraint, so the result is clamped back into the vision
// box after the unconstrained search settles — a close approximation of
// the bounded minimize() call original_source/direction.py makes via
// scipy.optimize.minimize(..., bounds=...).
func minimizeNegMean(ctx Context, mean func(r2.Vec) float64) (r2.Vec, bool) {
	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return -mean(r2.Vec{X: p[0], Y: p[1]})
		},
	}

	x0 := []float64{ctx.Position.X, ctx.Position.Y}
	result, err := optimize.Minimize(problem, x0, &optimize.Settings{FuncEvaluations: 200}, &optimize.NelderMead{})
	if err != nil || result == nil {
		return r2.Vec{}, false
	}

	best := r2.Vec{X: result.X[0], Y: result.X[1]}
	best.X = clampf(best.X, ctx.Position.X-ctx.Vision, ctx.Position.X+ctx.Vision)
	best.Y = clampf(best.Y, ctx.Position.Y-ctx.Vision, ctx.Position.Y+ctx.Vision)
	return best, true
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
