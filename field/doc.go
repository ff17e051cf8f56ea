// Package field implements the Ocean power field: a W×H grid of power
// values sampled by agents via bilinear interpolation and evolved tick to
// tick by gaussian-smoothed perturbation. See SPEC_FULL.md §4.1.
package field
