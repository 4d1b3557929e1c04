// Package puzzle holds the registry of daily solutions.
//
// Each day lives in its own sub-package (day01, day02, ...) and exposes a Solver.
// Solvers are pure: they receive the raw puzzle input and never touch the filesystem.
package puzzle
