// Package search defines the step-record contract shared by every traversal
// strategy, plus a small registry that maps an Algorithm to its Stepper.
//
// A Stepper is a pull-based iterator: each Next call advances the strategy by
// exactly one expanded cell and returns a Record describing the state after
// that expansion. The final Record is terminal (Found or Exhausted); after it
// Next reports false. Strategies never sleep, render or read settings; the
// playback package owns timing.
//
// Records are safe to retain: Path values are immutable (Extend copies) and
// Visited is a snapshot taken at emission time.
//
// Adding an algorithm means writing a package that implements Stepper and
// calls Register from init. Nothing else changes.
package search
