// Package lesson holds the deterministic lesson-structuring calculator and
// its companion spaced-repetition scheduler. Everything here is a pure
// function: no I/O, no side effects, same output for the same input.
package lesson
