// Package domain contains the core types of the lesson generation engine:
// learner profile enums, lesson structures and schedules, and video candidate
// metadata. Types here carry no I/O and no external dependencies beyond the
// standard library, so every other package can depend on them freely.
package domain
