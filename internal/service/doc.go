// Package service implements the lesson assembly workflow. It coordinates
// the deterministic structure calculator, the provider orchestrator, and the
// video discovery fallback chain into a single GenerateLesson operation.
package service
