// Package generation defines the text-generation provider capability set and
// the orchestrator that tries providers in priority order until one succeeds.
// Concrete providers live under internal/platform; this package serves as the
// boundary between the application core and external LLM services, following
// the hexagonal architecture pattern.
package generation
