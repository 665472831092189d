// Package kernel holds the shared kernel of the ordering domain: building blocks
// used by more than one aggregate.
//
// Identifiers in this domain are opaque non-empty strings. New identifiers are
// produced by an IDGenerator so that aggregates, services and tests can choose
// between random UUIDs and deterministic sequences.
package kernel
