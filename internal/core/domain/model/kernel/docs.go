// Package kernel contains shared value objects used across the domain model.
// These are the building blocks for aggregates: identifiers with validation
// and value semantics, independent of any storage or transport concern.
package kernel
