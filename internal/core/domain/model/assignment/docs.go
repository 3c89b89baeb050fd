// Package assignment contains the Assignment ledger record. Records are
// append-only: each pairing of a driver and a vehicle produces a new record,
// ACTIVE while the pairing holds and terminal (COMPLETED or CANCELLED) once
// it ends. Identifiers are storage-assigned and monotonic, so a record's ID
// orders it within the ledger.
package assignment
