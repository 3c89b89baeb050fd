// Package driver contains the DriverProfile aggregate and its availability
// state machine. The aggregate guards the BUSY/assigned-vehicle mirror
// invariant; the assignment coordinator is the only caller of its
// MarkAssigned/MarkUnassigned transitions.
package driver
