// Package vehicle contains the Vehicle aggregate, its status state machine
// and the VehicleType classification. The aggregate guards the
// ASSIGNED/assigned-driver mirror invariant; the assignment coordinator is
// the only caller of its MarkAssigned/MarkUnassigned transitions.
package vehicle
