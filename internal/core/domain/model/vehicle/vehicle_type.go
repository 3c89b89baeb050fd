package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// VehicleType classifies a vehicle by body kind. The type is fixed at
// registration and never changes afterwards.
type VehicleType int

const (
	// TypeUnknown represents an invalid or undefined vehicle type.
	TypeUnknown VehicleType = iota

	// TypeTruck is a heavy goods vehicle.
	TypeTruck

	// TypeVan is a light goods vehicle.
	TypeVan

	// TypeMotorcycle is a two-wheeler for small deliveries.
	TypeMotorcycle

	// TypeCar is a passenger car.
	TypeCar
)

func getTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		TypeUnknown:    "UNKNOWN",
		TypeTruck:      "TRUCK",
		TypeVan:        "VAN",
		TypeMotorcycle: "MOTORCYCLE",
		TypeCar:        "CAR",
	}
}

func getValidTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		TypeTruck:      "TRUCK",
		TypeVan:        "VAN",
		TypeMotorcycle: "MOTORCYCLE",
		TypeCar:        "CAR",
	}
}

// TypeFromString parses the wire/storage representation of a vehicle type.
func TypeFromString(s string) (VehicleType, error) {
	for vt, str := range getValidTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks that the type is one of the valid values.
func (t VehicleType) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", t),
		)
	}
	return nil
}

// String returns the storage/wire name of the type.
func (t VehicleType) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
