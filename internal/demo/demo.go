// Package demo provides the scripted vehicle demonstration.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

// DefaultDistance is the distance added to every vehicle during Run.
const DefaultDistance = 150

// Runner writes the demonstration to Out and diagnostics to Err.
type Runner struct {
	Out      io.Writer // demonstration output
	Err      io.Writer // non-fatal diagnostics
	Distance float64   // km added to each vehicle
}

// Run shows the shared contract and one signature action for each vehicle.
func (r Runner) Run(vehicles []vehicle.Vehicle) {
	fmt.Fprintln(r.Out, "🚗 VEHICLE POLYMORPHISM DEMONSTRATION 🚗")
	fmt.Fprintln(r.Out, strings.Repeat("=", 50))

	for _, v := range vehicles {
		fmt.Fprintf(r.Out, "%s: %s\n", v.Kind().Title(), v.Move())
		fmt.Fprintln(r.Out, v.DisplayInfo())

		r.addMileage(v)

		fmt.Fprintln(r.Out, v.SignatureAction())
		fmt.Fprintln(r.Out, strings.Repeat("-", 30))
	}
}

// Encapsulation shows that car state is reachable only through its methods.
func (r Runner) Encapsulation(car *vehicle.Car) {
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, "🔒 ENCAPSULATION DEMONSTRATION 🔒")
	fmt.Fprintln(r.Out, strings.Repeat("=", 40))

	fmt.Fprintf(r.Out, "Car engine status: %s\n", car.EngineStatus())
	fmt.Fprintln(r.Out, car.StartEngine())
	fmt.Fprintf(r.Out, "Car engine status: %s\n", car.EngineStatus())
	fmt.Fprintln(r.Out, "Direct access: not available, engine status is private to Car")
}

// Apply performs the demonstration mutations without writing anything.
func Apply(vehicles []vehicle.Vehicle, distance float64) error {
	var errs []error
	for _, v := range vehicles {
		if err := v.AddMileage(distance); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", v.Kind(), err))
		}
		v.SignatureAction()
	}

	return errors.Join(errs...)
}

// addMileage adds the configured distance and reports the result.
func (r Runner) addMileage(v vehicle.Vehicle) {
	if err := v.AddMileage(r.Distance); err != nil {
		if errors.Is(err, vehicle.ErrInvalidDistance) {
			fmt.Fprintln(r.Err, "Distance must be positive!")
		} else {
			fmt.Fprintf(r.Err, "add mileage: %v\n", err)
		}
		fmt.Fprintf(r.Out, "Mileage unchanged: %s km\n", vehicle.FormatNumber(v.Mileage()))
		return
	}

	fmt.Fprintf(r.Out, "Added %s km: New mileage: %s km\n",
		vehicle.FormatNumber(r.Distance), vehicle.FormatNumber(v.Mileage()))
}
