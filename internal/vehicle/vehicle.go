// Package vehicle provides the vehicle contract and its concrete kinds.
package vehicle

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidDistance is returned by AddMileage for a non-positive distance.
	ErrInvalidDistance = errors.New("distance must be positive")
	// ErrUnimplemented is returned when a vehicle kind has no move behavior.
	ErrUnimplemented = errors.New("move behavior is not implemented")
)

// Vehicle is the contract shared by every vehicle kind.
type Vehicle interface {
	Kind() Kind                        // vehicle kind (car, airplane, ...)
	Info() Info                        // identity values fixed at construction
	Move() string                      // kind specific movement description
	AddMileage(distance float64) error // accumulate traveled distance
	Mileage() float64                  // accumulated distance in km
	DisplayInfo() string               // one line summary
	Status() string                    // kind specific status
	SignatureAction() string           // one state changing action of the kind

	isVehicle()
}

// Info holds the identity values of a vehicle.
type Info struct {
	Brand    string  `json:"brand"`     // manufacturer (e.g. Toyota)
	Model    string  `json:"model"`     // model name (e.g. Camry)
	Year     int     `json:"year"`      // model year
	MaxSpeed float64 `json:"max_speed"` // max speed in km/h
}

// base is the state shared by all kinds. It has no Move, so it never
// satisfies Vehicle on its own.
type base struct {
	info    Info
	mileage float64
}

// newBase creates the shared state with zero mileage.
func newBase(info Info) base {
	return base{info: info}
}

// isVehicle limits Vehicle implementations to kinds embedding base.
func (*base) isVehicle() {}

// Info returns a copy of the identity values.
func (b *base) Info() Info {
	return b.info
}

// AddMileage increments mileage by distance if it is positive.
func (b *base) AddMileage(distance float64) error {
	if !(distance > 0) {
		return fmt.Errorf("add %s km: %w", FormatNumber(distance), ErrInvalidDistance)
	}

	b.mileage += distance
	return nil
}

// Mileage returns the accumulated distance in km.
func (b *base) Mileage() float64 {
	return b.mileage
}

// DisplayInfo returns the vehicle summary line.
func (b *base) DisplayInfo() string {
	return fmt.Sprintf("%d %s %s | Max Speed: %s km/h | Mileage: %s km",
		b.info.Year, b.info.Brand, b.info.Model,
		FormatNumber(b.info.MaxSpeed), FormatNumber(b.mileage))
}

// FormatNumber formats v in its shortest decimal form (180, 35.8).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
