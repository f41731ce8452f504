package fleet

import (
	"errors"
	"fmt"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

var (
	// ErrMissingSection is returned when a spec lacks the section for its kind.
	ErrMissingSection = errors.New("missing kind section")
	// ErrNotCar is returned when the showcase spec is not a car.
	ErrNotCar = errors.New("showcase vehicle must be a car")
)

// Build creates a vehicle from its spec.
func Build(s Spec) (vehicle.Vehicle, error) {
	info := s.info()

	switch s.Kind {
	case vehicle.KindCar:
		if s.Car == nil {
			return nil, sectionError(s)
		}
		return vehicle.NewCar(info, s.Car.FuelType, s.Car.Doors), nil

	case vehicle.KindAirplane:
		if s.Airplane == nil {
			return nil, sectionError(s)
		}
		return vehicle.NewAirplane(info, s.Airplane.Wingspan, s.Airplane.Capacity), nil

	case vehicle.KindBoat:
		if s.Boat == nil {
			return nil, sectionError(s)
		}
		return vehicle.NewBoat(info, s.Boat.BoatType, s.Boat.Displacement), nil

	case vehicle.KindMotorcycle:
		if s.Motorcycle == nil {
			return nil, sectionError(s)
		}
		return vehicle.NewMotorcycle(info, s.Motorcycle.EngineSize, s.Motorcycle.BikeType), nil

	default:
		return nil, fmt.Errorf("%s %s: kind %q: %w", s.Brand, s.Model, s.Kind, vehicle.ErrUnimplemented)
	}
}

// BuildAll creates the fleet vehicles in config order.
func BuildAll(cfg Config) ([]vehicle.Vehicle, error) {
	out := make([]vehicle.Vehicle, 0, len(cfg.Vehicles))
	for i, s := range cfg.Vehicles {
		v, err := Build(s)
		if err != nil {
			return nil, fmt.Errorf("vehicle #%d: %w", i+1, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// BuildShowcase creates the encapsulation showcase car.
func BuildShowcase(cfg Config) (*vehicle.Car, error) {
	v, err := Build(cfg.Showcase)
	if err != nil {
		return nil, fmt.Errorf("showcase: %w", err)
	}

	car, ok := v.(*vehicle.Car)
	if !ok {
		return nil, fmt.Errorf("showcase kind %q: %w", cfg.Showcase.Kind, ErrNotCar)
	}

	return car, nil
}

// sectionError builds the error for a spec without its kind section.
func sectionError(s Spec) error {
	return fmt.Errorf("%s %s: %q: %w", s.Brand, s.Model, s.Kind, ErrMissingSection)
}
