package fleet

import (
	"errors"
	"strings"
	"testing"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

func TestDefaultFleet(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}

	vehicles, err := BuildAll(cfg)
	if err != nil {
		t.Fatalf("BuildAll error: %v", err)
	}

	tests := []struct {
		kind  vehicle.Kind
		brand string
		model string
		year  int
		speed float64
	}{
		{kind: vehicle.KindCar, brand: "Toyota", model: "Camry", year: 2023, speed: 180},
		{kind: vehicle.KindAirplane, brand: "Boeing", model: "737", year: 2020, speed: 946},
		{kind: vehicle.KindBoat, brand: "Beneteau", model: "Oceanis", year: 2022, speed: 25},
		{kind: vehicle.KindMotorcycle, brand: "Harley-Davidson", model: "Sportster", year: 2023, speed: 180},
	}

	if len(vehicles) != len(tests) {
		t.Fatalf("vehicles=%d want %d", len(vehicles), len(tests))
	}

	for i, tt := range tests {
		v := vehicles[i]
		info := v.Info()
		if v.Kind() != tt.kind || info.Brand != tt.brand || info.Model != tt.model ||
			info.Year != tt.year || info.MaxSpeed != tt.speed {
			t.Fatalf("vehicle #%d: got=%s %+v want %s %s %s %d %v",
				i+1, v.Kind(), info, tt.kind, tt.brand, tt.model, tt.year, tt.speed)
		}
		if v.Mileage() != 0 {
			t.Fatalf("vehicle #%d: mileage=%v want 0", i+1, v.Mileage())
		}
	}

	plane := vehicles[1].(*vehicle.Airplane)
	if plane.Wingspan() != 35.8 || plane.Capacity() != 215 {
		t.Fatalf("airplane attributes: wingspan=%v capacity=%d", plane.Wingspan(), plane.Capacity())
	}

	boat := vehicles[2].(*vehicle.Boat)
	if boat.BoatType() != "Sailboat" || boat.Displacement() != 12000 || !boat.Docked() {
		t.Fatalf("boat attributes: type=%q displacement=%v docked=%v", boat.BoatType(), boat.Displacement(), boat.Docked())
	}

	bike := vehicles[3].(*vehicle.Motorcycle)
	if bike.EngineSize() != 1200 || bike.BikeType() != "Cruiser" {
		t.Fatalf("motorcycle attributes: size=%d type=%q", bike.EngineSize(), bike.BikeType())
	}
}

func TestBuildShowcase(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}

	car, err := BuildShowcase(cfg)
	if err != nil {
		t.Fatalf("BuildShowcase error: %v", err)
	}
	if car.Info().Brand != "Tesla" || car.FuelType() != "Electric" {
		t.Fatalf("showcase: %+v fuel=%q", car.Info(), car.FuelType())
	}
	if car.EngineStatus() != vehicle.EngineOff {
		t.Fatalf("showcase engine=%q want off", car.EngineStatus())
	}

	cfg.Showcase = cfg.Vehicles[2]
	if _, err := BuildShowcase(cfg); !errors.Is(err, ErrNotCar) {
		t.Fatalf("err=%v want %v", err, ErrNotCar)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		err  error
	}{
		{
			name: "unknown kind",
			spec: Spec{Kind: "hovercraft", Brand: "Griffon", Model: "2000TD"},
			err:  vehicle.ErrUnimplemented,
		},
		{
			name: "empty kind",
			spec: Spec{Brand: "Nameless"},
			err:  vehicle.ErrUnimplemented,
		},
		{
			name: "missing section",
			spec: Spec{Kind: vehicle.KindBoat, Brand: "Beneteau", Model: "Oceanis"},
			err:  ErrMissingSection,
		},
		{
			name: "wrong section",
			spec: Spec{Kind: vehicle.KindCar, Brand: "Toyota", Model: "Camry", Motorcycle: &MotorcycleSpec{}},
			err:  ErrMissingSection,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Build(tt.spec)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err=%v want %v", err, tt.err)
			}
			if v != nil {
				t.Fatalf("expected no vehicle, got %s", v.Kind())
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`{"vehicles":[{"kind":"boat","brand":"Jeanneau","model":"Sun Odyssey","year":2021,"max_speed":20,"boat":{"boat_type":"Sailboat","displacement":9000}}]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	vehicles, err := BuildAll(cfg)
	if err != nil {
		t.Fatalf("BuildAll error: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Kind() != vehicle.KindBoat {
		t.Fatalf("unexpected vehicles: %d", len(vehicles))
	}
}

func TestBuildAllReportsPosition(t *testing.T) {
	t.Parallel()

	cfg := Config{Vehicles: []Spec{
		{Kind: vehicle.KindCar, Car: &CarSpec{FuelType: "Diesel", Doors: 2}},
		{Kind: "submarine"},
	}}

	_, err := BuildAll(cfg)
	if !errors.Is(err, vehicle.ErrUnimplemented) {
		t.Fatalf("err=%v want %v", err, vehicle.ErrUnimplemented)
	}
	if got := err.Error(); !strings.HasPrefix(got, "vehicle #2") {
		t.Fatalf("error does not name position: %q", got)
	}
}
