// Package fleet provides the sample vehicle data set and its snapshot export.
package fleet

import (
	_ "embed"

	"github.com/invopop/yaml"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

//go:embed fleet.yaml
var defaultFleet []byte

// Config is a serialized fleet of vehicle specs.
type Config struct {
	Vehicles []Spec `json:"vehicles"` // vehicles in demonstration order
	Showcase Spec   `json:"showcase"` // car used for the encapsulation demonstration
}

// Spec describes one vehicle. Exactly one kind section is expected, matching Kind.
type Spec struct {
	Kind       vehicle.Kind    `json:"kind"`                 // car, airplane, boat or motorcycle
	Brand      string          `json:"brand"`                // manufacturer
	Model      string          `json:"model"`                // model name
	Year       int             `json:"year"`                 // model year
	MaxSpeed   float64         `json:"max_speed"`            // km/h
	Car        *CarSpec        `json:"car,omitempty"`        // car section
	Airplane   *AirplaneSpec   `json:"airplane,omitempty"`   // airplane section
	Boat       *BoatSpec       `json:"boat,omitempty"`       // boat section
	Motorcycle *MotorcycleSpec `json:"motorcycle,omitempty"` // motorcycle section
}

// CarSpec holds the car specific attributes.
type CarSpec struct {
	FuelType string `json:"fuel_type"` // e.g. Gasoline, Electric
	Doors    int    `json:"doors"`     // number of doors
}

// AirplaneSpec holds the airplane specific attributes.
type AirplaneSpec struct {
	Wingspan float64 `json:"wingspan"` // meters
	Capacity int     `json:"capacity"` // passengers
}

// BoatSpec holds the boat specific attributes.
type BoatSpec struct {
	BoatType     string  `json:"boat_type"`    // e.g. Sailboat
	Displacement float64 `json:"displacement"` // kg
}

// MotorcycleSpec holds the motorcycle specific attributes.
type MotorcycleSpec struct {
	EngineSize int    `json:"engine_size"` // cc
	BikeType   string `json:"bike_type"`   // e.g. Cruiser
}

// Default returns the built-in sample fleet.
func Default() (Config, error) {
	return Parse(defaultFleet)
}

// Parse decodes a fleet config from YAML or JSON.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// info returns the identity values of the spec.
func (s Spec) info() vehicle.Info {
	return vehicle.Info{
		Brand:    s.Brand,
		Model:    s.Model,
		Year:     s.Year,
		MaxSpeed: s.MaxSpeed,
	}
}
