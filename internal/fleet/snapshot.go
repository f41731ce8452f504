package fleet

import (
	"fmt"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

// Snapshot is a read-only export of vehicle state.
type Snapshot struct {
	Vehicles []SnapshotEntry `json:"vehicles"`
}

// SnapshotEntry is the exported state of a single vehicle.
type SnapshotEntry struct {
	ID       string       `json:"id"`        // fingerprint in hex (e.g. 1a2b3c4d)
	Kind     vehicle.Kind `json:"kind"`      // vehicle kind
	Brand    string       `json:"brand"`     // manufacturer
	Model    string       `json:"model"`     // model name
	Year     int          `json:"year"`      // model year
	MaxSpeed float64      `json:"max_speed"` // km/h
	Mileage  float64      `json:"mileage"`   // accumulated km
	Move     string       `json:"move"`      // movement description
	Status   string       `json:"status"`    // kind specific status
}

// TakeSnapshot exports the current state of the vehicles.
func TakeSnapshot(vehicles []vehicle.Vehicle) Snapshot {
	out := Snapshot{Vehicles: make([]SnapshotEntry, 0, len(vehicles))}

	for _, v := range vehicles {
		info := v.Info()
		out.Vehicles = append(out.Vehicles, SnapshotEntry{
			ID:       fmt.Sprintf("%08x", vehicle.Fingerprint(v)),
			Kind:     v.Kind(),
			Brand:    info.Brand,
			Model:    info.Model,
			Year:     info.Year,
			MaxSpeed: info.MaxSpeed,
			Mileage:  v.Mileage(),
			Move:     v.Move(),
			Status:   v.Status(),
		})
	}

	return out
}
