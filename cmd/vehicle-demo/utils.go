package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/yaml"

	"github.com/woozymasta/vehicle-demo/internal/fleet"
	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

// loadFleet decodes the built-in fleet and builds its vehicles.
func loadFleet() (fleet.Config, []vehicle.Vehicle, error) {
	cfg, err := fleet.Default()
	if err != nil {
		return fleet.Config{}, nil, fmt.Errorf("load fleet: %w", err)
	}

	vehicles, err := fleet.BuildAll(cfg)
	if err != nil {
		return fleet.Config{}, nil, err
	}

	return cfg, vehicles, nil
}

// encodeSnapshot encodes the snapshot to the raw data.
func encodeSnapshot(s fleet.Snapshot, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(s)
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
