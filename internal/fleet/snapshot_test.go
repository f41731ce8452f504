package fleet

import (
	"fmt"
	"testing"

	"github.com/woozymasta/vehicle-demo/internal/vehicle"
)

func TestTakeSnapshot(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	vehicles, err := BuildAll(cfg)
	if err != nil {
		t.Fatalf("BuildAll error: %v", err)
	}

	before := TakeSnapshot(vehicles)
	if before.Vehicles[0].Status != "engine off" || before.Vehicles[2].Status != "docked" {
		t.Fatalf("unexpected initial status: %q %q", before.Vehicles[0].Status, before.Vehicles[2].Status)
	}

	for _, v := range vehicles {
		if err := v.AddMileage(150); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v.SignatureAction()
	}

	after := TakeSnapshot(vehicles)
	wantStatus := []string{"engine on", "altitude 10000 feet", "sailing", "standing"}
	for i, e := range after.Vehicles {
		if e.Mileage != 150 {
			t.Fatalf("%s: mileage=%v want 150", e.Kind, e.Mileage)
		}
		if e.Status != wantStatus[i] {
			t.Fatalf("%s: status=%q want %q", e.Kind, e.Status, wantStatus[i])
		}
		if e.ID != before.Vehicles[i].ID {
			t.Fatalf("%s: id changed %s -> %s", e.Kind, before.Vehicles[i].ID, e.ID)
		}
		if want := fmt.Sprintf("%08x", vehicle.Fingerprint(vehicles[i])); e.ID != want {
			t.Fatalf("%s: id=%s want %s", e.Kind, e.ID, want)
		}
		if e.Move == "" {
			t.Fatalf("%s: empty move", e.Kind)
		}
	}
}
