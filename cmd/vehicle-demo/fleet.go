package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/vehicle-demo/internal/demo"
	"github.com/woozymasta/vehicle-demo/internal/fleet"
)

type fleetCmd struct {
	Format    string  `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	AfterDemo bool    `short:"a" long:"after-demo" description:"Apply the demonstration actions before the snapshot"`
	Distance  float64 `short:"d" long:"distance" default:"150" description:"Distance in km added with --after-demo"`
}

// Execute writes the fleet snapshot to stdout.
func (c *fleetCmd) Execute(_ []string) error {
	format := strings.ToLower(c.Format)
	if format == "" {
		format = "yaml"
	}

	_, vehicles, err := loadFleet()
	if err != nil {
		return err
	}

	if c.AfterDemo {
		if err := demo.Apply(vehicles, c.Distance); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	out, err := encodeSnapshot(fleet.TakeSnapshot(vehicles), format)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}
