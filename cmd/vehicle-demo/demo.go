package main

import (
	"os"

	"github.com/woozymasta/vehicle-demo/internal/demo"
	"github.com/woozymasta/vehicle-demo/internal/fleet"
)

type demoCmd struct {
	Distance float64 `short:"d" long:"distance" default:"150" description:"Distance in km added to each vehicle"`
	NoEncap  bool    `long:"no-encapsulation" description:"Skip the encapsulation demonstration"`
}

// Execute runs the demonstration on the sample fleet.
func (c *demoCmd) Execute(_ []string) error {
	cfg, vehicles, err := loadFleet()
	if err != nil {
		return err
	}

	runner := demo.Runner{Out: os.Stdout, Err: os.Stderr, Distance: c.Distance}
	runner.Run(vehicles)

	if c.NoEncap {
		return nil
	}

	car, err := fleet.BuildShowcase(cfg)
	if err != nil {
		return err
	}
	runner.Encapsulation(car)

	return nil
}
