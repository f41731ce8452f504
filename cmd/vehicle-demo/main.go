// Command vehicle-demo demonstrates polymorphism and encapsulation with vehicles.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/vehicle-demo/internal/vars"
)

type rootCmd struct {
	Version versionCmd `command:"version" description:"Show version information"`
	Demo    demoCmd    `command:"demo" description:"Run the vehicle demonstration"`
	Fleet   fleetCmd   `command:"fleet" description:"Print the sample fleet snapshot"`
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"demo"}
	}

	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	vars.Print()
	return nil
}
