package vehicle

// EngineStatus is the state of a car engine.
type EngineStatus string

const (
	// EngineOn means the engine is running.
	EngineOn EngineStatus = "on"
	// EngineOff means the engine is stopped.
	EngineOff EngineStatus = "off"
)

// Car is a road car with a startable engine.
type Car struct {
	base

	fuelType string
	doors    int
	engine   EngineStatus
}

// NewCar creates a car with the engine off.
func NewCar(info Info, fuelType string, doors int) *Car {
	return &Car{
		base:     newBase(info),
		fuelType: fuelType,
		doors:    doors,
		engine:   EngineOff,
	}
}

// Kind returns KindCar.
func (c *Car) Kind() Kind {
	return KindCar
}

// Move returns the driving description.
func (c *Car) Move() string {
	return "Driving 🚗"
}

// StartEngine turns the engine on.
func (c *Car) StartEngine() string {
	c.engine = EngineOn
	return "Engine started! Vroom vroom! 🏁"
}

// StopEngine turns the engine off.
func (c *Car) StopEngine() string {
	c.engine = EngineOff
	return "Engine stopped ⛔"
}

// EngineStatus returns the engine state.
func (c *Car) EngineStatus() EngineStatus {
	return c.engine
}

// FuelType returns the fuel type (e.g. Gasoline).
func (c *Car) FuelType() string {
	return c.fuelType
}

// Doors returns the number of doors.
func (c *Car) Doors() int {
	return c.doors
}

// Status returns the engine state as text.
func (c *Car) Status() string {
	return "engine " + string(c.engine)
}

// SignatureAction starts the engine.
func (c *Car) SignatureAction() string {
	return c.StartEngine()
}
