package vehicle

// Motorcycle is a two wheeler able to ride on its rear wheel.
type Motorcycle struct {
	base

	engineSize int
	bikeType   string
	standing   bool
}

// NewMotorcycle creates a motorcycle on both wheels.
func NewMotorcycle(info Info, engineSize int, bikeType string) *Motorcycle {
	return &Motorcycle{
		base:       newBase(info),
		engineSize: engineSize,
		bikeType:   bikeType,
	}
}

// Kind returns KindMotorcycle.
func (m *Motorcycle) Kind() Kind {
	return KindMotorcycle
}

// Move returns the riding description.
func (m *Motorcycle) Move() string {
	return "Riding 🏍️"
}

// DoWheelie lifts the front wheel.
func (m *Motorcycle) DoWheelie() string {
	m.standing = true
	return "Doing a wheelie! 🤘"
}

// LandWheelie puts the front wheel down.
func (m *Motorcycle) LandWheelie() string {
	m.standing = false
	return "Wheelie landed! 👍"
}

// Standing reports whether the motorcycle is on its rear wheel.
func (m *Motorcycle) Standing() bool {
	return m.standing
}

// EngineSize returns the engine displacement in cc.
func (m *Motorcycle) EngineSize() int {
	return m.engineSize
}

// BikeType returns the bike type (e.g. Cruiser).
func (m *Motorcycle) BikeType() string {
	return m.bikeType
}

// Status returns standing or riding.
func (m *Motorcycle) Status() string {
	if m.standing {
		return "standing"
	}

	return "riding"
}

// SignatureAction does a wheelie.
func (m *Motorcycle) SignatureAction() string {
	return m.DoWheelie()
}
