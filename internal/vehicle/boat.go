package vehicle

// Boat is a vessel that is either docked or under sail.
type Boat struct {
	base

	boatType     string
	displacement float64
	docked       bool
}

// NewBoat creates a docked boat.
func NewBoat(info Info, boatType string, displacement float64) *Boat {
	return &Boat{
		base:         newBase(info),
		boatType:     boatType,
		displacement: displacement,
		docked:       true,
	}
}

// Kind returns KindBoat.
func (b *Boat) Kind() Kind {
	return KindBoat
}

// Move returns the sailing description.
func (b *Boat) Move() string {
	return "Sailing ⛵"
}

// Dock moors the boat.
func (b *Boat) Dock() string {
	b.docked = true
	return "Docked at the harbor! ⚓"
}

// SetSail leaves the harbor.
func (b *Boat) SetSail() string {
	b.docked = false
	return "Setting sail! 🌊"
}

// Docked reports whether the boat is moored.
func (b *Boat) Docked() bool {
	return b.docked
}

// BoatType returns the boat type (e.g. Sailboat).
func (b *Boat) BoatType() string {
	return b.boatType
}

// Displacement returns the displacement in kg.
func (b *Boat) Displacement() float64 {
	return b.displacement
}

// Status returns docked or sailing.
func (b *Boat) Status() string {
	if b.docked {
		return "docked"
	}

	return "sailing"
}

// SignatureAction sets sail.
func (b *Boat) SignatureAction() string {
	return b.SetSail()
}
