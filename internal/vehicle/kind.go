package vehicle

// Kind names a concrete vehicle implementation.
type Kind string

const (
	// KindCar is a road car.
	KindCar Kind = "car"
	// KindAirplane is a fixed wing aircraft.
	KindAirplane Kind = "airplane"
	// KindBoat is a boat.
	KindBoat Kind = "boat"
	// KindMotorcycle is a motorcycle.
	KindMotorcycle Kind = "motorcycle"
)

// Title returns the display name of the kind.
func (k Kind) Title() string {
	switch k {
	case KindCar:
		return "Car"
	case KindAirplane:
		return "Airplane"
	case KindBoat:
		return "Boat"
	case KindMotorcycle:
		return "Motorcycle"
	default:
		return string(k)
	}
}
