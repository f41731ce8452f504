package vehicle

import "strconv"

// CruisingAltitude is the altitude in feet reached by TakeOff.
const CruisingAltitude = 10000

// Airplane is a fixed wing aircraft.
type Airplane struct {
	base

	wingspan float64
	capacity int
	altitude int
}

// NewAirplane creates an airplane on the ground.
func NewAirplane(info Info, wingspan float64, capacity int) *Airplane {
	return &Airplane{
		base:     newBase(info),
		wingspan: wingspan,
		capacity: capacity,
	}
}

// Kind returns KindAirplane.
func (a *Airplane) Kind() Kind {
	return KindAirplane
}

// Move returns the flying description.
func (a *Airplane) Move() string {
	return "Flying ✈️"
}

// TakeOff climbs to the cruising altitude from any altitude.
func (a *Airplane) TakeOff() string {
	a.altitude = CruisingAltitude
	return "Taking off! 🛫"
}

// Land returns to the ground from any altitude.
func (a *Airplane) Land() string {
	a.altitude = 0
	return "Landing! 🛬"
}

// Altitude returns the altitude with its unit (e.g. "10000 feet").
func (a *Airplane) Altitude() string {
	return strconv.Itoa(a.altitude) + " feet"
}

// AltitudeFeet returns the altitude in feet.
func (a *Airplane) AltitudeFeet() int {
	return a.altitude
}

// Wingspan returns the wingspan in meters.
func (a *Airplane) Wingspan() float64 {
	return a.wingspan
}

// Capacity returns the passenger capacity.
func (a *Airplane) Capacity() int {
	return a.capacity
}

// Status returns the altitude as text.
func (a *Airplane) Status() string {
	return "altitude " + a.Altitude()
}

// SignatureAction takes off.
func (a *Airplane) SignatureAction() string {
	return a.TakeOff()
}
