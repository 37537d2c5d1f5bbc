package model

// Attempt is a single guess at a treasure's location.
//
// All fields except the distance are fixed at construction. The distance is
// unset until the caller measures it and calls SetDistance.
// A nil *Attempt stands for "treasure not attempted".
type Attempt struct {
	X     float64 // latitude-like coordinate
	Y     float64 // longitude-like coordinate
	Label string
	Order int // sequence number within a hunt

	distance    int
	hasDistance bool
}

// NewAttempt creates an Attempt without a distance.
func NewAttempt(x, y float64, label string, order int) *Attempt {
	return &Attempt{X: x, Y: y, Label: label, Order: order}
}

// SetDistance assigns the distance to the target in meters.
func (a *Attempt) SetDistance(meters int) {
	a.distance = meters
	a.hasDistance = true
}

// Distance returns the distance in meters and whether it has been set.
func (a *Attempt) Distance() (int, bool) {
	return a.distance, a.hasDistance
}

// HasDistance reports whether SetDistance was called.
func (a *Attempt) HasDistance() bool {
	return a.hasDistance
}

// Location returns the guessed point.
func (a *Attempt) Location() Location {
	return Location{Latitude: a.X, Longitude: a.Y}
}
