package tinygo_servocontrol

type (
	// Direction is an enum to represent the rotation sense driven through the direction pins.
	Direction uint8
)

const (
	DirectionNil Direction = iota
	DirectionForward
	DirectionReverse
)

// InvertedDirection returns the inverted direction.
func (d Direction) InvertedDirection() Direction {
	switch d {
	case DirectionForward:
		return DirectionReverse
	case DirectionReverse:
		return DirectionForward
	default:
		return DirectionNil
	}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionReverse:
		return "reverse"
	default:
		return "nil"
	}
}
