package tinygo_servocontrol

const (
	// MinAngle is the lowest angle in degrees accepted before clamping
	MinAngle int16 = -180

	// MaxAngle is the highest angle in degrees accepted before clamping
	MaxAngle int16 = 180

	// MaxDutyCycle is the duty cycle written for an angle magnitude of MaxAngle
	MaxDutyCycle uint8 = 255
)

// ClampAngle restricts the angle to the [MinAngle, MaxAngle] range.
//
// Parameters:
//
// angle: The angle in degrees
//
// Returns:
//
// The clamped angle
func ClampAngle(angle int16) int16 {
	if angle < MinAngle {
		return MinAngle
	}
	if angle > MaxAngle {
		return MaxAngle
	}
	return angle
}

// AngleToDutyCycle scales the magnitude of the clamped angle from [0, MaxAngle] to [0, MaxDutyCycle],
// rounding half up.
//
// Parameters:
//
// angle: The angle in degrees
//
// Returns:
//
// The duty cycle value to write to the PWM pin
func AngleToDutyCycle(angle int16) uint8 {
	angle = ClampAngle(angle)

	magnitude := uint32(angle)
	if angle < 0 {
		magnitude = uint32(-int32(angle))
	}

	// Half of MaxAngle is added so that the integer division rounds to the nearest value
	duty := (magnitude*uint32(MaxDutyCycle) + uint32(MaxAngle)/2) / uint32(MaxAngle)
	if duty > uint32(MaxDutyCycle) {
		return MaxDutyCycle
	}
	return uint8(duty)
}

// AngleToDirection returns the rotation direction for the given angle. Zero is forward.
func AngleToDirection(angle int16) Direction {
	if ClampAngle(angle) < 0 {
		return DirectionReverse
	}
	return DirectionForward
}

// DutyCycleToPulse converts a duty cycle into a pulse width within the given PWM period.
//
// Parameters:
//
// period: The PWM period
// dutyCycle: The duty cycle, where MaxDutyCycle is the whole period
//
// Returns:
//
// The pulse width, in the same unit as the period
func DutyCycleToPulse(period uint32, dutyCycle uint8) uint32 {
	return uint32(uint64(period) * uint64(dutyCycle) / uint64(MaxDutyCycle))
}
