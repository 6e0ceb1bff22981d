package tinygo_servocontrol

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// DefaultHandler is the default implementation to drive a servo through a PWM pin and two direction pins.
	DefaultHandler struct {
		afterSetAngleFunc  func(angle int16, dutyCycle uint8, direction Direction)
		isPolarityInverted bool
		pwmPin             PWMPin
		directionPin1      DigitalPin
		directionPin2      DigitalPin
		angle              int16
		dutyCycle          uint8
		direction          Direction
		logger             Logger
	}
)

var (
	// setAngleForwardPrefix is the prefix for the log message when setting a forward angle
	setAngleForwardPrefix = []byte("Set servo forward with duty cycle:")

	// setAngleReversePrefix is the prefix for the log message when setting a reverse angle
	setAngleReversePrefix = []byte("Set servo reverse with duty cycle:")
)

// NewDefaultHandler creates a new instance of DefaultHandler
//
// Parameters:
//
// pwmPin: The PWM pin that receives the duty cycle
// directionPin1: The direction pin driven high when moving forward
// directionPin2: The direction pin driven high when moving in reverse
// isPolarityInverted: Whether the roles of the direction pins are swapped
// afterSetAngleFunc: Function to call after setting the angle
// logger: The logger to log messages, usually a tinygo-logger Logger
//
// Returns:
//
// An instance of DefaultHandler and an error if any occurred during initialization.
// A nil pin handle is the only failure, SetAngle itself never fails.
func NewDefaultHandler(
	pwmPin PWMPin,
	directionPin1 DigitalPin,
	directionPin2 DigitalPin,
	isPolarityInverted bool,
	afterSetAngleFunc func(angle int16, dutyCycle uint8, direction Direction),
	logger Logger,
) (*DefaultHandler, tinygoerrors.ErrorCode) {
	// Check the pin handles
	if pwmPin == nil {
		return nil, ErrorCodeServoControlNilPWMPin
	}
	if directionPin1 == nil {
		return nil, ErrorCodeServoControlNilDirectionPin1
	}
	if directionPin2 == nil {
		return nil, ErrorCodeServoControlNilDirectionPin2
	}

	return &DefaultHandler{
		afterSetAngleFunc:  afterSetAngleFunc,
		isPolarityInverted: isPolarityInverted,
		pwmPin:             pwmPin,
		directionPin1:      directionPin1,
		directionPin2:      directionPin2,
		direction:          DirectionForward,
		logger:             logger,
	}, tinygoerrors.ErrorCodeNil
}

// SetAngle sets the servo angle. Angles outside [MinAngle, MaxAngle] are clamped.
//
// Parameters:
//
// angle: The angle in degrees, where the sign selects the direction
func (h *DefaultHandler) SetAngle(angle int16) {
	angle = ClampAngle(angle)
	dutyCycle := AngleToDutyCycle(angle)
	direction := AngleToDirection(angle)

	// Write the duty cycle
	h.pwmPin.WriteDutyCycleToPin(dutyCycle)

	// Drive the direction pins to complementary states
	pinDirection := direction
	if h.isPolarityInverted {
		pinDirection = pinDirection.InvertedDirection()
	}
	if pinDirection == DirectionForward {
		h.directionPin1.WriteHighToPin()
		h.directionPin2.WriteLowToPin()
	} else {
		h.directionPin1.WriteLowToPin()
		h.directionPin2.WriteHighToPin()
	}

	h.angle = angle
	h.dutyCycle = dutyCycle
	h.direction = direction

	// Log the angle change
	if h.logger != nil {
		prefix := setAngleForwardPrefix
		if direction == DirectionReverse {
			prefix = setAngleReversePrefix
		}
		h.logger.AddMessageWithUint32(
			prefix,
			uint32(dutyCycle),
			true,
			true,
			false,
		)
		h.logger.Debug()
	}

	// Call the after set angle function if provided
	if h.afterSetAngleFunc != nil {
		h.afterSetAngleFunc(angle, dutyCycle, direction)
	}
}

// GetAngle returns the last clamped angle set on the servo.
func (h *DefaultHandler) GetAngle() int16 {
	return h.angle
}

// GetDutyCycle returns the last duty cycle written to the PWM pin.
func (h *DefaultHandler) GetDutyCycle() uint8 {
	return h.dutyCycle
}

// GetDirection returns the direction of the last angle set on the servo.
func (h *DefaultHandler) GetDirection() Direction {
	return h.direction
}

// PWMPin returns the PWM pin owned by the handler.
func (h *DefaultHandler) PWMPin() PWMPin {
	return h.pwmPin
}

// DirectionPin1 returns the first direction pin owned by the handler.
func (h *DefaultHandler) DirectionPin1() DigitalPin {
	return h.directionPin1
}

// DirectionPin2 returns the second direction pin owned by the handler.
func (h *DefaultHandler) DirectionPin2() DigitalPin {
	return h.directionPin2
}
