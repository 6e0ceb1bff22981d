package tinygo_servocontrol

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

const (
	// ErrorCodeServoControlStartNumber is the starting number for servo control-related error codes.
	ErrorCodeServoControlStartNumber uint16 = 5310
)

const (
	ErrorCodeServoControlNilPWMPin tinygoerrors.ErrorCode = tinygoerrors.ErrorCode(iota + ErrorCodeServoControlStartNumber)
	ErrorCodeServoControlNilDirectionPin1
	ErrorCodeServoControlNilDirectionPin2
	ErrorCodeServoControlZeroFrequency
	ErrorCodeServoControlFailedToConfigurePWM
	ErrorCodeServoControlFailedToGetPWMChannel
)
