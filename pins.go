//go:build tinygo && (rp2040 || rp2350)

package tinygo_servocontrol

import (
	"machine"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
	tinygologger "github.com/ralvarezdev/tinygo-logger"
	tinygopwm "github.com/ralvarezdev/tinygo-pwm"
)

type (
	// PWMOutput is a PWM pin backed by a machine PWM peripheral
	PWMOutput struct {
		pwm     tinygopwm.PWM
		pin     machine.Pin
		channel uint8
		period  uint32
	}

	// DigitalOutput is a digital pin backed by a machine pin
	DigitalOutput struct {
		pin machine.Pin
	}
)

// tinygo-logger loggers can be passed to NewDefaultHandler
var _ Logger = tinygologger.Logger(nil)

// NewPWMOutput creates a new instance of PWMOutput
//
// Parameters:
//
// pwm: The PWM peripheral that owns the pin
// pin: The pin connected to the servo PWM input
// frequency: Frequency for the PWM signal
//
// Returns:
//
// An instance of PWMOutput and an error if any occurred during initialization
func NewPWMOutput(
	pwm tinygopwm.PWM,
	pin machine.Pin,
	frequency uint16,
) (*PWMOutput, tinygoerrors.ErrorCode) {
	// Check if the frequency is zero
	if frequency == 0 {
		return nil, ErrorCodeServoControlZeroFrequency
	}

	// Configure the PWM
	period := 1e9 / float64(frequency)
	if err := pwm.Configure(
		machine.PWMConfig{
			Period: uint64(period),
		},
	); err != nil {
		return nil, ErrorCodeServoControlFailedToConfigurePWM
	}

	// Get the channel from the pin
	channel, err := pwm.Channel(pin)
	if err != nil {
		return nil, ErrorCodeServoControlFailedToGetPWMChannel
	}

	return &PWMOutput{
		pwm:     pwm,
		pin:     pin,
		channel: channel,
		period:  uint32(period),
	}, tinygoerrors.ErrorCodeNil
}

// WriteDutyCycleToPin sets the pulse width as the value fraction of MaxDutyCycle over the period.
func (p *PWMOutput) WriteDutyCycleToPin(value uint8) {
	tinygopwm.SetDuty(p.pwm, p.channel, DutyCycleToPulse(p.period, value), p.period)
}

// Pin returns the pin identifier.
func (p *PWMOutput) Pin() uint8 {
	return uint8(p.pin)
}

// NewDigitalOutput configures the pin as an output and creates a new instance of DigitalOutput
func NewDigitalOutput(pin machine.Pin) *DigitalOutput {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &DigitalOutput{pin: pin}
}

// WriteHighToPin drives the pin high.
func (d *DigitalOutput) WriteHighToPin() {
	d.pin.High()
}

// WriteLowToPin drives the pin low.
func (d *DigitalOutput) WriteLowToPin() {
	d.pin.Low()
}

// Pin returns the pin identifier.
func (d *DigitalOutput) Pin() uint8 {
	return uint8(d.pin)
}
