package tinygo_servocontrol

type (
	// PWMPin is the interface of a PWM-capable output pin
	PWMPin interface {
		WriteDutyCycleToPin(value uint8)
		Pin() uint8
	}

	// DigitalPin is the interface of a digital output pin
	DigitalPin interface {
		WriteHighToPin()
		WriteLowToPin()
		Pin() uint8
	}

	// Logger is the subset of the tinygo-logger Logger used by the handler
	Logger interface {
		AddMessageWithUint32(prefix []byte, value uint32, _, _, _ bool)
		Debug()
	}

	// Handler is the interface to handle servo angle operations
	Handler interface {
		SetAngle(angle int16)
		GetAngle() int16
		GetDutyCycle() uint8
		GetDirection() Direction
	}
)
