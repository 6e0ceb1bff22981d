package tinygo_servocontrol

type (
	// FakePWMPin is a PWM pin that records every duty cycle written to it, for testing
	FakePWMPin struct {
		pin    uint8
		writes []uint8
	}

	// FakeDigitalPin is a digital pin that records every level written to it, for testing
	FakeDigitalPin struct {
		pin    uint8
		writes []bool
	}
)

// NewFakePWMPin creates a new instance of FakePWMPin
func NewFakePWMPin(pin uint8) *FakePWMPin {
	return &FakePWMPin{pin: pin}
}

// WriteDutyCycleToPin records the duty cycle.
func (p *FakePWMPin) WriteDutyCycleToPin(value uint8) {
	p.writes = append(p.writes, value)
}

// Pin returns the pin identifier.
func (p *FakePWMPin) Pin() uint8 {
	return p.pin
}

// Writes returns the recorded duty cycles, oldest first.
func (p *FakePWMPin) Writes() []uint8 {
	return p.writes
}

// DutyCycle returns the last recorded duty cycle and whether any was written.
func (p *FakePWMPin) DutyCycle() (uint8, bool) {
	if len(p.writes) == 0 {
		return 0, false
	}
	return p.writes[len(p.writes)-1], true
}

// Reset clears the recorded writes.
func (p *FakePWMPin) Reset() {
	p.writes = nil
}

// NewFakeDigitalPin creates a new instance of FakeDigitalPin
func NewFakeDigitalPin(pin uint8) *FakeDigitalPin {
	return &FakeDigitalPin{pin: pin}
}

// WriteHighToPin records a high level.
func (p *FakeDigitalPin) WriteHighToPin() {
	p.writes = append(p.writes, true)
}

// WriteLowToPin records a low level.
func (p *FakeDigitalPin) WriteLowToPin() {
	p.writes = append(p.writes, false)
}

// Pin returns the pin identifier.
func (p *FakeDigitalPin) Pin() uint8 {
	return p.pin
}

// Writes returns the recorded levels, oldest first. True is high.
func (p *FakeDigitalPin) Writes() []bool {
	return p.writes
}

// State returns the last recorded level and whether any was written.
func (p *FakeDigitalPin) State() (bool, bool) {
	if len(p.writes) == 0 {
		return false, false
	}
	return p.writes[len(p.writes)-1], true
}

// Reset clears the recorded writes.
func (p *FakeDigitalPin) Reset() {
	p.writes = nil
}
