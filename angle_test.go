package tinygo_servocontrol

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestClampAngle(t *testing.T) {
	test.That(t, ClampAngle(0), test.ShouldEqual, int16(0))
	test.That(t, ClampAngle(179), test.ShouldEqual, int16(179))
	test.That(t, ClampAngle(-179), test.ShouldEqual, int16(-179))
	test.That(t, ClampAngle(200), test.ShouldEqual, MaxAngle)
	test.That(t, ClampAngle(-200), test.ShouldEqual, MinAngle)
	test.That(t, ClampAngle(math.MaxInt16), test.ShouldEqual, MaxAngle)
	test.That(t, ClampAngle(math.MinInt16), test.ShouldEqual, MinAngle)
}

func TestAngleToDutyCycle(t *testing.T) {
	for _, tc := range []struct {
		angle int16
		duty  uint8
	}{
		{0, 0},
		{1, 1},
		{45, 64},
		{90, 128},
		{-90, 128},
		{135, 191},
		{179, 254},
		{180, 255},
		{-180, 255},
		{200, 255},
		{-200, 255},
		{math.MinInt16, 255},
	} {
		test.That(t, AngleToDutyCycle(tc.angle), test.ShouldEqual, tc.duty)
	}
}

func TestAngleToDutyCycleMonotonic(t *testing.T) {
	previous := AngleToDutyCycle(0)
	for angle := int16(1); angle <= 250; angle++ {
		forward := AngleToDutyCycle(angle)
		reverse := AngleToDutyCycle(-angle)
		test.That(t, forward, test.ShouldEqual, reverse)
		test.That(t, forward, test.ShouldBeGreaterThanOrEqualTo, previous)
		previous = forward
	}
	test.That(t, previous, test.ShouldEqual, MaxDutyCycle)
}

func TestAngleToDirection(t *testing.T) {
	test.That(t, AngleToDirection(0), test.ShouldEqual, DirectionForward)
	test.That(t, AngleToDirection(1), test.ShouldEqual, DirectionForward)
	test.That(t, AngleToDirection(-1), test.ShouldEqual, DirectionReverse)
	test.That(t, AngleToDirection(math.MaxInt16), test.ShouldEqual, DirectionForward)
	test.That(t, AngleToDirection(math.MinInt16), test.ShouldEqual, DirectionReverse)
}

func TestDutyCycleToPulse(t *testing.T) {
	const period uint32 = 1000000

	test.That(t, DutyCycleToPulse(period, 0), test.ShouldEqual, uint32(0))
	test.That(t, DutyCycleToPulse(period, MaxDutyCycle), test.ShouldEqual, period)
	test.That(t, DutyCycleToPulse(period, 128), test.ShouldEqual, uint32(501960))
	test.That(t, DutyCycleToPulse(255, 51), test.ShouldEqual, uint32(51))

	// No overflow for the largest period
	test.That(t, DutyCycleToPulse(math.MaxUint32, MaxDutyCycle), test.ShouldEqual, uint32(math.MaxUint32))
}
