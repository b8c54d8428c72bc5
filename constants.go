//go:build tinygo

/*
 * Hot Wire for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
)

/*
 * CONSTANTS
 */
const (
	// Shared display bus, one GPIO per bus bit (see segled for the layout).
	// Bit 2 is the wire-sense input rather than a display line.
	PIN_BUS_0 machine.Pin = machine.GP0
	PIN_BUS_1 machine.Pin = machine.GP1
	PIN_WIRE  machine.Pin = machine.GP2
	PIN_BUS_3 machine.Pin = machine.GP3
	PIN_BUS_4 machine.Pin = machine.GP4
	PIN_BUS_5 machine.Pin = machine.GP5
	PIN_BUS_6 machine.Pin = machine.GP6
	PIN_BUS_7 machine.Pin = machine.GP7

	// Display select: high = seven-segment, low = LED bank
	PIN_SELECT machine.Pin = machine.GP8
	PIN_BUZZER machine.Pin = machine.GP9
	PIN_START  machine.Pin = machine.GP10

	// Bus bit carrying the wire-sense input
	WIRE_BIT uint8 = 2

	// Display refresh rate: each display is lit on every other tick
	TICK_HZ uint32 = 40

	FAIL_BLINK_PERIOD_MS int64 = 100
)
