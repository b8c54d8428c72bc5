//go:build tinygo

package main

import (
	"machine"

	"hotwire/game"
	"hotwire/segled"

	"tinygo.org/x/drivers/buzzer"
)

/*
 * GLOBALS
 */
// Shared output bus, as a shadow register over the bus pins
var bus = pinPort{pins: [8]machine.Pin{
	PIN_BUS_0, PIN_BUS_1, PIN_WIRE, PIN_BUS_3,
	PIN_BUS_4, PIN_BUS_5, PIN_BUS_6, PIN_BUS_7,
}, input: WIRE_BIT}

// Sounder on its own line
var sounder buzzer.Device

// Display driver and game state, created once in setup()
var display *segled.Driver
var hotWire *game.Game
