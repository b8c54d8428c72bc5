//go:build tinygo

/*
 * Hot Wire for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"device/arm"
	"machine"
	"time"

	"hotwire/game"
	"hotwire/segled"

	"tinygo.org/x/drivers/buzzer"
)

func main() {

	// Set up the hardware or fail
	if !setup() {
		failLoop()
	}

	println("hot wire ready")

	// Everything from here on happens in interrupt handlers
	select {}
}

/*
 *  Initialisation Functions
 */
func setup() bool {

	// Shared display bus and the wire-sense input on it
	bus.configure()

	// Display select line starts on the LED bank
	PIN_SELECT.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_SELECT.Low()

	// Set up the buzzer
	PIN_BUZZER.Configure(machine.PinConfig{Mode: machine.PinOutput})
	sounder = buzzer.New(PIN_BUZZER)

	// Set up the Start button
	PIN_START.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	display = segled.New(&bus, PIN_SELECT, &sounder)
	if err := display.Init(); err != nil {
		println("display init failed:", err.Error())
		return false
	}

	// Shared state must exist before any handler can fire
	hotWire = game.New(display, &irqGuard{})

	// Both inputs pull low on contact
	if err := PIN_START.SetInterrupt(machine.PinFalling, onStart); err != nil {
		println("start button interrupt failed:", err.Error())
		return false
	}

	if err := PIN_WIRE.SetInterrupt(machine.PinFalling, onWire); err != nil {
		println("wire interrupt failed:", err.Error())
		return false
	}

	return initTimer()
}

func initTimer() bool {

	// Display refresh runs off SysTick
	if err := arm.SetupSystemTimer(machine.CPUFrequency() / TICK_HZ); err != nil {
		println("display timer failed:", err.Error())
		return false
	}

	return true
}

/*
 *  Interrupt Handlers
 */
func onStart(machine.Pin) {

	hotWire.OnStart()
}

func onWire(machine.Pin) {

	hotWire.OnWire()
}

//go:export SysTick_Handler
func onTick() {

	// Timer can be live before setup() has finished
	if hotWire != nil {
		hotWire.Tick()
	}
}

/*
 *  Misc Functions
 */
func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_PERIOD_MS))
		led.High()
		time.Sleep(time.Millisecond * time.Duration(FAIL_BLINK_PERIOD_MS))
	}
}
