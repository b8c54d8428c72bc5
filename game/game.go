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

// Package game holds the hot-wire state shared between the input
// interrupts and the display refresh tick.
//
// Every method may be called from interrupt context. Each one takes the
// guard for its whole read-modify-write, so the guard must be a primitive
// that suppresses the other handlers (interrupt disable/restore on the
// board, a mutex on the host) and must not be held when calling in.
package game

import (
	"sync"

	"hotwire/segled"
)

const (
	// LED patterns. The start button alternates between the two START
	// patterns on each press; wire contact shows FAIL. IDLE is power-on.
	LED_START_ODD  uint8 = 0b01010
	LED_START_EVEN uint8 = 0b10101
	LED_FAIL       uint8 = 0b11001
	LED_IDLE       uint8 = 0b00011

	// MAX_TRIES is the number of wire contacts a round was meant to allow.
	// Nothing counts contacts yet.
	MAX_TRIES = 3
)

// Display is the part of the output driver the refresh tick drives.
type Display interface {
	ShowDigit(n uint8)
	ShowLEDMask(mask uint8)
}

type Game struct {
	display Display
	guard   sync.Locker

	// LED bank contents: a raw 5-bit mask, or a one-hot level from SetLevel
	ledLevel uint8
	// Digit for the seven-segment display
	digit uint8
	// True when the next render targets the LED bank
	isLEDSelected bool
}

// New returns the game state in its power-on configuration. It must be
// created once, before any interrupt that calls into it is enabled.
func New(display Display, guard sync.Locker) *Game {

	return &Game{display: display, guard: guard, ledLevel: LED_IDLE}
}

// OnStart handles a falling edge on the start/reset button.
func (g *Game) OnStart() {

	g.guard.Lock()
	if g.toggle() {
		g.ledLevel = LED_START_ODD
	} else {
		g.ledLevel = LED_START_EVEN
	}
	g.guard.Unlock()
}

// OnWire handles a falling edge on the wire-sense line.
func (g *Game) OnWire() {

	g.guard.Lock()
	g.ledLevel = LED_FAIL
	g.guard.Unlock()
}

// Tick flips the multiplexer and refreshes whichever display is now
// selected. Only one display is driven per tick.
func (g *Game) Tick() {

	g.guard.Lock()
	if g.toggle() {
		g.display.ShowLEDMask(g.ledLevel)
	} else {
		g.display.ShowDigit(g.digit)
	}
	g.guard.Unlock()
}

// SetLevel lights the single LED for a level of 1-6. Other values leave
// the LED bank as it was.
func (g *Game) SetLevel(level uint8) {

	bit, ok := segled.LevelToLEDBit(level)
	if !ok {
		return
	}

	g.guard.Lock()
	g.ledLevel = bit
	g.guard.Unlock()
}

func (g *Game) SetDigit(n uint8) {

	if _, ok := segled.DigitPattern(n); !ok {
		return
	}

	g.guard.Lock()
	g.digit = n
	g.guard.Unlock()
}

func (g *Game) LEDLevel() uint8 {

	g.guard.Lock()
	defer g.guard.Unlock()
	return g.ledLevel
}

func (g *Game) Digit() uint8 {

	g.guard.Lock()
	defer g.guard.Unlock()
	return g.digit
}

func (g *Game) Selection() bool {

	g.guard.Lock()
	defer g.guard.Unlock()
	return g.isLEDSelected
}

// toggle flips the display selection and returns the new value.
// Callers hold the guard.
func (g *Game) toggle() bool {

	g.isLEDSelected = !g.isLEDSelected
	return g.isLEDSelected
}
