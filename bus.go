//go:build tinygo

package main

import (
	"machine"
	"runtime/interrupt"
)

// pinPort presents eight GPIOs as one 8-bit output register. The value is
// kept in a shadow byte so read-modify-write sequences see what was last
// written rather than the pin levels. The input bit is never driven.
type pinPort struct {
	pins   [8]machine.Pin
	input  uint8
	shadow uint8
}

func (p *pinPort) configure() {

	for i, pin := range p.pins {
		if uint8(i) == p.input {
			pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
			continue
		}

		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}

	// Mirror the pull-up in the shadow, as the port register does
	p.shadow = 1 << p.input
}

func (p *pinPort) Get() uint8 {

	return p.shadow
}

func (p *pinPort) Set(value uint8) {

	for i, pin := range p.pins {
		if uint8(i) == p.input {
			continue
		}

		// Only touch lines that change
		mask := uint8(1) << i
		if (value^p.shadow)&mask != 0 {
			pin.Set(value&mask != 0)
		}
	}

	p.shadow = value
}

// irqGuard is a critical section: interrupts stay off between Lock and
// Unlock. Sections never nest, so one saved state is enough.
type irqGuard struct {
	state interrupt.State
}

func (g *irqGuard) Lock() {

	g.state = interrupt.Disable()
}

func (g *irqGuard) Unlock() {

	interrupt.Restore(g.state)
}
