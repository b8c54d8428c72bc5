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
package segled

// Bus layout. The seven-segment lines and the LED bank share the same
// eight lines; the select line decides which of the two is listening.
// Bit 2 is the wire-sense input and is only ever preserved, never driven.
//
//	bit 7  a | LED5 (green)
//	bit 6  b | LED4 (green)
//	bit 5  c | LED3 (yellow)
//	bit 4  d | LED2 (yellow)
//	bit 3  e | LED1 (red)
//	bit 2  wire sense (input, pull-up)
//	bit 1  f
//	bit 0  g
const (
	BUS_SEG_G     uint8 = 1 << 0
	BUS_SEG_F     uint8 = 1 << 1
	BUS_WIRE      uint8 = 1 << 2
	BUS_SEG_B     uint8 = 1 << 6
	BUS_LOW_MASK  uint8 = 0b00000111
	BUS_LED_SHIFT       = 3

	LED_MASK_MAX  uint8 = 0b11111
	LED_LEVEL_MAX uint8 = 6
)

// SegmentTable holds the active-low segment patterns for the digits 0-9.
// A cleared bit lights its segment.
var SegmentTable = [10]uint8{
	0b00000001, // 0
	0b10011011, // 1
	0b00100010, // 2
	0b00001010, // 3
	0b10011000, // 4
	0b01001000, // 5
	0b01000000, // 6
	0b00011011, // 7
	0b00000000, // 8
	0b00001000, // 9
}

// Port is an 8-bit output register.
type Port interface {
	Get() uint8
	Set(value uint8)
}

// Line is a single output line, eg. a machine.Pin.
type Line interface {
	Set(high bool)
}

// Buzzer is a level-driven sounder.
type Buzzer interface {
	On() error
	Off() error
}

// Mode records which display the shared bus was last handed to.
type Mode uint8

const (
	ModeLED Mode = iota
	ModeSegment
)

func (m Mode) String() string {

	if m == ModeSegment {
		return "segment"
	}

	return "led"
}

// DigitPattern returns the segment pattern for n, or false if n is not
// a decimal digit.
func DigitPattern(n uint8) (uint8, bool) {

	if int(n) >= len(SegmentTable) {
		return 0, false
	}

	return SegmentTable[n], true
}

// LevelToLEDBit converts a level of 1-6 into a one-hot bit at that
// position. Level 0 and anything above 6 are rejected.
func LevelToLEDBit(level uint8) (uint8, bool) {

	if level == 0 || level > LED_LEVEL_MAX {
		return 0, false
	}

	return 1 << level, true
}

type Driver struct {
	// Shared output bus and its mode select line
	bus    Port
	sel    Line
	buzzer Buzzer
	// Last mode placed on the select line
	mode Mode
}

func New(bus Port, sel Line, buzzer Buzzer) *Driver {

	return &Driver{bus: bus, sel: sel, buzzer: buzzer, mode: ModeLED}
}

func (d *Driver) Init() error {

	// Hand the bus to the LED bank with every LED dark,
	// keeping the low lines (and the wire pull-up) as they are
	d.selectMode(ModeLED)
	d.bus.Set(d.bus.Get() & BUS_LOW_MASK)

	return d.SetBuzzer(false)
}

// ShowDigit puts the pattern for n on the bus in segment mode. The pattern
// is ORed onto whatever the bus already holds. Out-of-range digits are
// ignored.
func (d *Driver) ShowDigit(n uint8) {

	pattern, ok := DigitPattern(n)
	if !ok {
		return
	}

	d.selectMode(ModeSegment)
	d.bus.Set(d.bus.Get() | pattern)
}

// ShowLEDMask replaces the LED field of the bus with a 5-bit mask in LED
// mode. Masks wider than five bits are ignored.
func (d *Driver) ShowLEDMask(mask uint8) {

	if mask > LED_MASK_MAX {
		return
	}

	d.selectMode(ModeLED)
	d.bus.Set(mask<<BUS_LED_SHIFT | d.bus.Get()&BUS_LOW_MASK)
}

func (d *Driver) ShowSmiley() {

	// Clear everything except the wire pull-up, then
	// draw the face directly rather than via the table
	d.selectMode(ModeSegment)
	d.bus.Set(d.bus.Get() & BUS_WIRE)
	d.bus.Set(d.bus.Get() | BUS_SEG_B | BUS_SEG_F | BUS_SEG_G)
}

func (d *Driver) SetBuzzer(isOn bool) error {

	if isOn {
		return d.buzzer.On()
	}

	return d.buzzer.Off()
}

func (d *Driver) Mode() Mode {

	return d.mode
}

func (d *Driver) selectMode(mode Mode) {

	d.sel.Set(mode == ModeSegment)
	d.mode = mode
}
