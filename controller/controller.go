// Package controller implements the NES standard controller's serial
// shift-register latch protocol (§4.7).
package controller

import "github.com/Hashim-K/NES-Emulator/io"

// Button indexes match the order the shift register reports them in: A, B,
// Select, Start, Up, Down, Left, Right.
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	buttonCount
)

// Controller is an io.Port8 backed by an 8-bit parallel-load shift register:
// a write with bit 0 set holds the register loaded from the live button
// state on every subsequent Input() call (strobe high); a write with bit 0
// clear keeps the state last loaded while strobe was high, and each following Input()
// call shifts the next button out and shifts a 1 in behind it, so the 9th
// and later reads without an intervening strobe all return 1 — matching
// real hardware's open-bus behavior for a shift register read past empty.
type Controller struct {
	buttons [buttonCount]bool
	strobe  bool
	shift   uint8
}

var _ io.Port8 = (*Controller)(nil)

// New creates a Controller with no buttons held.
func New() *Controller {
	return &Controller{}
}

// SetButton updates the live (host-side) state of one button. The host
// calls this in response to its own input handling; it does not affect the
// shift register until the next strobe.
func (c *Controller) SetButton(button int, pressed bool) {
	c.buttons[button] = pressed
}

// Strobe sets the controller's strobe line. While held high the shift
// register continuously reloads from live button state; on the falling
// edge the last loaded state is kept, ready to be shifted out one bit per
// Input() call.
func (c *Controller) Strobe(high bool) {
	c.strobe = high
	if high {
		c.load()
	}
}

func (c *Controller) load() {
	var v uint8
	for i, pressed := range c.buttons {
		if pressed {
			v |= 1 << uint(i)
		}
	}
	c.shift = v
}

// Input implements io.Port8: it returns the next bit of the latched button
// state in bit 0 (the rest of the byte mirrors open-bus convention and is
// left 0 here since this engine does not model bus capacitance), then
// shifts a 1 in behind it so reads past the 8th return 1 until the next
// strobe.
func (c *Controller) Input() uint8 {
	if c.strobe {
		c.load()
	}
	bit := c.shift & 0x01
	c.shift = (c.shift >> 1) | 0x80
	return bit
}
