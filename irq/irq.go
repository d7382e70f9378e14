// Package irq defines the basic interfaces for working with a 6502 family
// interrupt line. A receiver of interrupts (IRQ/NMI) implements this
// interface so other components which generate them can raise state without
// cross coupling component logic.
package irq

// Sender defines the interface for an interrupt source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// Line is a simple level-triggered Sender a host can assert and clear
// directly. It satisfies Sender for use as the IRQ source.
type Line struct {
	held bool
}

// Set asserts the line.
func (l *Line) Set() { l.held = true }

// Clear deasserts the line.
func (l *Line) Clear() { l.held = false }

// Raised implements Sender.
func (l *Line) Raised() bool { return l.held }

// EdgeSender wraps a Sender and reports true exactly once per rising
// transition of the wrapped line, then reports false until the line falls
// and rises again. The NMI line on real hardware is edge-triggered; IRQ is
// level-triggered and should be polled via the wrapped Sender directly
// instead of through this wrapper.
type EdgeSender struct {
	src  Sender
	prev bool
}

// NewEdgeSender wraps src for edge detection.
func NewEdgeSender(src Sender) *EdgeSender {
	return &EdgeSender{src: src}
}

// Sample advances the edge detector by one cycle and reports whether a
// rising edge (previously low, now high) occurred on this sample.
func (e *EdgeSender) Sample() bool {
	cur := e.src.Raised()
	rose := cur && !e.prev
	e.prev = cur
	return rose
}

// Raised reports the current (level) state of the wrapped line, without
// consuming the edge. The cpu package does not call it; its interrupt
// polling and BRK-hijack checks go through Sample.
func (e *EdgeSender) Raised() bool {
	return e.src.Raised()
}
