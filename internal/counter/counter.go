// Package counter holds the single value the tally screen owns.
package counter

// Counter is a non-negative tally. The zero value is ready to use.
type Counter struct {
	value int
}

// New returns a counter at zero.
func New() Counter {
	return Counter{}
}

// Increment adds one. No upper bound.
func (c *Counter) Increment() {
	c.value++
}

// Reset returns the counter to zero. Harmless at any value.
func (c *Counter) Reset() {
	c.value = 0
}

// Value returns the current count.
func (c Counter) Value() int {
	return c.value
}

// Resettable reports whether a reset would change anything. The screen
// shows its reset control only while this is true.
func (c Counter) Resettable() bool {
	return c.value > 0
}
