package mode

import "math"

// RepeatCount is the numeric prefix typed before a Normal-mode command.
// It is either unset or a non-negative number.
type RepeatCount struct {
	value int
	set   bool
}

// Push appends a decimal digit. The value saturates at math.MaxInt
// instead of overflowing.
func (c *RepeatCount) Push(digit int) {
	v := 0
	if c.set {
		v = c.value
	}
	c.set = true
	if v > (math.MaxInt-digit)/10 {
		c.value = math.MaxInt
		return
	}
	c.value = v*10 + digit
}

// Get returns the count and whether one was typed.
func (c RepeatCount) Get() (int, bool) {
	return c.value, c.set
}

// Times returns the count, or 1 if none was typed.
func (c RepeatCount) Times() int {
	if !c.set {
		return 1
	}
	return c.value
}

// IsSet reports whether a count was typed.
func (c RepeatCount) IsSet() bool {
	return c.set
}

// Clear unsets the count.
func (c *RepeatCount) Clear() {
	*c = RepeatCount{}
}
