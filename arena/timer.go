package arena

import "time"

// Timer is a scheduled callback driven by a Clock.
// Timers count simulated time only, so a timer never fires between frames.
type Timer struct {
	delay   time.Duration
	elapsed time.Duration
	loop    bool
	paused  bool
	removed bool
	fired   int
	fn      func()
}

// Pause suspends the timer without resetting its progress
func (t *Timer) Pause() {
	if t != nil {
		t.paused = true
	}
}

// Resume continues a paused timer from where it stopped
func (t *Timer) Resume() {
	if t != nil {
		t.paused = false
	}
}

// Remove cancels the timer permanently
func (t *Timer) Remove() {
	if t != nil {
		t.removed = true
	}
}

// Paused reports whether the timer is suspended
func (t *Timer) Paused() bool { return t != nil && t.paused }

// Removed reports whether the timer was cancelled or, for a one-shot, has fired
func (t *Timer) Removed() bool { return t == nil || t.removed }

// Delay returns the configured delay or period
func (t *Timer) Delay() time.Duration { return t.delay }

// Remaining returns the time left until the next firing
func (t *Timer) Remaining() time.Duration {
	if t.Removed() {
		return 0
	}
	return t.delay - t.elapsed
}

// FireCount returns how many times the timer has fired
func (t *Timer) FireCount() int { return t.fired }

// Clock owns the timers of one session and advances them by simulated time
type Clock struct {
	now    time.Duration
	timers []*Timer
}

// NewClock creates a clock at time zero
func NewClock() *Clock {
	return &Clock{timers: make([]*Timer, 0, 4)}
}

// Now returns the simulated time since the clock was created
func (c *Clock) Now() time.Duration { return c.now }

// After schedules fn once after delay
func (c *Clock) After(delay time.Duration, fn func()) *Timer {
	return c.add(delay, false, fn)
}

// Every schedules fn every period
func (c *Clock) Every(period time.Duration, fn func()) *Timer {
	return c.add(period, true, fn)
}

func (c *Clock) add(delay time.Duration, loop bool, fn func()) *Timer {
	t := &Timer{delay: delay, loop: loop, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Len returns the number of live timers
func (c *Clock) Len() int {
	n := 0
	for _, t := range c.timers {
		if !t.removed {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every due timer.
// Timers scheduled from a callback start counting on the next Advance.
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.now += dt

	due := c.timers[:len(c.timers):len(c.timers)]
	for _, t := range due {
		if t.removed || t.paused {
			continue
		}
		t.elapsed += dt
		for !t.removed && !t.paused && t.elapsed >= t.delay {
			if t.loop && t.delay > 0 {
				t.elapsed -= t.delay
			} else {
				t.elapsed = 0
				if !t.loop {
					t.removed = true
				}
			}
			t.fired++
			if t.fn != nil {
				t.fn()
			}
			if t.delay <= 0 {
				break
			}
		}
	}

	kept := c.timers[:0]
	for _, t := range c.timers {
		if !t.removed {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept
}
