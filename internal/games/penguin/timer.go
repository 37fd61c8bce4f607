package penguin

import "time"

// Interval is a repeating timer driven by simulation time.
// Stopping it discards every pending firing, not only the next one.
type Interval struct {
	period  float64
	elapsed float64
	stopped bool
}

// NewInterval creates an armed interval. period must be positive.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period.Seconds()}
}

// Advance adds dt seconds and returns how many times the interval fired.
func (iv *Interval) Advance(dt float64) int {
	if iv.stopped || dt <= 0 {
		return 0
	}
	iv.elapsed += dt
	fired := 0
	for iv.elapsed >= iv.period {
		iv.elapsed -= iv.period
		fired++
	}
	return fired
}

// Stop cancels the interval.
func (iv *Interval) Stop() {
	iv.stopped = true
	iv.elapsed = 0
}

// Stopped reports whether Stop was called.
func (iv *Interval) Stopped() bool {
	return iv.stopped
}
