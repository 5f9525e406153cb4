// Package scale maps data values onto pixel coordinates and generates
// human-friendly axis ticks for those mappings.
package scale

import (
	"math"
	"time"

	"golang.org/x/exp/constraints"
)

// Linear maps a continuous numeric domain onto a pixel range. The range may
// be inverted (Range[0] > Range[1]) to make larger values render higher.
type Linear struct {
	Domain [2]float64
	Range  [2]float32
}

// NewLinear returns a linear scale with the given domain and range.
func NewLinear(d0, d1 float64, r0, r1 float32) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float32{r0, r1}}
}

// Map converts v into range coordinates. A degenerate domain maps every
// value onto the middle of the range.
func (l Linear) Map(v float64) float32 {
	span := l.Domain[1] - l.Domain[0]
	t := 0.5
	if span != 0 {
		t = (v - l.Domain[0]) / span
	} else if math.IsNaN(v) {
		t = v
	}
	return Lerp(l.Range[0], l.Range[1], float32(t))
}

// Ticks returns roughly count evenly spaced round values inside the domain.
func (l Linear) Ticks(count int) []float64 {
	lo, hi := l.Domain[0], l.Domain[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	return Ticks(lo, hi, count)
}

// TickFormat returns a formatter suited to the ticks produced by Ticks(count).
func (l Linear) TickFormat(count int) func(float64) string {
	lo, hi := l.Domain[0], l.Domain[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	return NumberFormat(TickStep(lo, hi, count))
}

// Time maps an interval of instants onto a pixel range.
type Time struct {
	Domain [2]time.Time
	Range  [2]float32
}

// NewTime returns a time scale with the given domain and range.
func NewTime(d0, d1 time.Time, r0, r1 float32) Time {
	return Time{Domain: [2]time.Time{d0, d1}, Range: [2]float32{r0, r1}}
}

func (s Time) linear() Linear {
	return Linear{
		Domain: [2]float64{unixSeconds(s.Domain[0]), unixSeconds(s.Domain[1])},
		Range:  s.Range,
	}
}

// Map converts t into range coordinates.
func (s Time) Map(t time.Time) float32 {
	return s.linear().Map(unixSeconds(t))
}

// YearTicks returns January 1st of every year inside the domain that is a
// multiple of a nice year step chosen for roughly count ticks.
func (s Time) YearTicks(count int) []time.Time {
	start, stop := s.Domain[0], s.Domain[1]
	if stop.Before(start) {
		start, stop = stop, start
	}
	step := int(TickStep(float64(start.Year()), float64(stop.Year()), count))
	if step < 1 {
		step = 1
	}
	first := start.Year()
	if !start.Equal(yearStart(first, start.Location())) {
		first++
	}
	var out []time.Time
	for y := first; y <= stop.Year(); y++ {
		if y%step != 0 {
			continue
		}
		out = append(out, yearStart(y, start.Location()))
	}
	return out
}

func yearStart(year int, loc *time.Location) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Lerp interpolates between a and b by t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

// CubicInOut is the symmetric cubic easing curve used for transitions.
func CubicInOut(t float64) float64 {
	t = Clamp(t, 0, 1) * 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
