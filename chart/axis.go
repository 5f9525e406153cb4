package chart

import (
	"strconv"
	"time"

	"git.sr.ht/~whereswaldon/energy-viewer/scale"
)

// Tick is one labelled position along an axis.
type Tick struct {
	Value float64
	// Pos is the tick's offset along the axis in plot coordinates.
	Pos   float32
	Label string
}

// Axis describes how one edge of the plot is annotated. For the vertical
// axis it also tracks the displayed domain maximum, which eases towards the
// scale's domain when the active consumption type changes.
type Axis struct {
	Ticks    int
	TickSize float32
	// TickPadding separates tick labels from the tick marks.
	TickPadding float32

	from, to   float64
	start      time.Time
	duration   time.Duration
	generation uint64
}

func (a *Axis) jump(to float64) {
	a.from, a.to = to, to
	a.duration = 0
}

func (a *Axis) animate(to float64, now time.Time, d time.Duration, generation uint64) {
	a.from = a.DomainMax(now)
	a.to = to
	a.start = now
	a.duration = d
	a.generation = generation
}

func (a *Axis) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	return scale.CubicInOut(float64(now.Sub(a.start)) / float64(a.duration))
}

func (a *Axis) animating(now time.Time) bool {
	return a.progress(now) < 1
}

// DomainMax returns the upper bound of the domain displayed at now.
func (a *Axis) DomainMax(now time.Time) float64 {
	t := a.progress(now)
	if t >= 1 {
		return a.to
	}
	return scale.Lerp(a.from, a.to, t)
}

// XTicks returns the year ticks of the horizontal axis.
func (s *Scene) XTicks() []Tick {
	years := s.X.YearTicks(s.XAxis.Ticks)
	ticks := make([]Tick, len(years))
	for i, y := range years {
		ticks[i] = Tick{
			Value: float64(y.Year()),
			Pos:   s.X.Map(y),
			Label: strconv.Itoa(y.Year()),
		}
	}
	return ticks
}

// YTicks returns the ticks of the vertical axis as displayed at now.
func (s *Scene) YTicks(now time.Time) []Tick {
	sc := scale.NewLinear(0, s.YAxis.DomainMax(now), s.Frame.Height, 0)
	values := sc.Ticks(s.YAxis.Ticks)
	format := sc.TickFormat(s.YAxis.Ticks)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{
			Value: v,
			Pos:   sc.Map(v),
			Label: format(v),
		}
	}
	return ticks
}
