package chart

import (
	"math"
	"time"

	"gioui.org/f32"
)

// Tooltip is the floating label naming the hovered line.
type Tooltip struct {
	Visible bool
	Text    string
	// Pos is the label anchor in plot coordinates.
	Pos f32.Point
}

// Show places the tooltip above pointer with text.
func (t *Tooltip) Show(text string, pointer f32.Point) {
	t.Visible = true
	t.Text = text
	t.Pos = pointer.Add(f32.Pt(0, TooltipOffset))
}

func (t *Tooltip) Hide() {
	t.Visible = false
}

// HitTest returns the key of the line nearest to p (in plot coordinates)
// as displayed at now, if any line lies within HitRadius.
func (s *Scene) HitTest(p f32.Point, now time.Time) (string, bool) {
	best := float32(HitRadius)
	key, found := "", false
	for _, l := range s.lines {
		for _, seg := range Segments(l.Points(now)) {
			if d := polylineDistance(p, seg); d <= best {
				best = d
				key, found = l.Key, true
			}
		}
	}
	return key, found
}

// Hover updates the tooltip for a pointer at p. The tooltip appears where
// the pointer entered a line and stays there until the pointer leaves it.
func (s *Scene) Hover(p f32.Point, now time.Time) {
	key, ok := s.HitTest(p, now)
	switch {
	case !ok:
		s.Tooltip.Hide()
	case !s.Tooltip.Visible || s.Tooltip.Text != key:
		s.Tooltip.Show(key, p)
	}
}

// Leave hides the tooltip once the pointer leaves the plot.
func (s *Scene) Leave() {
	s.Tooltip.Hide()
}

func polylineDistance(p f32.Point, pts []f32.Point) float32 {
	if len(pts) == 1 {
		return length(p.Sub(pts[0]))
	}
	d := float32(math.Inf(1))
	for i := 1; i < len(pts); i++ {
		d = min(d, segmentDistance(p, pts[i-1], pts[i]))
	}
	return d
}

func segmentDistance(p, a, b f32.Point) float32 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return length(p.Sub(a))
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = max(0, min(1, t))
	return length(p.Sub(a.Add(ab.Mul(t))))
}

func length(v f32.Point) float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
