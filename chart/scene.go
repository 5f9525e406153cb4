package chart

import (
	"math"
	"time"

	"gioui.org/f32"
	"git.sr.ht/~whereswaldon/energy-viewer/backend"
	"git.sr.ht/~whereswaldon/energy-viewer/scale"
)

// Line is the drawn path of one state within the active consumption type.
type Line struct {
	Key   string
	Style Style
	// target is the geometry the line settles on; from is where the current
	// transition started.
	target, from []f32.Point
	start        time.Time
	duration     time.Duration
	generation   uint64
}

// Target returns the settled geometry of the line.
func (l *Line) Target() []f32.Point {
	return l.target
}

// Generation returns the scene generation that last set the line's geometry.
func (l *Line) Generation() uint64 {
	return l.generation
}

func (l *Line) progress(now time.Time) float64 {
	if l.duration <= 0 || len(l.from) == 0 {
		return 1
	}
	return scale.CubicInOut(float64(now.Sub(l.start)) / float64(l.duration))
}

// Settled reports whether the line has finished its transition at now.
func (l *Line) Settled(now time.Time) bool {
	return l.progress(now) >= 1
}

// Points returns the line's geometry as displayed at now. Points with a NaN
// coordinate mark gaps in the line.
func (l *Line) Points(now time.Time) []f32.Point {
	t := float32(l.progress(now))
	if t >= 1 {
		return l.target
	}
	out := make([]f32.Point, len(l.target))
	for i, to := range l.target {
		from := l.from[min(i, len(l.from)-1)]
		out[i] = f32.Pt(scale.Lerp(from.X, to.X, t), scale.Lerp(from.Y, to.Y, t))
	}
	return out
}

// Segments splits pts into runs of drawable points, dropping any point
// with a NaN coordinate.
func Segments(pts []f32.Point) [][]f32.Point {
	var segs [][]f32.Point
	begin := -1
	for i, p := range pts {
		if isNaN(p) {
			if begin >= 0 {
				segs = append(segs, pts[begin:i])
				begin = -1
			}
			continue
		}
		if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		segs = append(segs, pts[begin:])
	}
	return segs
}

func isNaN(p f32.Point) bool {
	return math.IsNaN(float64(p.X)) || math.IsNaN(float64(p.Y))
}

// Scene holds the lines of the active consumption type, the coordinate
// mappings used to place them and the axes describing those mappings.
type Scene struct {
	Frame Frame
	// X is fixed for the lifetime of the scene; Y follows the active
	// consumption type.
	X            scale.Time
	Y            scale.Linear
	XAxis, YAxis Axis
	Tooltip      Tooltip

	PathDuration, AxisDuration time.Duration

	lines      []*Line
	generation uint64
}

func NewScene(f Frame) *Scene {
	return &Scene{
		Frame:        f,
		X:            scale.NewTime(DomainStart, DomainEnd, 0, f.Width),
		Y:            scale.NewLinear(0, 1, f.Height, 0),
		XAxis:        Axis{Ticks: XTicks, TickSize: TickSize, TickPadding: TickPadding},
		YAxis:        Axis{Ticks: InitialYTicks, TickSize: TickSize, TickPadding: TickPadding, to: 1},
		PathDuration: PathDuration,
		AxisDuration: AxisDuration,
	}
}

// Lines returns the lines currently drawn, in group order.
func (s *Scene) Lines() []*Line {
	return s.lines
}

// Line returns the drawn line for the given state key.
func (s *Scene) Line(key string) (*Line, bool) {
	for _, l := range s.lines {
		if l.Key == key {
			return l, true
		}
	}
	return nil, false
}

// Generation counts geometry changes. Each Render or Update starts a new
// generation, and transitions of older generations are abandoned.
func (s *Scene) Generation() uint64 {
	return s.generation
}

// SetDomainMax sets the vertical domain to [0, max] without animating.
func (s *Scene) SetDomainMax(m float64) {
	s.Y.Domain = [2]float64{0, m}
	s.YAxis.jump(m)
}

func (s *Scene) geometry(sg *backend.StateGroup) []f32.Point {
	pts := make([]f32.Point, len(sg.Records))
	for i, r := range sg.Records {
		pts[i] = f32.Pt(s.X.Map(r.Year), s.Y.Map(r.Value))
	}
	return pts
}

// baseline flattens pts onto the bottom of the plot.
func (s *Scene) baseline(pts []f32.Point) []f32.Point {
	out := make([]f32.Point, len(pts))
	for i, p := range pts {
		out[i] = f32.Pt(p.X, s.Frame.Height)
	}
	return out
}

// Render draws group from scratch without animation, replacing any lines
// already in the scene. A nil group clears the scene and keeps the current
// vertical domain.
func (s *Scene) Render(group *backend.TypeGroup, sel Selection) {
	s.generation++
	s.lines = nil
	if group == nil {
		return
	}
	s.SetDomainMax(group.MaxValue)
	for i := range group.States {
		sg := &group.States[i]
		s.lines = append(s.lines, &Line{
			Key:        sg.State,
			Style:      StyleFor(sg.State, sel),
			target:     s.geometry(sg),
			generation: s.generation,
		})
	}
}

// Update reconciles the scene with group. Lines of states present in both
// the old and new group move from their displayed geometry to the new one,
// lines of new states grow from the baseline, and lines of states missing
// from group are removed immediately. The vertical axis eases to the new
// domain.
func (s *Scene) Update(group *backend.TypeGroup, sel Selection, now time.Time) {
	if group == nil {
		return
	}
	s.generation++
	s.YAxis.animate(group.MaxValue, now, s.AxisDuration, s.generation)
	s.YAxis.Ticks = UpdateYTicks
	s.YAxis.TickSize = 0
	s.YAxis.TickPadding = UpdateTickPadding
	s.Y.Domain = [2]float64{0, group.MaxValue}

	existing := make(map[string]*Line, len(s.lines))
	for _, l := range s.lines {
		existing[l.Key] = l
	}
	next := make([]*Line, 0, len(group.States))
	for i := range group.States {
		sg := &group.States[i]
		target := s.geometry(sg)
		l, ok := existing[sg.State]
		var from []f32.Point
		if ok {
			from = l.Points(now)
		} else {
			l = &Line{Key: sg.State}
			from = s.baseline(target)
		}
		l.from = from
		l.target = target
		l.start = now
		l.duration = s.PathDuration
		l.generation = s.generation
		l.Style = StyleFor(l.Key, sel)
		next = append(next, l)
	}
	s.lines = next
	if s.Tooltip.Visible {
		if _, ok := s.Line(s.Tooltip.Text); !ok {
			s.Tooltip.Hide()
		}
	}
}

// Highlight restyles every drawn line for sel without touching geometry.
func (s *Scene) Highlight(sel Selection) {
	for _, l := range s.lines {
		l.Style = StyleFor(l.Key, sel)
	}
}

// Animating reports whether any transition of the current generation is
// still running at now.
func (s *Scene) Animating(now time.Time) bool {
	if s.YAxis.animating(now) {
		return true
	}
	for _, l := range s.lines {
		if l.generation == s.generation && !l.Settled(now) {
			return true
		}
	}
	return false
}
