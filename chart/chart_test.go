package chart

import (
	"math"
	"slices"
	"testing"
	"time"

	"gioui.org/f32"
	"git.sr.ht/~whereswaldon/energy-viewer/backend"
)

func rec(typ, state string, year int, value float64) backend.Record {
	return backend.Record{
		Year:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Value: value,
		Type:  typ,
		State: state,
	}
}

func testDataset() *backend.Dataset {
	return backend.NewDataset([]backend.Record{
		rec("A", "TX", 2000, 200),
		rec("A", "TX", 1990, 100),
		rec("A", "CA", 1990, 50),
		rec("A", "CA", 2000, 150),
		rec("B", "TX", 1990, 4),
		rec("B", "TX", 2000, 8),
		rec("B", "NY", 1995, 6),
	})
}

var epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(testDataset(), NewScene(DefaultFrame()), "A")
}

func lineKeys(s *Scene) []string {
	var keys []string
	for _, l := range s.Lines() {
		keys = append(keys, l.Key)
	}
	return keys
}

func TestDefaultFrame(t *testing.T) {
	f := DefaultFrame()
	if f.Width != 690 || f.Height != 750 {
		t.Errorf("expected a 690x750 plot area, got %vx%v", f.Width, f.Height)
	}
	if got := f.Outer(); got != f32.Pt(800, 950) {
		t.Errorf("expected an 800x950 canvas, got %v", got)
	}
	if got := f.ToPlot(f.ToCanvas(f32.Pt(3, 4))); got != f32.Pt(3, 4) {
		t.Errorf("canvas conversion should round trip, got %v", got)
	}
}

func TestRenderPassesThroughMappedPoints(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	if keys := lineKeys(s); !slices.Equal(keys, []string{"TX", "CA"}) {
		t.Fatalf("expected one line per state, got %v", keys)
	}
	tx, _ := s.Line("TX")
	want := []f32.Point{
		f32.Pt(s.X.Map(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)), s.Y.Map(100)),
		f32.Pt(s.X.Map(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)), s.Y.Map(200)),
	}
	if got := tx.Points(epoch); !slices.Equal(got, want) {
		t.Errorf("expected TX to pass through %v, got %v", want, got)
	}
	if want[0].X >= want[1].X {
		t.Errorf("expected points in ascending year order")
	}
	if want[1].Y != 0 || want[0].Y != 375 {
		t.Errorf("expected the vertical domain to be [0, 200], got ys %v and %v", want[0].Y, want[1].Y)
	}
	for _, l := range s.Lines() {
		if l.Style != NeutralStyle {
			t.Errorf("expected %s to start neutral, got %+v", l.Key, l.Style)
		}
	}
}

func TestHighlightIsStyleOnly(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	before := map[string][]f32.Point{}
	for _, l := range s.Lines() {
		before[l.Key] = slices.Clone(l.Points(epoch))
	}
	c.SelectState("TX")
	for _, l := range s.Lines() {
		if !slices.Equal(before[l.Key], l.Points(epoch)) {
			t.Errorf("highlight changed the geometry of %s", l.Key)
		}
	}
	tx, _ := s.Line("TX")
	ca, _ := s.Line("CA")
	if tx.Style != HighlightStyle {
		t.Errorf("expected TX highlighted, got %+v", tx.Style)
	}
	if ca.Style != DimmedStyle {
		t.Errorf("expected CA dimmed, got %+v", ca.Style)
	}
	if c.Selection().Type != "A" {
		t.Errorf("state selection must not change the type selection")
	}
}

func TestHighlightUnknownState(t *testing.T) {
	c := newTestController(t)
	c.SelectState("NY")
	for _, l := range c.Scene().Lines() {
		if l.Style.Color != NeutralColor || l.Style.Width != 1 {
			t.Errorf("expected %s to keep the neutral stroke, got %+v", l.Key, l.Style)
		}
	}
}

func TestSelectTypeReconciles(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	oldTX := slices.Clone(s.Lines()[0].Points(epoch))
	if !c.SelectType("B", epoch) {
		t.Fatalf("expected B to be selectable")
	}
	if keys := lineKeys(s); !slices.Equal(keys, []string{"TX", "NY"}) {
		t.Fatalf("expected lines for TX and NY only, got %v", keys)
	}
	if _, ok := s.Line("CA"); ok {
		t.Errorf("expected CA to be removed")
	}
	tx, _ := s.Line("TX")
	if got := tx.Points(epoch); !slices.Equal(got, oldTX) {
		t.Errorf("expected TX to start from its previous geometry, got %v want %v", got, oldTX)
	}
	ny, _ := s.Line("NY")
	for _, p := range ny.Points(epoch) {
		if p.Y != s.Frame.Height {
			t.Errorf("expected NY to enter from the baseline, got %v", p)
		}
	}
	end := epoch.Add(PathDuration)
	if got := tx.Points(end); !slices.Equal(got, tx.Target()) {
		t.Errorf("expected TX to settle on its target after the transition")
	}
	if got := tx.Target()[1].Y; got != 0 {
		t.Errorf("expected TX's 2000 value to be the new maximum, got y %v", got)
	}
	if !s.Animating(end) {
		t.Errorf("expected the axis to still be animating after the path transition")
	}
	if s.Animating(epoch.Add(AxisDuration)) {
		t.Errorf("expected all transitions to be finished")
	}
	if c.SelectType("missing", epoch) {
		t.Errorf("expected unknown type to be rejected")
	}
	if c.Selection().Type != "B" {
		t.Errorf("unknown type must not change the selection, got %q", c.Selection().Type)
	}
}

func TestSelectTypeIdempotent(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	c.SelectType("B", epoch)
	settled := epoch.Add(AxisDuration)
	once := map[string][]f32.Point{}
	for _, l := range s.Lines() {
		once[l.Key] = slices.Clone(l.Points(settled))
	}
	c.SelectType("B", settled)
	twice := settled.Add(AxisDuration)
	if len(s.Lines()) != len(once) {
		t.Fatalf("expected the same lines, got %v", lineKeys(s))
	}
	for _, l := range s.Lines() {
		if !slices.Equal(once[l.Key], l.Points(twice)) {
			t.Errorf("reselecting changed the geometry of %s", l.Key)
		}
	}
}

func TestSupersededTransition(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	c.SelectType("B", epoch)
	gen := s.Generation()
	mid := epoch.Add(PathDuration / 2)
	tx, _ := s.Line("TX")
	midPoints := slices.Clone(tx.Points(mid))
	c.SelectType("A", mid)
	if s.Generation() != gen+1 {
		t.Errorf("expected the generation to advance, got %d after %d", s.Generation(), gen)
	}
	if got := tx.Points(mid); !slices.Equal(got, midPoints) {
		t.Errorf("expected the new transition to start where the old one was, got %v want %v", got, midPoints)
	}
	if tx.Generation() != s.Generation() {
		t.Errorf("expected TX to belong to the current generation")
	}
	done := mid.Add(PathDuration)
	if got := tx.Points(done); !slices.Equal(got, tx.Target()) {
		t.Errorf("expected TX to settle on type A geometry")
	}
	if got := tx.Target()[1].Y; got != 0 {
		t.Errorf("expected type A geometry, got y %v", got)
	}
	if got := s.YAxis.DomainMax(mid.Add(AxisDuration)); got != 200 {
		t.Errorf("expected the axis to settle on 200, got %v", got)
	}
}

func TestAxisTicks(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	y := s.YTicks(epoch)
	if len(y) != 11 || y[0].Label != "0" || y[10].Label != "200" {
		t.Errorf("expected initial ticks 0..200 in steps of 20, got %+v", y)
	}
	if y[10].Pos != 0 || y[0].Pos != s.Frame.Height {
		t.Errorf("expected inverted tick positions, got %v and %v", y[0].Pos, y[10].Pos)
	}
	if s.YAxis.TickSize != TickSize {
		t.Errorf("expected initial tick marks")
	}
	x := s.XTicks()
	if len(x) != 18 || x[0].Label != "1986" {
		t.Errorf("expected 18 year ticks starting at 1986, got %+v", x)
	}
	c.SelectType("B", epoch)
	midMax := s.YAxis.DomainMax(epoch.Add(AxisDuration / 2))
	if midMax <= 8 || midMax >= 200 {
		t.Errorf("expected the displayed domain to be between 8 and 200 mid transition, got %v", midMax)
	}
	settled := s.YTicks(epoch.Add(AxisDuration))
	if last := settled[len(settled)-1]; last.Value != 8 {
		t.Errorf("expected ticks to end at the new maximum, got %+v", settled)
	}
	if s.YAxis.Ticks != UpdateYTicks || s.YAxis.TickSize != 0 {
		t.Errorf("expected coarser ticks without marks after an update")
	}
	if len(s.XTicks()) != len(x) {
		t.Errorf("horizontal ticks must not depend on the selection")
	}
}

func TestHoverTooltip(t *testing.T) {
	c := newTestController(t)
	s := c.Scene()
	tx, _ := s.Line("TX")
	pts := tx.Points(epoch)
	onLine := f32.Pt((pts[0].X+pts[1].X)/2, (pts[0].Y+pts[1].Y)/2)
	if key, ok := s.HitTest(onLine, epoch); !ok || key != "TX" {
		t.Errorf("expected to hit TX, got %q %v", key, ok)
	}
	s.Hover(onLine, epoch)
	if !s.Tooltip.Visible || s.Tooltip.Text != "TX" {
		t.Fatalf("expected the tooltip to show TX, got %+v", s.Tooltip)
	}
	if want := onLine.Add(f32.Pt(0, TooltipOffset)); s.Tooltip.Pos != want {
		t.Errorf("expected tooltip at %v, got %v", want, s.Tooltip.Pos)
	}
	s.Hover(onLine.Add(f32.Pt(1, 0)), epoch)
	if want := onLine.Add(f32.Pt(0, TooltipOffset)); s.Tooltip.Pos != want {
		t.Errorf("expected the tooltip to stay where it appeared, got %v", s.Tooltip.Pos)
	}
	far := f32.Pt(s.Frame.Width+100, -100)
	if _, ok := s.HitTest(far, epoch); ok {
		t.Errorf("expected no hit far from every line")
	}
	s.Hover(far, epoch)
	if s.Tooltip.Visible {
		t.Errorf("expected the tooltip to hide off the lines")
	}
	s.Hover(onLine, epoch)
	s.Leave()
	if s.Tooltip.Visible {
		t.Errorf("expected the tooltip to hide when the pointer leaves")
	}
}

func TestMissingDefaultType(t *testing.T) {
	s := NewScene(DefaultFrame())
	c := NewController(testDataset(), s, "Consumption.Missing")
	if len(s.Lines()) != 0 {
		t.Errorf("expected no lines for an unknown default type, got %v", lineKeys(s))
	}
	if s.Y.Domain[1] != 200 {
		t.Errorf("expected the dataset maximum as the vertical domain, got %v", s.Y.Domain)
	}
	if !slices.Equal(c.TypeOptions(), []string{"A", "B"}) {
		t.Errorf("unexpected type options %v", c.TypeOptions())
	}
	if !slices.Equal(c.StateOptions(), []string{"TX", "CA"}) {
		t.Errorf("expected state options from the first type, got %v", c.StateOptions())
	}
	c.SelectType("B", epoch)
	if !slices.Equal(c.StateOptions(), []string{"TX", "CA"}) {
		t.Errorf("state options must not follow the type selection, got %v", c.StateOptions())
	}
}

func TestSegmentsSkipNaN(t *testing.T) {
	nan := float32(math.NaN())
	pts := []f32.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: nan}, {X: 3, Y: 3}}
	segs := Segments(pts)
	if len(segs) != 2 || len(segs[0]) != 2 || len(segs[1]) != 1 {
		t.Errorf("expected a gap at the NaN point, got %v", segs)
	}
	if len(Segments(nil)) != 0 {
		t.Errorf("expected no segments for no points")
	}
}
