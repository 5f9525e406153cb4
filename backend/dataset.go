package backend

import (
	"math"
	"slices"
)

// StateGroup holds every record of one consumption type reported by a
// single state, ordered by year.
type StateGroup struct {
	State   string
	Records []Record
}

// MaxValue returns the largest non-NaN value of the state, or NaN.
func (s *StateGroup) MaxValue() float64 {
	m := math.NaN()
	for _, r := range s.Records {
		m = nanMax(m, r.Value)
	}
	return m
}

// Span returns the first and last year reported by the state.
func (s *StateGroup) Span() (first, last int, ok bool) {
	if len(s.Records) == 0 {
		return 0, 0, false
	}
	return s.Records[0].Year.Year(), s.Records[len(s.Records)-1].Year.Year(), true
}

// TypeGroup holds every record of one consumption type, split by state.
type TypeGroup struct {
	Type string
	// MaxValue is the largest non-NaN value in the group, or NaN if the
	// group contains only NaN values.
	MaxValue float64
	States   []StateGroup
	// stateIndex maps state keys to their position in States.
	stateIndex map[string]int
}

// State returns the group for the given state key.
func (t *TypeGroup) State(key string) (*StateGroup, bool) {
	i, ok := t.stateIndex[key]
	if !ok {
		return nil, false
	}
	return &t.States[i], true
}

// StateKeys returns the state keys in first-seen order.
func (t *TypeGroup) StateKeys() []string {
	keys := make([]string, len(t.States))
	for i, s := range t.States {
		keys[i] = s.State
	}
	return keys
}

// Len returns the number of records in the group.
func (t *TypeGroup) Len() int {
	n := 0
	for _, s := range t.States {
		n += len(s.Records)
	}
	return n
}

// Dataset is the full set of consumption records together with their
// grouping by consumption type and state. It is not modified after
// construction.
type Dataset struct {
	Records []Record
	Types   []TypeGroup
	// typeIndex maps consumption type keys to their position in Types.
	typeIndex map[string]int
	maxValue  float64
}

// NewDataset groups records by consumption type and then by state in a
// single pass. Groups keep the order in which their keys first appear.
func NewDataset(records []Record) *Dataset {
	d := &Dataset{
		Records:   records,
		typeIndex: make(map[string]int),
		maxValue:  math.NaN(),
	}
	for _, r := range records {
		ti, ok := d.typeIndex[r.Type]
		if !ok {
			ti = len(d.Types)
			d.typeIndex[r.Type] = ti
			d.Types = append(d.Types, TypeGroup{
				Type:       r.Type,
				MaxValue:   math.NaN(),
				stateIndex: make(map[string]int),
			})
		}
		tg := &d.Types[ti]
		si, ok := tg.stateIndex[r.State]
		if !ok {
			si = len(tg.States)
			tg.stateIndex[r.State] = si
			tg.States = append(tg.States, StateGroup{State: r.State})
		}
		tg.States[si].Records = append(tg.States[si].Records, r)
		tg.MaxValue = nanMax(tg.MaxValue, r.Value)
		d.maxValue = nanMax(d.maxValue, r.Value)
	}
	for ti := range d.Types {
		for si := range d.Types[ti].States {
			slices.SortStableFunc(d.Types[ti].States[si].Records, func(a, b Record) int {
				return a.Year.Compare(b.Year)
			})
		}
	}
	return d
}

// Type returns the group for the given consumption type key.
func (d *Dataset) Type(key string) (*TypeGroup, bool) {
	i, ok := d.typeIndex[key]
	if !ok {
		return nil, false
	}
	return &d.Types[i], true
}

// TypeKeys returns the consumption type keys in first-seen order.
func (d *Dataset) TypeKeys() []string {
	keys := make([]string, len(d.Types))
	for i, t := range d.Types {
		keys[i] = t.Type
	}
	return keys
}

// MaxValue returns the largest non-NaN value across all records.
func (d *Dataset) MaxValue() float64 {
	return d.maxValue
}

// nanMax returns the larger of a and b, treating NaN as absent.
func nanMax(a, b float64) float64 {
	switch {
	case math.IsNaN(b):
		return a
	case math.IsNaN(a):
		return b
	default:
		return max(a, b)
	}
}
