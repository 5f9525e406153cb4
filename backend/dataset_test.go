package backend

import (
	"math"
	"slices"
	"testing"
	"time"
)

func rec(typ, state string, year int, value float64) Record {
	return Record{
		Year:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Value: value,
		Type:  typ,
		State: state,
	}
}

func TestDatasetMaxValue(t *testing.T) {
	ds := NewDataset([]Record{
		rec("A", "TX", 1990, 5),
		rec("A", "CA", 1990, 12),
		rec("B", "TX", 1990, 3),
	})
	for _, tc := range []struct {
		key  string
		want float64
	}{
		{key: "A", want: 12},
		{key: "B", want: 3},
	} {
		group, ok := ds.Type(tc.key)
		if !ok {
			t.Fatalf("expected type %q to exist", tc.key)
		}
		if group.MaxValue != tc.want {
			t.Errorf("expected max %v for %q, got %v", tc.want, tc.key, group.MaxValue)
		}
	}
	if ds.MaxValue() != 12 {
		t.Errorf("expected dataset max 12, got %v", ds.MaxValue())
	}
	if _, ok := ds.Type("C"); ok {
		t.Errorf("expected unknown type lookup to fail")
	}
}

func TestDatasetMaxIgnoresNaN(t *testing.T) {
	ds := NewDataset([]Record{
		rec("A", "TX", 1990, math.NaN()),
		rec("A", "TX", 1991, 7),
		rec("B", "TX", 1990, math.NaN()),
	})
	a, _ := ds.Type("A")
	if a.MaxValue != 7 {
		t.Errorf("expected NaN to be ignored, got max %v", a.MaxValue)
	}
	b, _ := ds.Type("B")
	if !math.IsNaN(b.MaxValue) {
		t.Errorf("expected an all-NaN group to have a NaN max, got %v", b.MaxValue)
	}
}

func TestDatasetPartition(t *testing.T) {
	records := []Record{
		rec("A", "TX", 2000, 200),
		rec("A", "CA", 1995, 1),
		rec("A", "TX", 1990, 100),
		rec("B", "NY", 1990, 4),
		rec("A", "CA", 1990, 2),
	}
	ds := NewDataset(records)
	if got := ds.TypeKeys(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("expected first-seen type order, got %v", got)
	}
	total := 0
	for _, tg := range ds.Types {
		seen := map[string]bool{}
		for _, sg := range tg.States {
			if len(sg.Records) == 0 {
				t.Errorf("state group %q of %q is empty", sg.State, tg.Type)
			}
			if seen[sg.State] {
				t.Errorf("state %q appears twice in %q", sg.State, tg.Type)
			}
			seen[sg.State] = true
			for _, r := range sg.Records {
				if r.Type != tg.Type || r.State != sg.State {
					t.Errorf("record %+v placed in group %q/%q", r, tg.Type, sg.State)
				}
			}
		}
		total += tg.Len()
	}
	if total != len(records) {
		t.Errorf("expected groups to hold %d records, got %d", len(records), total)
	}
	a, _ := ds.Type("A")
	if got := a.StateKeys(); !slices.Equal(got, []string{"TX", "CA"}) {
		t.Errorf("expected first-seen state order, got %v", got)
	}
	tx, ok := a.State("TX")
	if !ok {
		t.Fatalf("expected TX in type A")
	}
	if tx.Records[0].Year.Year() != 1990 || tx.Records[1].Year.Year() != 2000 {
		t.Errorf("expected state records sorted by year, got %v and %v", tx.Records[0].Year, tx.Records[1].Year)
	}
	if records[0].Year.Year() != 2000 {
		t.Errorf("grouping must not reorder the input records")
	}
}

func TestStateGroupSummary(t *testing.T) {
	ds := NewDataset([]Record{
		rec("A", "TX", 2001, 3),
		rec("A", "TX", 1990, math.NaN()),
		rec("A", "TX", 1995, 9),
		rec("A", "CA", 1990, math.NaN()),
	})
	a, _ := ds.Type("A")
	tx, _ := a.State("TX")
	if got := tx.MaxValue(); got != 9 {
		t.Errorf("expected TX max 9, got %v", got)
	}
	if first, last, ok := tx.Span(); !ok || first != 1990 || last != 2001 {
		t.Errorf("expected TX span 1990-2001, got %d-%d (%v)", first, last, ok)
	}
	ca, _ := a.State("CA")
	if got := ca.MaxValue(); !math.IsNaN(got) {
		t.Errorf("expected an all-NaN state to have a NaN max, got %v", got)
	}
	var empty StateGroup
	if _, _, ok := empty.Span(); ok {
		t.Errorf("expected an empty state to have no span")
	}
}
