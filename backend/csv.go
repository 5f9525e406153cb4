package backend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CutoffYear is the earliest year kept when reading consumption data.
const CutoffYear = 1985

var (
	// ErrMissingColumn is returned when the CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedYear is returned when a row's year cannot be parsed.
	ErrMalformedYear = errors.New("malformed year")
)

// Columns names the CSV header fields holding each Record field. Names are
// matched exactly, including case.
type Columns struct {
	Year, Value, Type, State string
}

// DefaultColumns is the header layout of the consumption data files.
var DefaultColumns = Columns{
	Year:  "Year",
	Value: "ConsumptionValue",
	Type:  "ConsumptionType",
	State: "State",
}

// Record is one row of consumption data.
type Record struct {
	// Year is January 1st (UTC) of the row's year.
	Year time.Time
	// Value is NaN when the row's value was not numeric.
	Value float64
	Type  string
	State string
}

// ReadRecords parses CSV consumption data from r, dropping rows from before
// the cutoff year. Malformed values become NaN rather than errors; a
// malformed year or a missing header column aborts the read.
func ReadRecords(r io.Reader, cutoff int) ([]Record, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1
	headings, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read csv headings: %w", err)
	}
	idx, err := DefaultColumns.locate(headings)
	if err != nil {
		return nil, err
	}
	var records []Record
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("could not read consumption data: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		year, err := parseYear(field(row, idx[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if year.Year() < cutoff {
			continue
		}
		records = append(records, Record{
			Year:  year,
			Value: parseValue(field(row, idx[1])),
			Type:  field(row, idx[2]),
			State: field(row, idx[3]),
		})
	}
	return records, nil
}

// LoadDataset reads and groups consumption data from r.
func LoadDataset(r io.Reader) (*Dataset, error) {
	records, err := ReadRecords(r, CutoffYear)
	if err != nil {
		return nil, err
	}
	return NewDataset(records), nil
}

// LoadFile reads and groups the consumption data stored at path.
func LoadFile(path string) (ds *Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed opening consumption data: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	ds, err = LoadDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed loading %s: %w", path, err)
	}
	return ds, nil
}

// locate returns the header index of each column in Year, Value, Type,
// State order.
func (c Columns) locate(headings []string) ([4]int, error) {
	var idx [4]int
	for i, name := range []string{c.Year, c.Value, c.Type, c.State} {
		pos := -1
		for j, heading := range headings {
			if heading == name {
				pos = j
				break
			}
		}
		if pos < 0 {
			return idx, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		idx[i] = pos
	}
	return idx, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseYear(s string) (time.Time, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrMalformedYear, s)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
}

// parseValue follows numeric coercion rules: blank is zero and anything
// unparsable is NaN.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
