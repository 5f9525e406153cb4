package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
)

// ErrAlreadyLoaded is returned when a load is requested after the
// datasource has already started loading.
var ErrAlreadyLoaded = errors.New("consumption data already loaded")

type Mode uint8

const (
	ModeNone Mode = iota
	ModeLoading
	ModeReady
	ModeFailed
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "no data"
	case ModeLoading:
		return "loading"
	case ModeReady:
		return "ready"
	case ModeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status describes the progress of loading the consumption data.
type Status struct {
	Mode   Mode
	Source string
	Data   *Dataset
	Err    error
}

// Datasource loads consumption data exactly once, in the background, and
// broadcasts its progress to any number of subscribers.
type Datasource struct {
	source *stream.Source[Status, Status]
}

func NewDatasource() *Datasource {
	d := &Datasource{
		source: stream.NewSource(func(s Status) (Status, bool) {
			return s, true
		}),
	}
	d.source.Update(func(Status) Status {
		return Status{Mode: ModeNone}
	})
	return d
}

// Status returns a channel that receives the latest status and every
// subsequent change until ctx is cancelled. Rapid changes may be coalesced.
func (d *Datasource) Status(ctx context.Context) <-chan Status {
	return d.source.Stream(ctx)
}

func (d *Datasource) publish(status Status) {
	d.source.Update(func(Status) Status {
		return status
	})
}

// begin claims the datasource for a load from source.
func (d *Datasource) begin(source string) error {
	claimed := false
	d.source.UpdateIf(func(old Status) (Status, bool) {
		if old.Mode != ModeNone {
			return old, false
		}
		claimed = true
		return Status{Mode: ModeLoading, Source: source}, true
	})
	if !claimed {
		return ErrAlreadyLoaded
	}
	return nil
}

// LoadFromFile starts loading the CSV file at path.
func (d *Datasource) LoadFromFile(path string) error {
	if err := d.begin(path); err != nil {
		return err
	}
	go func() {
		ds, err := LoadFile(path)
		d.finish(path, ds, err)
	}()
	return nil
}

// LoadFromStream starts loading CSV data from r, closing it when done.
func (d *Datasource) LoadFromStream(source string, r io.ReadCloser) error {
	if err := d.begin(source); err != nil {
		r.Close()
		return err
	}
	go func() {
		ds, err := LoadDataset(r)
		err = errors.Join(err, r.Close())
		if err != nil {
			err = fmt.Errorf("failed loading %s: %w", source, err)
		}
		d.finish(source, ds, err)
	}()
	return nil
}

// LoadFromExplorer asks the user to pick a CSV file and loads it. The file
// chooser blocks, so the caller should not be the window's event loop.
func (d *Datasource) LoadFromExplorer(expl *explorer.Explorer) error {
	file, err := expl.ChooseFile("csv")
	if err != nil {
		return fmt.Errorf("failed choosing consumption data: %w", err)
	}
	source := "selected file"
	if f, ok := file.(*os.File); ok {
		source = f.Name()
	}
	return d.LoadFromStream(source, file)
}

func (d *Datasource) finish(source string, ds *Dataset, err error) {
	if err != nil {
		log.Printf("could not load consumption data: %v", err)
		d.publish(Status{Mode: ModeFailed, Source: source, Err: err})
		return
	}
	log.Printf("loaded %d records in %d consumption types from %s", len(ds.Records), len(ds.Types), source)
	d.publish(Status{Mode: ModeReady, Source: source, Data: ds})
}
