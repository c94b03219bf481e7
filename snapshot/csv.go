package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/arloliu/hilbert/curve"
)

// DefaultDir is the folder the command line tool writes step snapshots to.
const DefaultDir = "./skillings_intermediate_results"

// WritePointsCSV writes one CSV row per point, one column per coordinate.
func WritePointsCSV(w io.Writer, points []curve.Point) error {
	cw := csv.NewWriter(w)

	var record []string
	for _, p := range points {
		record = record[:0]
		for _, v := range p {
			record = append(record, strconv.FormatUint(uint64(v), 10))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// FileName returns the snapshot file name of step, "{bit}_{dim}.csv".
func FileName(step curve.Step) string {
	return step.String() + ".csv"
}

// DirSink is a curve.Observer that appends every snapshot to a CSV file per step
// inside a directory, named as FileName reports.
//
// Observe cannot return an error, so the first failure is retained, later snapshots
// are dropped, and the failure is reported by Err.
type DirSink struct {
	dir string

	mu      sync.Mutex
	err     error
	created bool
}

var _ curve.Observer = (*DirSink)(nil)

// NewDirSink creates a sink writing into dir. The directory is created on the
// first snapshot.
func NewDirSink(dir string) *DirSink {
	return &DirSink{dir: dir}
}

// Dir returns the target directory.
func (s *DirSink) Dir() string {
	return s.dir
}

// Observe appends points to the file of step.
func (s *DirSink) Observe(step curve.Step, points []curve.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}
	s.err = s.appendStep(step, points)
}

// Err returns the first write error, or nil.
func (s *DirSink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *DirSink) appendStep(step curve.Step, points []curve.Point) error {
	if !s.created {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
		s.created = true
	}

	path := filepath.Join(s.dir, FileName(step))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open snapshot %s: %w", path, err)
	}

	if err := WritePointsCSV(f, points); err != nil {
		_ = f.Close()
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	return f.Close()
}

// Clear removes the regular files in dir and leaves sub-directories alone.
// A missing directory is not an error.
func Clear(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}
