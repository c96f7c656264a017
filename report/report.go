// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/mincut/karger"
)

// MaxHistory caps how many previous runs a report file keeps.
const MaxHistory = 10

// Run is the TOML form of one run. Durations are stored as nanoseconds.
type Run struct {
	Input       string    `toml:"input"`
	Algorithm   string    `toml:"algorithm"`
	Mode        string    `toml:"mode"`
	Threshold   int       `toml:"threshold,omitempty"`
	Seed        int64     `toml:"seed"`
	Workers     int       `toml:"workers"`
	FinishedAt  time.Time `toml:"finished_at"`
	MinCut      int64     `toml:"min_cut"`
	Vertices    int       `toml:"vertices"`
	Edges       int       `toml:"edges"`
	Trials      int       `toml:"trials"`
	SuccessProb float64   `toml:"success_prob"`
	ElapsedNs   int64     `toml:"elapsed_ns"`
	Side0       []int     `toml:"side0,omitempty"`
	Side1       []int     `toml:"side1,omitempty"`
}

// File is the on-disk layout: the latest run plus older ones, oldest first.
type File struct {
	Current Run   `toml:"current"`
	History []Run `toml:"history"`
}

// FromStats fills the measured fields of r from s.
func (r Run) FromStats(s karger.Stats) Run {
	r.MinCut = s.MinCut
	r.Vertices = s.Vertices
	r.Edges = s.Edges
	r.Trials = s.Trials
	r.SuccessProb = s.SuccessProb
	r.ElapsedNs = int64(s.Elapsed)

	return r
}

// Stats converts the measured fields back.
func (r Run) Stats() karger.Stats {
	return karger.Stats{
		MinCut:      r.MinCut,
		Vertices:    r.Vertices,
		Edges:       r.Edges,
		Trials:      r.Trials,
		SuccessProb: r.SuccessProb,
		Elapsed:     time.Duration(r.ElapsedNs),
	}
}

// Save writes run to path. An existing report's current run moves into the
// history, capped at MaxHistory entries. The write goes through a temp file
// and a rename.
func Save(path string, run Run) error {
	existing, err := Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("report: loading existing %s: %w", path, err)
	}

	file := File{Current: run}
	if existing != nil {
		file.History = append(existing.History, existing.Current)
		if len(file.History) > MaxHistory {
			file.History = file.History[len(file.History)-MaxHistory:]
		}
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("report: marshaling: %w", err)
	}

	return writeAtomic(path, data)
}

// writeAtomic writes data next to path under a unique temp name and renames
// it into place, so concurrent writers never share a temp file.
func writeAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("report: creating temp file: %w", err)
	}
	tmp := f.Name()

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("report: writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("report: renaming %s: %w", tmp, err)
	}

	return nil
}

// Load reads a report. A missing file yields an error matching
// fs.ErrNotExist.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("report: parsing %s: %w", path, err)
	}

	return &file, nil
}
