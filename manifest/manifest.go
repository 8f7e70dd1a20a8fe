// Package manifest classifies a batch of pipeline input files and writes a table of their
// kinds and ids. The workflow reads this table instead of re-parsing every file name.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hpvpipe/bamnames/fname"
	"github.com/pkg/errors"
)

// Entry is one input file.
type Entry struct {
	Path string
	Kind fname.Kind
	ID   string
	// RunID is the blank id qualified by run id and run name. It is empty for samples and for
	// blanks whose directory does not name the run.
	RunID string
}

func (e Entry) String() string {
	runID := e.RunID
	if runID == "" {
		runID = "."
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s", e.Path, e.Kind, e.ID, runID)
}

// Header is the first line written by Write.
const Header = "#path\tkind\tid\trun_id"

// Build classifies each of paths. Paths that can not be parsed are returned as errors and
// left out of the entries.
func Build(paths []string, prefixes []string) ([]Entry, []error) {
	entries := make([]Entry, 0, len(paths))
	var errs []error
	for _, p := range paths {
		e, err := entry(p, prefixes)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, errs
}

func entry(path string, prefixes []string) (Entry, error) {
	e := Entry{Path: path}
	var err error
	if e.Kind, err = fname.Classify(path, prefixes); err != nil {
		return e, err
	}
	if e.Kind == fname.Sample {
		e.ID, err = fname.ParseSampleID(path)
		return e, err
	}
	e.ID = fname.ParseBlankID(fname.Base(path))
	runID, err := fname.ReformatBlankNames(path)
	if err == nil {
		e.RunID = runID
	} else if !errors.Is(err, fname.ErrMissingField) && !errors.Is(err, fname.ErrMalformedFilename) {
		return e, err
	}
	return e, nil
}

// Duplicates returns the ids that are shared by more than one entry, mapped to their paths.
func Duplicates(entries []Entry) map[string][]string {
	byID := make(map[string][]string)
	for _, e := range entries {
		id := e.ID
		if e.RunID != "" {
			id = e.RunID
		}
		byID[id] = append(byID[id], e.Path)
	}
	for id, paths := range byID {
		if len(paths) < 2 {
			delete(byID, id)
		}
	}
	return byID
}

// ReadPaths reads one path per line from r. Empty lines and lines starting with '#' are skipped.
func ReadPaths(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		paths = append(paths, line)
	}
	return paths, scanner.Err()
}

// Glob returns the files under dir whose names end with suffix, sorted.
func Glob(dir, suffix string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: searching %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// Write writes the header and one line per entry to w.
func Write(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}
