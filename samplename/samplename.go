package samplename

import (
	"fmt"
	"os"
	"sort"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/fatih/color"
	"github.com/hpvpipe/bamnames"
	"github.com/hpvpipe/bamnames/config"
	"github.com/hpvpipe/bamnames/fname"
)

var smTag = sam.Tag([2]byte{'S', 'M'})

// Names returns the distinct, non-empty SM values of the read groups in h, sorted.
func Names(h *sam.Header) []string {
	m := make(map[string]bool)
	for _, rg := range h.RGs() {
		if v := rg.Get(smTag); v != "" {
			m[v] = true
		}
	}
	names := make([]string, 0, len(m))
	for sm := range m {
		names = append(names, sm)
	}
	sort.Strings(names)
	return names
}

// Result compares the id parsed from a bam's file name with its read-group sample names.
type Result struct {
	Path  string
	ID    string
	Names []string
	// Match is true when the bam has exactly one sample name and it equals the id (or, for
	// blanks, the run-qualified id).
	Match bool
}

func (r Result) String() string {
	status := "ok"
	if !r.Match {
		status = "MISMATCH"
	}
	sm := strings.Join(r.Names, ",")
	if sm == "" {
		sm = "."
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s", r.Path, r.ID, sm, status)
}

// Check parses the id for path and compares it to names.
func Check(path string, names []string, prefixes []string) (Result, error) {
	r := Result{Path: path, Names: names}
	kind, err := fname.Classify(path, prefixes)
	if err != nil {
		return r, err
	}
	ids := make([]string, 0, 2)
	if kind == fname.Sample {
		if r.ID, err = fname.ParseSampleID(path); err != nil {
			return r, err
		}
		ids = append(ids, r.ID)
	} else {
		r.ID = fname.ParseBlankID(fname.Base(path))
		ids = append(ids, r.ID)
		if runID, err := fname.ReformatBlankNames(path); err == nil {
			ids = append(ids, runID)
		}
	}
	if len(names) == 1 {
		for _, id := range ids {
			if names[0] == id {
				r.Match = true
			}
		}
	}
	return r, nil
}

type cliargs struct {
	Config     string   `arg:"-c,help:pipeline yaml config with prefix_list"`
	Prefix     []string `arg:"-p,separate,help:sample prefix in addition to those in the config. may be repeated"`
	ErrorMulti bool     `arg:"-e,help:exit with an error if any bam does not have exactly 1 sample matching its file name."`
	Bams       []string `arg:"positional,required,help:bams to check"`
}

func (c cliargs) Version() string {
	return fmt.Sprintf("samplename %s", bamnames.Version)
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return Names(b.Header()), nil
}

// Main is called from the dispatcher
func Main() {
	cli := &cliargs{}
	p := arg.MustParse(cli)
	prefixes, err := config.Prefixes(cli.Config, cli.Prefix)
	if err != nil {
		p.Fail(err.Error())
	}

	c := color.New(color.FgRed).Add(color.Bold)
	exitCode := 0
	fmt.Println("#bam\tid\tsm\tstatus")
	for _, path := range cli.Bams {
		names, err := readNames(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, c.Sprintf("ERROR: %s: %s", path, err))
			exitCode = 1
			continue
		}
		r, err := Check(path, names, prefixes)
		if err != nil {
			fmt.Fprintln(os.Stderr, c.Sprintf("ERROR: %s", err))
			exitCode = 1
			continue
		}
		fmt.Println(r)
		if !r.Match && cli.ErrorMulti {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}
