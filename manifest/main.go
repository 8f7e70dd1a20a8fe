package manifest

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/brentp/xopen"
	"github.com/fatih/color"
	"github.com/hpvpipe/bamnames"
	"github.com/hpvpipe/bamnames/config"
	"github.com/hpvpipe/bamnames/fname"
)

type cliargs struct {
	Config string   `arg:"-c,help:pipeline yaml config with prefix_list"`
	Prefix []string `arg:"-p,separate,help:sample prefix in addition to those in the config. may be repeated"`
	List   string   `arg:"-l,help:file with one input path per line. '-' for stdin"`
	Dir    string   `arg:"-d,help:directory to search for input files"`
	Suffix string   `arg:"-s,help:suffix of files to use from --dir"`
	Output string   `arg:"-o,help:output path. '-' for stdout. ends in .gz for compressed output"`
	Paths  []string `arg:"positional,help:input files"`
}

func (c cliargs) Version() string {
	return fmt.Sprintf("manifest %s", bamnames.Version)
}

func pcheck(e error) {
	if e != nil {
		log.Fatal(e)
	}
}

func gatherPaths(cli *cliargs) ([]string, error) {
	paths := append([]string{}, cli.Paths...)
	if cli.List != "" {
		rdr, err := xopen.Ropen(cli.List)
		if err != nil {
			return nil, err
		}
		defer rdr.Close()
		lpaths, err := ReadPaths(rdr)
		if err != nil {
			return nil, err
		}
		paths = append(paths, lpaths...)
	}
	if cli.Dir != "" {
		gpaths, err := Glob(cli.Dir, cli.Suffix)
		if err != nil {
			return nil, err
		}
		paths = append(paths, gpaths...)
	}
	return paths, nil
}

// writeFile writes entries to path. path may be "-" for stdout or end in .gz.
func writeFile(path string, entries []Entry) error {
	wtr, err := xopen.Wopen(path)
	if err != nil {
		return err
	}
	if err := Write(wtr, entries); err != nil {
		wtr.Close()
		return err
	}
	return wtr.Close()
}

// Main is called from the dispatcher
func Main() {
	cli := &cliargs{Suffix: ".bam", Output: "-"}
	p := arg.MustParse(cli)
	if len(cli.Paths) == 0 && cli.List == "" && cli.Dir == "" {
		p.Fail("specify input paths, --list or --dir")
	}
	prefixes, err := config.Prefixes(cli.Config, cli.Prefix)
	if err != nil {
		p.Fail(err.Error())
	}

	paths, err := gatherPaths(cli)
	pcheck(err)

	entries, errs := Build(paths, prefixes)
	c := color.New(color.FgRed).Add(color.Bold)
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, c.Sprintf("ERROR: %s", err))
	}

	dups := Duplicates(entries)
	ids := make([]string, 0, len(dups))
	for id := range dups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		log.Printf("warning: id %s is shared by: %s", id, strings.Join(dups[id], ", "))
	}

	pcheck(writeFile(cli.Output, entries))

	nSamples := 0
	for _, e := range entries {
		if e.Kind == fname.Sample {
			nSamples++
		}
	}
	log.Printf("%d samples, %d blanks, %d errors", nSamples, len(entries)-nSamples, len(errs))
	if len(errs) > 0 {
		os.Exit(1)
	}
}
