package fname

import (
	"fmt"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/hpvpipe/bamnames"
	"github.com/hpvpipe/bamnames/config"
)

type cliargs struct {
	Config   string   `arg:"-c,help:pipeline yaml config with prefix_list"`
	Prefix   []string `arg:"-p,separate,help:sample prefix in addition to those in the config. may be repeated"`
	BlankRun bool     `arg:"-b,--blank-run,help:prefix blank ids with the run id and run name of their directory"`
	Paths    []string `arg:"positional,required,help:files for which to print ids"`
}

func (c cliargs) Version() string {
	return fmt.Sprintf("id %s", bamnames.Version)
}

// ID returns the id for path. With blankRun, blanks get the run-qualified id from
// ReformatBlankNames.
func ID(path string, prefixes []string, blankRun bool) (string, error) {
	if !blankRun {
		return ParseFilenames(path, prefixes)
	}
	kind, err := Classify(path, prefixes)
	if err != nil {
		return "", err
	}
	if kind == Sample {
		return ParseSampleID(path)
	}
	return ReformatBlankNames(path)
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
	for _, path := range cli.Paths {
		id, err := ID(path, prefixes, cli.BlankRun)
		if err != nil {
			fmt.Fprintln(os.Stderr, c.Sprintf("ERROR: %s", err))
			exitCode = 1
			continue
		}
		fmt.Println(id)
	}
	os.Exit(exitCode)
}
