package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/hpvpipe/bamnames"
	"github.com/hpvpipe/bamnames/fname"
	"github.com/hpvpipe/bamnames/manifest"
	"github.com/hpvpipe/bamnames/samplename"
)

type progPair struct {
	help string
	main func()
}

var progs = map[string]progPair{
	"id":         progPair{"print the sample or blank id for each input path", fname.Main},
	"manifest":   progPair{"classify a batch of inputs and write a table of kinds and ids", manifest.Main},
	"samplename": progPair{"check bam read-group sample names against the ids from their file names", samplename.Main},
}

func printProgs() {

	var wtr io.Writer = os.Stdout

	fmt.Fprintf(wtr, "bamnames Version: %s\n\n", bamnames.Version)
	var keys []string
	l := 5
	for k := range progs {
		keys = append(keys, k)
		if len(k) > l {
			l = len(k)
		}
	}
	fmtr := "%-" + strconv.Itoa(l) + "s : %s\n"
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(wtr, fmtr, k, progs[k].help)
	}
	os.Exit(1)
}

func main() {

	if len(os.Args) < 2 {
		printProgs()
	}
	var p progPair
	var ok bool
	if p, ok = progs[os.Args[1]]; !ok {
		printProgs()
	}
	// remove the prog name from the call
	os.Args = append(os.Args[:1], os.Args[2:]...)
	p.main()
}
