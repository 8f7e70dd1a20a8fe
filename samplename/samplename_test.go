package samplename

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

func header(t *testing.T, text string) *sam.Header {
	h, err := sam.NewHeader([]byte(text), nil)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestNames(t *testing.T) {
	h := header(t, "@HD\tVN:1.5\n")
	if names := Names(h); len(names) != 0 {
		t.Errorf("expected no names, got: %v", names)
	}

	h = header(t, "@HD\tVN:1.5\n@RG\tID:a\tSM:PAP123_20190305\n")
	if names := Names(h); !reflect.DeepEqual(names, []string{"PAP123_20190305"}) {
		t.Errorf("expected: [PAP123_20190305], got: %v", names)
	}

	h = header(t, "@HD\tVN:1.5\n@RG\tID:a\tSM:s2\n@RG\tID:b\tSM:s1\n@RG\tID:c\tSM:s2\n@RG\tID:d\n")
	if names := Names(h); !reflect.DeepEqual(names, []string{"s1", "s2"}) {
		t.Errorf("expected: [s1 s2], got: %v", names)
	}
}

func TestCheck(t *testing.T) {
	prefixes := []string{"PAP"}
	sample := "/runs/Auto_S5XL0017_RD0102/IonXpress_001_PAP123_3052019_rawlib.bam"
	blank := "/runs/Auto_S5XL0017_RD0102/IonXpress_004_NTC_rawlib_basecaller_alignments.bam"

	cases := []struct {
		path  string
		names []string
		id    string
		match bool
	}{
		{sample, []string{"PAP123_20190305"}, "PAP123_20190305", true},
		{sample, []string{"PAP123"}, "PAP123_20190305", false},
		{sample, []string{"PAP123_20190305", "other"}, "PAP123_20190305", false},
		{sample, nil, "PAP123_20190305", false},
		{blank, []string{"NTC"}, "NTC", true},
		{blank, []string{"RD0102_S5XL0017_NTC"}, "NTC", true},
	}
	for _, c := range cases {
		r, err := Check(c.path, c.names, prefixes)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", c.path, err)
		}
		if r.ID != c.id || r.Match != c.match {
			t.Errorf("%s %v: expected: %s %v, got: %s %v", c.path, c.names, c.id, c.match, r.ID, r.Match)
		}
	}

	if _, err := Check("/runs/bad.bam", nil, prefixes); err == nil {
		t.Error("expected an error for a malformed name")
	}
}

func TestResultString(t *testing.T) {
	r := Result{Path: "a.bam", ID: "NTC", Match: false}
	if s := r.String(); s != "a.bam\tNTC\t.\tMISMATCH" {
		t.Errorf("unexpected: %q", s)
	}
	r = Result{Path: "a.bam", ID: "NTC", Names: []string{"NTC"}, Match: true}
	if s := r.String(); s != "a.bam\tNTC\tNTC\tok" {
		t.Errorf("unexpected: %q", s)
	}
}

func writeBam(t *testing.T, path, text string) {
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w, err := bam.NewWriter(f, header(t, text), 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "IonXpress_001_PAP123_3052019_rawlib.bam")
	writeBam(t, path, "@HD\tVN:1.5\n@RG\tID:a\tSM:PAP123_20190305\n@RG\tID:b\tSM:PAP123_20190305\n")

	names, err := readNames(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"PAP123_20190305"}) {
		t.Errorf("expected: [PAP123_20190305], got: %v", names)
	}
	r, err := Check(path, names, []string{"PAP"})
	if err != nil || !r.Match {
		t.Errorf("expected a match, got: %v (%v)", r, err)
	}

	if _, err := readNames(filepath.Join(dir, "missing.bam")); err == nil {
		t.Error("expected an error for a missing bam")
	}
	notBam := filepath.Join(dir, "not.bam")
	if err := os.WriteFile(notBam, []byte("not a bam\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readNames(notBam); err == nil {
		t.Error("expected an error for a file that is not a bam")
	}
}
