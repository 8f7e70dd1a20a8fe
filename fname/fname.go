// Package fname classifies pipeline input files as samples or blanks and derives their
// canonical ids from the underscore-delimited fields of the file name.
//
// Sample files look like:
//
//	<run>_<lane>_<papID>_<MDDYYYY>_<...>
//
// and get the id <papID>_<YYYYMMDD>. Anything whose third field does not start with one of the
// configured prefixes is a blank (control) and gets the middle of its name as the id.
//
// All functions are pure and safe for concurrent use.
package fname

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Base returns the part of path after the last '/'.
func Base(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// IsSample reports whether the classifying field of the file name starts with any of prefixes.
// Names with too few fields are an error rather than a blank.
func IsSample(filename string, prefixes []string) (bool, error) {
	toks := strings.Split(filename, "_")
	if len(toks) <= ClassifyField {
		return false, malformed(filename, len(toks), ClassifyField+1)
	}
	for _, p := range prefixes {
		if strings.HasPrefix(toks[ClassifyField], p) {
			return true, nil
		}
	}
	return false, nil
}

// Classify is IsSample on the base name of path, returned as a Kind.
func Classify(path string, prefixes []string) (Kind, error) {
	ok, err := IsSample(Base(path), prefixes)
	if err != nil || !ok {
		return Blank, err
	}
	return Sample, nil
}

// ParseSampleID returns <papID>_<YYYYMMDD> for the sample at path.
// The date field is month-day-year where year and day are fixed-width from the end of the
// field and the month is whatever is left, without zero padding. A month that is not an
// integer is left out of the result. Dates shorter than 6 characters give short (or empty)
// day and month parts; they are passed through as-is.
func ParseSampleID(path string) (string, error) {
	base := Base(path)
	toks := strings.Split(base, "_")
	if len(toks) <= DateField {
		return "", malformed(base, len(toks), DateField+1)
	}
	year, month, day := splitDate(toks[DateField])
	return toks[PapIDField] + "_" + year + formatMonth(month) + day, nil
}

// splitDate splits d into olddate[-4:], olddate[:-6] and olddate[-6:-4] with python slice
// semantics: offsets from the end clamp at the start of the string.
func splitDate(d string) (year, month, day string) {
	r := []rune(d)
	l := len(r)
	ys := imax(l-yearWidth, 0)
	ds := imax(l-yearWidth-dayWidth, 0)
	return string(r[ys:]), string(r[:ds]), string(r[ds:ys])
}

// formatMonth renders m as a %02d integer or returns "" if m is not an integer.
// Any unicode decimal digit counts, so "٣" is "03".
func formatMonth(m string) string {
	m = strings.TrimSpace(m)
	neg := false
	if len(m) > 0 && (m[0] == '-' || m[0] == '+') {
		neg = m[0] == '-'
		m = m[1:]
	}
	if len(m) == 0 {
		return ""
	}
	digits := make([]byte, 0, len(m))
	for _, r := range m {
		d, ok := digitValue(r)
		if !ok {
			return ""
		}
		digits = append(digits, '0'+d)
	}
	m = strings.TrimLeft(string(digits), "0")
	if m == "" {
		return "00"
	}
	if neg {
		// the sign counts toward the width.
		return "-" + m
	}
	if len(m) == 1 {
		return "0" + m
	}
	return m
}

// digitValue returns the value of the decimal digit r in any script.
// Each script's digits are a contiguous run starting at zero, so the value is the offset into
// the run modulo 10.
func digitValue(r rune) (byte, bool) {
	if '0' <= r && r <= '9' {
		return byte(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return byte((uint32(r)-uint32(rg.Lo))/uint32(rg.Stride)%10), true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if rune(rg.Lo) <= r && r <= rune(rg.Hi) {
			return byte((uint32(r)-rg.Lo)/rg.Stride%10), true
		}
	}
	return 0, false
}

// ParseBlankID returns the blank id from a file name: the name without its first 2 fields and,
// when at least 3 remain after those, without its last 3. With fewer remaining underscores the id
// is the text before the first of them. Names with fewer than 2 underscores give "".
func ParseBlankID(filename string) string {
	toks := strings.SplitN(filename, "_", blankLeadFields+1)
	if len(toks) <= blankLeadFields {
		return ""
	}
	tail := toks[blankLeadFields]
	end := len(tail)
	for i := 0; i < blankTrailFields; i++ {
		j := strings.LastIndexByte(tail[:end], '_')
		if j < 0 {
			break
		}
		end = j
	}
	return tail[:end]
}

// ParseFilenames returns the sample id or the blank id for path depending on how its
// base name classifies. This is what the workflow calls for each input file.
func ParseFilenames(path string, prefixes []string) (string, error) {
	base := Base(path)
	sample, err := IsSample(base, prefixes)
	if err != nil {
		return "", err
	}
	if sample {
		return ParseSampleID(path)
	}
	return ParseBlankID(base), nil
}

// ReformatBlankNames qualifies the blank id of path with the run id and run name found in its
// parent directory: <RD...>_<S5XL...>_<blank id>.
func ReformatBlankNames(path string) (string, error) {
	segs := strings.Split(path, "/")
	if len(segs) < 2 {
		return "", errors.Wrapf(ErrMalformedFilename, "fname: %q has no run directory", path)
	}
	blankID := ParseBlankID(segs[len(segs)-1])
	rundir := segs[len(segs)-2]
	fields := strings.Split(rundir, "_")

	runName, ok := firstWithPrefix(fields, RunNamePrefix)
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "fname: no %s field in run directory %q", RunNamePrefix, rundir)
	}
	rdID, ok := firstWithPrefix(fields, RunIDPrefix)
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "fname: no %s field in run directory %q", RunIDPrefix, rundir)
	}
	return strings.Join([]string{rdID, runName, blankID}, "_"), nil
}

func firstWithPrefix(fields []string, prefix string) (string, bool) {
	for _, f := range fields {
		if strings.HasPrefix(f, prefix) {
			return f, true
		}
	}
	return "", false
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
