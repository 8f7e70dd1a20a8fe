package fname

import "github.com/pkg/errors"

var (
	// ErrMalformedFilename is returned when a name has fewer fields than a parser needs.
	ErrMalformedFilename = errors.New("malformed filename")
	// ErrMissingField is returned when no field of a run directory has a required prefix.
	ErrMissingField = errors.New("missing required field")
)

func malformed(name string, got, need int) error {
	return errors.Wrapf(ErrMalformedFilename, "fname: %q has %d fields, need %d", name, got, need)
}
