package fname

// Positions of the underscore-delimited fields in an input file name, e.g.
//
//	run_lane_PAP0123_1150123_S1.bam
//	 0    1     2       3     4
const (
	// ClassifyField is tested against the configured prefix list to tell samples from blanks.
	ClassifyField = 2
	// PapIDField holds the participant (pap) id of a sample.
	PapIDField = 2
	// DateField holds the variable-width MDDYYYY date of a sample.
	DateField = 3
)

// blank ids drop the leading and trailing fields of the name.
const (
	blankLeadFields  = 2
	blankTrailFields = 3
)

// width of the year and day in the date field. the month is whatever precedes them.
const (
	yearWidth = 4
	dayWidth  = 2
)

// Run directories carry the sequencer run name and the run/batch id as fields.
const (
	RunNamePrefix = "S5XL"
	RunIDPrefix   = "RD"
)

// Kind tells samples from blanks.
type Kind int

const (
	Blank Kind = iota
	Sample
)

func (k Kind) String() string {
	if k == Sample {
		return "sample"
	}
	return "blank"
}
