package newsdata

import (
	"math"
	"strconv"
)

// Column names selected from every source. Other columns are ignored.
const (
	ColumnTitle   = "title"
	ColumnUpVotes = "up_votes"
)

// Label is the binary popularity class of a headline.
type Label uint8

const (
	// NotPopular marks a headline below the votes threshold.
	NotPopular Label = 0
	// Popular marks a headline at or above the votes threshold.
	Popular Label = 1
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case NotPopular:
		return "not_popular"
	case Popular:
		return "popular"
	default:
		return "label(" + strconv.Itoa(int(l)) + ")"
	}
}

// Classify applies the popularity rule. The bound is inclusive:
// upVotes == threshold is Popular. The comparison is exact for every int64.
func Classify(upVotes int64, threshold float64) Label {
	switch {
	case math.IsNaN(threshold):
		return NotPopular
	case threshold <= math.MinInt64:
		return Popular
	case threshold >= math.MaxInt64: // 2^63 as float64
		return NotPopular
	}
	if upVotes >= int64(math.Ceil(threshold)) {
		return Popular
	}
	return NotPopular
}

// Record is one validated source row.
type Record struct {
	Title   string
	UpVotes int64
}

// Sample is the (text, label) pair served to consumers.
type Sample struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// Source is the indexed sequence consumed by samplers, batchers and
// training loops.
type Source interface {
	// Len returns the number of samples.
	Len() int
	// Get returns the sample at index, or an *IndexError.
	Get(index int) (Sample, error)
}

func validThreshold(threshold float64) bool {
	return !math.IsNaN(threshold)
}
