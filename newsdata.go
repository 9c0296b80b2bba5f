package newsdata

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Dataset is an immutable, indexed view of labeled headlines.
// It is safe for concurrent use by multiple goroutines.
type Dataset struct {
	records   []Record
	threshold float64
	popular   *roaring.Bitmap

	metrics MetricsCollector
}

var _ Source = (*Dataset)(nil)

// Stats summarizes the class balance of a dataset.
type Stats struct {
	Total      int
	Popular    int
	NotPopular int
}

// New builds a dataset from already-typed records. The slice is copied.
func New(records []Record, threshold float64, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	return build("", append([]Record(nil), records...), threshold, o)
}

// build takes ownership of records.
func build(source string, records []Record, threshold float64, o options) (*Dataset, error) {
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	popular := roaring.New()
	for i, r := range records {
		if r.UpVotes < 0 {
			return nil, &SchemaError{
				Source: source,
				Column: ColumnUpVotes,
				Row:    i + 1,
				Value:  fmt.Sprint(r.UpVotes),
				Reason: "negative vote count",
			}
		}
		if Classify(r.UpVotes, threshold) == Popular {
			popular.Add(uint32(i))
		}
	}
	popular.RunOptimize()

	return &Dataset{
		records:   records,
		threshold: threshold,
		popular:   popular,
		metrics:   o.metricsCollector,
	}, nil
}

// Len returns the number of samples. It never changes.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Get returns the sample at index. The label is derived from the stored
// vote count and the threshold the dataset was built with.
func (d *Dataset) Get(index int) (Sample, error) {
	if index < 0 || index >= len(d.records) {
		err := &IndexError{Index: index, Len: len(d.records)}
		d.metrics.RecordGet(err)
		return Sample{}, err
	}

	r := d.records[index]
	d.metrics.RecordGet(nil)
	return Sample{Text: r.Title, Label: Classify(r.UpVotes, d.threshold)}, nil
}

// Record returns the raw record at index.
func (d *Dataset) Record(index int) (Record, error) {
	if index < 0 || index >= len(d.records) {
		return Record{}, &IndexError{Index: index, Len: len(d.records)}
	}
	return d.records[index], nil
}

// Threshold returns the votes threshold captured at construction.
func (d *Dataset) Threshold() float64 {
	return d.threshold
}

// Stats returns the class balance.
func (d *Dataset) Stats() Stats {
	p := int(d.popular.GetCardinality())
	return Stats{
		Total:      len(d.records),
		Popular:    p,
		NotPopular: len(d.records) - p,
	}
}

// Indices returns the indices carrying label. The bitmap is a copy the
// caller may modify.
func (d *Dataset) Indices(label Label) *roaring.Bitmap {
	switch label {
	case Popular:
		return d.popular.Clone()
	case NotPopular:
		return roaring.Flip(d.popular, 0, uint64(len(d.records)))
	default:
		return roaring.New()
	}
}
