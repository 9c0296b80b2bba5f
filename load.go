package newsdata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/newsdata/blobstore"
	"github.com/hupe1980/newsdata/internal/resource"
	"github.com/hupe1980/newsdata/table"
)

// Open loads the tabular file at path. The format and compression are
// inferred from the file name unless WithFormat is given.
//
// A missing, unreadable or unparseable file yields a *SourceReadError.
// A missing column or an unusable up_votes value yields a *SchemaError.
func Open(ctx context.Context, path string, threshold float64, opts ...Option) (*Dataset, error) {
	return Load(ctx, blobstore.NewLocalStore(""), path, threshold, opts...)
}

// Load loads the named source from store.
func Load(ctx context.Context, store blobstore.BlobStore, name string, threshold float64, opts ...Option) (*Dataset, error) {
	return LoadAll(ctx, store, []string{name}, threshold, opts...)
}

// LoadAll loads the named sources from store concurrently and concatenates
// them in the order given. Any failing source fails the whole call.
func LoadAll(ctx context.Context, store blobstore.BlobStore, names []string, threshold float64, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	if !validThreshold(threshold) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}

	start := time.Now()
	ds, err := loadAll(ctx, store, names, threshold, o)
	duration := time.Since(start)

	rows := 0
	if ds != nil {
		rows = ds.Len()
	}
	o.logger.LogLoad(ctx, names, rows, duration, err)
	o.metricsCollector.RecordLoad(rows, duration, err)

	if err != nil {
		return nil, err
	}
	return ds, nil
}

func loadAll(ctx context.Context, store blobstore.BlobStore, names []string, threshold float64, o options) (*Dataset, error) {
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   o.memoryLimit,
		IOLimitBytesPerSec: o.ioLimit,
	})

	parts := make([][]Record, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, name := range names {
		g.Go(func() error {
			records, err := loadRecords(gctx, store, name, rc, o)
			if err != nil {
				return err
			}
			parts[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	records := make([]Record, 0, total)
	for _, p := range parts {
		records = append(records, p...)
	}

	source := strings.Join(names, ",")
	return build(source, records, threshold, o)
}

func loadRecords(ctx context.Context, store blobstore.BlobStore, name string, rc *resource.Controller, o options) ([]Record, error) {
	log := o.logger.WithSource(name)

	t, err := readTable(ctx, store, name, rc, o)
	if err != nil {
		return nil, sourceReadError(name, err)
	}
	log.DebugContext(ctx, "table decoded", "columns", len(t.Header), "rows", t.Len())

	return selectRecords(name, t)
}

func readTable(ctx context.Context, store blobstore.BlobStore, name string, rc *resource.Controller, o options) (*table.Table, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	size := blob.Size()
	if err := rc.AcquireMemory(ctx, size); err != nil {
		return nil, err
	}
	defer rc.ReleaseMemory(size)

	// Mapped pages and ranged bodies are pulled lazily while decoding, so the
	// IO limit applies to them. A whole-object Fetch cannot be throttled and
	// is only used without an IO limit.
	var r io.Reader
	f, fetchable := store.(blobstore.Fetcher)
	switch b := blob.(type) {
	case blobstore.Mappable:
		data, err := b.Bytes()
		if err != nil {
			return nil, err
		}
		r = resource.NewRateLimitedReader(ctx, bytes.NewReader(data), rc)
	default:
		if fetchable && o.ioLimit <= 0 {
			data, err := f.Fetch(ctx, name)
			if err != nil {
				return nil, err
			}
			r = bytes.NewReader(data)
			break
		}
		body, err := blob.ReadRange(ctx, 0, size)
		if err != nil {
			return nil, err
		}
		defer func() { _ = body.Close() }()
		r = resource.NewRateLimitedReader(ctx, body, rc)
	}

	comp, base := table.CompressionFromName(name)
	format, _ := table.FormatFromName(base)
	if o.formatSet {
		format = o.format
	}

	dr, err := table.Decompress(comp, r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dr.Close() }()

	if format == table.XLSX {
		return table.ReadXLSX(dr, o.sheet)
	}
	return table.Read(dr, format)
}

// FromTable selects and validates the title and up_votes columns of an
// already decoded table.
func FromTable(t *table.Table, threshold float64, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)
	if t == nil {
		return nil, &SourceReadError{cause: table.ErrEmpty}
	}

	records, err := selectRecords("", t)
	if err != nil {
		return nil, err
	}
	return build("", records, threshold, o)
}

func selectRecords(source string, t *table.Table) ([]Record, error) {
	ti := t.Index(ColumnTitle)
	if ti < 0 {
		return nil, &SchemaError{Source: source, Column: ColumnTitle, Reason: "missing column"}
	}
	vi := t.Index(ColumnUpVotes)
	if vi < 0 {
		return nil, &SchemaError{Source: source, Column: ColumnUpVotes, Reason: "missing column"}
	}

	records := make([]Record, len(t.Rows))
	for i, row := range t.Rows {
		var title, raw string
		if ti < len(row) {
			title = row[ti]
		}
		if vi < len(row) {
			raw = row[vi]
		}

		votes, reason := parseVotes(raw)
		if reason != "" {
			return nil, &SchemaError{
				Source: source,
				Column: ColumnUpVotes,
				Row:    i + 1,
				Value:  raw,
				Reason: reason,
			}
		}
		records[i] = Record{Title: title, UpVotes: votes}
	}

	return records, nil
}

// parseVotes accepts non-negative integers, including integral decimal
// floats such as "12.0" and exponent forms such as "1e3" that spreadsheet
// exports produce. Go literal forms (hex, digit separators) are rejected.
// A non-empty reason reports why s was rejected.
func parseVotes(s string) (int64, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "empty value"
	}
	if strings.ContainsAny(s, "_xX") {
		return 0, "not a number"
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		if n < 0 {
			return 0, "negative vote count"
		}
		return n, ""
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, "value out of range"
	}

	f, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, "value out of range"
	case err != nil, math.IsNaN(f):
		return 0, "not a number"
	case math.IsInf(f, 0):
		return 0, "value out of range"
	case f != math.Trunc(f):
		return 0, "fractional vote count"
	case f < 0:
		return 0, "negative vote count"
	case f >= math.MaxInt64:
		return 0, "value out of range"
	}
	return int64(f), ""
}
