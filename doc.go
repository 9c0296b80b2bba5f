// Package newsdata exposes news-headline tables as labeled text datasets.
//
// Every row of a source contributes one sample: its title paired with a
// binary popularity label. A headline is Popular when its up_votes count is
// at or above the votes threshold given at construction, and NotPopular
// otherwise. The threshold is fixed for the lifetime of a Dataset.
//
// # Quick Start
//
//	ctx := context.Background()
//	ds, err := newsdata.Open(ctx, "news.csv", 5)
//	if err != nil {
//	    return err
//	}
//	for i := 0; i < ds.Len(); i++ {
//	    s, _ := ds.Get(i)
//	    fmt.Println(s.Text, s.Label)
//	}
//
// # Sources
//
// Sources are CSV, TSV or XLSX tables, optionally compressed with gzip,
// zstd, lz4 or xz. The format and compression are inferred from the name
// ("news.tsv.zst"). Only the title and up_votes columns are read.
//
// Sources can live in any blobstore.BlobStore:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("datasets/"))
//	ds, err := newsdata.LoadAll(ctx, store, []string{"part-0.csv.gz", "part-1.csv.gz"}, 5)
//
// LoadAll reads shards concurrently and keeps the order given.
//
// # Errors
//
// Construction fails with a *SourceReadError when a source cannot be read or
// decoded, and with a *SchemaError when a column is missing or an up_votes
// value is empty, non-numeric, fractional or negative. Get fails with an
// *IndexError outside [0, Len). All three match their sentinels with
// errors.Is.
//
// # Observability
//
// Logging is disabled by default; pass WithLogger to enable it.
// WithMetricsCollector reports loads and lookups, see metrics/prometheus.
package newsdata
