package newsdata

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/newsdata/blobstore"
	"github.com/hupe1980/newsdata/testutil"
)

// rangeStore serves blobs only through ranged reads, like a remote object
// store without a bulk download path.
type rangeStore struct {
	blobs  map[string][]byte
	ranges atomic.Int32
	served atomic.Int64
}

func newRangeStore(blobs map[string][]byte) *rangeStore {
	return &rangeStore{blobs: blobs}
}

func (s *rangeStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := s.blobs[name]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return &rangeBlob{data: data, store: s}, nil
}

type rangeBlob struct {
	data  []byte
	store *rangeStore
}

func (b *rangeBlob) Size() int64  { return int64(len(b.data)) }
func (b *rangeBlob) Close() error { return nil }

func (b *rangeBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *rangeBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	b.store.ranges.Add(1)
	end := min(off+length, int64(len(b.data)))
	return io.NopCloser(&countingReader{r: bytes.NewReader(b.data[off:end]), n: &b.store.served}), nil
}

type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

// fetchStore adds a whole-object download on top of rangeStore.
type fetchStore struct {
	*rangeStore
	fetches atomic.Int32
	err     error
}

var _ blobstore.Fetcher = (*fetchStore)(nil)

func (s *fetchStore) Fetch(_ context.Context, name string) ([]byte, error) {
	s.fetches.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.blobs[name]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	s.served.Add(int64(len(data)))
	return bytes.Clone(data), nil
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func shardFixtures(t *testing.T) (map[string][]byte, []Sample) {
	t.Helper()
	first := testutil.CSV([]string{"title", "up_votes"}, []string{"a", "5"}, []string{"b", "10"})
	second := testutil.CSV([]string{"up_votes", "title"}, []string{"2", "c"})

	return map[string][]byte{
		"part-0.csv.gz": gzipped(t, first),
		"part-1.csv":    second,
	}, []Sample{{"a", Popular}, {"b", Popular}, {"c", NotPopular}}
}

func TestLoadAll_FetchStore(t *testing.T) {
	blobs, want := shardFixtures(t)
	store := &fetchStore{rangeStore: newRangeStore(blobs)}

	ds, err := LoadAll(context.Background(), store, []string{"part-0.csv.gz", "part-1.csv"}, 5)
	require.NoError(t, err)

	assert.Equal(t, want, samples(t, ds))
	assert.Equal(t, int32(2), store.fetches.Load())
	assert.Zero(t, store.ranges.Load())
}

func TestLoadAll_RangeStore(t *testing.T) {
	blobs, want := shardFixtures(t)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	blobs["part-2.csv.zst"] = enc.EncodeAll(testutil.CSV([]string{"title", "up_votes"}, []string{"d", "7"}), nil)
	require.NoError(t, enc.Close())
	want = append(want, Sample{"d", Popular})

	store := newRangeStore(blobs)
	ds, err := LoadAll(context.Background(), store, []string{"part-0.csv.gz", "part-1.csv", "part-2.csv.zst"}, 5)
	require.NoError(t, err)

	assert.Equal(t, want, samples(t, ds))
	assert.Equal(t, int32(3), store.ranges.Load())
}

func TestLoad_FetchError(t *testing.T) {
	blobs, _ := shardFixtures(t)
	cause := errors.New("connection reset by peer")
	store := &fetchStore{rangeStore: newRangeStore(blobs), err: cause}

	ds, err := Load(context.Background(), store, "part-0.csv.gz", 5)
	assert.Nil(t, ds)
	require.ErrorIs(t, err, ErrSourceRead)
	assert.ErrorIs(t, err, cause)

	var sre *SourceReadError
	require.ErrorAs(t, err, &sre)
	assert.Equal(t, "part-0.csv.gz", sre.Source)
}

func TestLoad_IOLimitStreamsFetchStore(t *testing.T) {
	blobs, want := shardFixtures(t)
	store := &fetchStore{rangeStore: newRangeStore(blobs)}

	ds, err := LoadAll(context.Background(), store, []string{"part-0.csv.gz", "part-1.csv"}, 5, WithIOLimit(1<<20))
	require.NoError(t, err)

	assert.Equal(t, want, samples(t, ds))
	assert.Zero(t, store.fetches.Load())
	assert.Equal(t, int32(2), store.ranges.Load())
}

func TestLoad_IOLimitThrottlesStore(t *testing.T) {
	data := testutil.CSV([]string{"title", "up_votes"}, testutil.NewRNG(5).Headlines(100, 10)...)
	require.Greater(t, len(data), 1000)
	store := &fetchStore{rangeStore: newRangeStore(map[string][]byte{"news.csv": data})}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := Load(ctx, store, "news.csv", 5, WithIOLimit(100))
	require.ErrorIs(t, err, ErrSourceRead)

	assert.Zero(t, store.fetches.Load())
	assert.Less(t, store.served.Load(), int64(len(data)))
}

func TestLoad_MemoryLimitCountsStoredBytes(t *testing.T) {
	rows := make([][]string, 2000)
	for i := range rows {
		rows[i] = []string{"Oil prices rise again", "3"}
	}
	raw := testutil.CSV([]string{"title", "up_votes"}, rows...)
	compressed := gzipped(t, raw)
	require.Less(t, len(compressed), len(raw)/10)

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "news.csv.gz", compressed))

	ds, err := Load(context.Background(), store, "news.csv.gz", 5, WithMemoryLimit(int64(len(compressed))))
	require.NoError(t, err)
	assert.Equal(t, 2000, ds.Len())
}
