package table

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const compressionPayload = "title,up_votes\na,5\nb,10\nc,2\n"

func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case None:
		return data
	case Gzip:
		w = gzip.NewWriter(&buf)
	case Zstd:
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = enc
	case LZ4:
		w = lz4.NewWriter(&buf)
	case XZ:
		xw, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		w = xw
	}

	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress_RoundTrip(t *testing.T) {
	for _, c := range []Compression{None, Gzip, Zstd, LZ4, XZ} {
		t.Run(c.String(), func(t *testing.T) {
			compressed := compress(t, c, []byte(compressionPayload))

			rc, err := Decompress(c, bytes.NewReader(compressed))
			require.NoError(t, err)
			defer rc.Close()

			tbl, err := ReadCSV(rc, ',')
			require.NoError(t, err)
			require.Equal(t, 3, tbl.Len())
			require.Equal(t, []string{"b", "10"}, tbl.Rows[1])
		})
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	_, err := Decompress(Gzip, bytes.NewReader([]byte("plain text")))
	require.Error(t, err)
}
