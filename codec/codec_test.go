package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Text  string `json:"text"`
	Label uint8  `json:"label"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	v := sample{Text: `Japan "resumes" refuelling mission`, Label: 1}

	std, err := JSON{}.Marshal(v)
	require.NoError(t, err)
	fast, err := GoJSON{}.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, string(std), string(fast))

	var got sample
	require.NoError(t, GoJSON{}.Unmarshal(std, &got))
	assert.Equal(t, v, got)
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, nil, sample{Text: "a", Label: 1}))
	require.NoError(t, WriteLine(&buf, JSON{}, sample{Text: "b"}))

	assert.Equal(t, "{\"text\":\"a\",\"label\":1}\n{\"text\":\"b\",\"label\":0}\n", buf.String())
}

func TestWriteLine_MarshalError(t *testing.T) {
	err := WriteLine(&bytes.Buffer{}, JSON{}, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codec json marshal failed")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteLine_WriteError(t *testing.T) {
	assert.EqualError(t, WriteLine(failingWriter{}, GoJSON{}, sample{}), "closed")
}

func BenchmarkCodec_Marshal(b *testing.B) {
	v := sample{Text: "Pakistan rejects ceasefire", Label: 1}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Marshal(v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
