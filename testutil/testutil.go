package testutil

import (
	"bytes"
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

var (
	subjects = []string{"Pakistan", "Japan", "Kenya", "EU", "Brazil", "UN", "Oil prices", "Scientists", "Court", "Parliament"}
	verbs    = []string{"rejects", "resumes", "warns", "backs", "delays", "launches", "probes", "blocks", "approves", "condemns"}
	objects  = []string{"ceasefire", "refuelling mission", "climate deal", "election result", "trade talks", "bailout", "vaccine trial", "border plan", "new sanctions", "peace summit"}
)

// Headline returns a synthetic news title.
func (r *RNG) Headline() string {
	return strings.Join([]string{
		subjects[r.Intn(len(subjects))],
		verbs[r.Intn(len(verbs))],
		objects[r.Intn(len(objects))],
	}, " ")
}

// Headlines returns n rows of [title, up_votes] with votes in [0, maxVotes].
func (r *RNG) Headlines(n, maxVotes int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{r.Headline(), strconv.Itoa(r.Intn(maxVotes + 1))}
	}
	return rows
}

// CSV encodes a header and rows as RFC 4180 text.
func CSV(header []string, rows ...[]string) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(header)
	_ = w.WriteAll(rows)
	return buf.Bytes()
}

// WriteFile writes data to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
