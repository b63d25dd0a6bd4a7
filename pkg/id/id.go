// Package id hands out run identifiers. Runs are keyed by ULID so that
// sorting ids sorts runs by start time.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces increasing ULIDs. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a generator reading time from now and randomness from
// src. A nil now means time.Now.
func NewGenerator(now func() time.Time, src io.Reader) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, entropy: ulid.Monotonic(src, 0)}
}

// Next returns the next id.
func (g *Generator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var std = func() *Generator {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(nil, rand.New(rand.NewSource(seed)))
}()

// New returns a fresh run id. It panics only if the clock goes backwards
// past the ULID epoch.
func New() string {
	s, err := std.Next()
	if err != nil {
		panic(err)
	}
	return s
}

// Time reports when id was generated.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()).UTC(), nil
}
