// Package idgen produces time-ordered ComponentIds: a 48-bit millisecond
// timestamp prefix followed by a process-and-counter suffix, so ids sort roughly by
// creation time while remaining unique within a request without
// coordination. Cross-request collisions are permitted by contract.
package idgen

import (
	"encoding/base32"
	"strings"
	"time"

	"github.com/rs/xid"
)

// HexEncoding's alphabet (0-9A-V) preserves byte ordering under plain
// string comparison, unlike StdEncoding's A-Z2-7; required for ids to
// stay lexicographically time-sortable.
var encoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// Generator produces ComponentIds.
type Generator struct{}

// New constructs an id Generator.
func New() *Generator { return &Generator{} }

// NewID returns a fresh, time-ordered component id. The suffix is drawn
// from xid, which already carries a monotonic per-process counter,
// cheaper than pulling fresh crypto/rand bytes for every card, table, and
// chart the emitters introduce.
func (g *Generator) NewID() string {
	ms := uint64(time.Now().UnixMilli()) & 0xFFFFFFFFFFFF // 48 bits

	var prefix [6]byte
	for i := 5; i >= 0; i-- {
		prefix[i] = byte(ms)
		ms >>= 8
	}

	suffix := xid.New().Bytes() // 12 bytes: timestamp, machine id, pid, counter

	var buf [12]byte
	copy(buf[0:6], prefix[:])
	copy(buf[6:12], suffix[6:12]) // last machine-id byte + pid + counter: unique across same-millisecond calls

	return strings.ToLower(encoding.EncodeToString(buf[:]))
}
