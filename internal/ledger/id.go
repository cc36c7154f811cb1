package ledger

import (
	"strconv"
	"time"
)

// idGenerator issues tx_<unix ms> identifiers, adding a _<n> suffix when
// several transactions land in the same millisecond. A regressing clock is
// pinned to the last seen millisecond so ids never repeat.
type idGenerator struct {
	lastMs   int64
	sequence uint64
}

func (g *idGenerator) next(now time.Time) string {
	ms := now.UnixMilli()
	if ms < g.lastMs {
		ms = g.lastMs
	}
	if ms == g.lastMs {
		g.sequence++
	} else {
		g.sequence = 0
	}
	g.lastMs = ms

	id := "tx_" + strconv.FormatInt(ms, 10)
	if g.sequence > 0 {
		id += "_" + strconv.FormatUint(g.sequence, 10)
	}
	return id
}
