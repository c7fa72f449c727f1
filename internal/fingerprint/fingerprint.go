// Package fingerprint produces order-sensitive structural fingerprints of
// item trees and keeps a small ledger of known manifest fingerprints, so the
// CLI can tell whether a manifest changed shape since it was last recorded.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/holdall/holdall/internal/inventory"
	"github.com/holdall/holdall/pkg/visit"
)

// Sum hashes the tree in depth-first order, folding in each node's depth,
// name, kind, count, and tags. Pre-order plus depth pins the exact shape, so
// any reordering or re-nesting changes the result. Returned as 16 hex chars.
func Sum(root *inventory.Item) string {
	h := xxhash.New()
	depth := map[*inventory.Item]int{}
	visit.WalkWithParent(root, func(n, p *inventory.Item) visit.Response {
		d := 0
		if p != nil {
			d = depth[p] + 1
		}
		depth[n] = d
		writeNode(h, n, d)
		return visit.Next
	})
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeNode(w io.Writer, n *inventory.Item, depth int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(depth))
	_, _ = w.Write(buf[:])
	_, _ = io.WriteString(w, n.Name)
	_, _ = w.Write([]byte{0})
	_, _ = io.WriteString(w, n.Kind)
	_, _ = w.Write([]byte{0})
	binary.LittleEndian.PutUint64(buf[:], uint64(n.Units()))
	_, _ = w.Write(buf[:])
	for _, t := range n.Tags {
		_, _ = io.WriteString(w, t)
		_, _ = w.Write([]byte{0})
	}
	_, _ = w.Write([]byte{0xff})
}
