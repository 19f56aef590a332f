package orca

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// GraphDigest returns a 64-bit hash of G's node count and canonical edge set.
// Two graphs that differ only in edge listing order or endpoint order share a digest.
func GraphDigest(G Graph) uint64 {
	edges := make([]Edge, 0, G.NumEdges())
	for _, e := range G.Edges() {
		edges = append(edges, e.Canonic())
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	var buf [binary.MaxVarintLen64]byte
	d := xxhash.New()
	put := func(v int) {
		n := binary.PutUvarint(buf[:], uint64(v))
		d.Write(buf[:n])
	}
	put(G.NumNodes())
	put(len(edges))
	for _, e := range edges {
		put(e.A)
		put(e.B)
	}
	return d.Sum64()
}
