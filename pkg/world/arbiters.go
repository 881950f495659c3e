package world

import (
	"github.com/cespare/xxhash/v2"

	"github.com/koteyur/impulse2d/pkg/collision"
	"github.com/koteyur/impulse2d/pkg/dynamics"
)

// arbiterTable keeps the arbiter of every overlapping pair between steps.
// Buckets are keyed by a hash of both body IDs; lookups compare the bodies,
// so two pairs sharing a hash never share an arbiter.
type arbiterTable map[uint64][]*collision.Arbiter

// pairKey hashes an ordered body pair.
func pairKey(a, b *dynamics.Body) uint64 {
	d := xxhash.New()
	_, _ = d.Write(a.ID[:])
	_, _ = d.Write(b.ID[:])
	return d.Sum64()
}

func (t arbiterTable) find(a, b *dynamics.Body) *collision.Arbiter {
	for _, arb := range t[pairKey(a, b)] {
		if arb.A == a && arb.B == b {
			return arb
		}
	}
	return nil
}

func (t arbiterTable) put(arb *collision.Arbiter) {
	key := pairKey(arb.A, arb.B)
	t[key] = append(t[key], arb)
}

// retain drops every arbiter keep rejects, and empty buckets with them.
func (t arbiterTable) retain(keep func(*collision.Arbiter) bool) {
	for key, bucket := range t {
		kept := bucket[:0]
		for _, arb := range bucket {
			if keep(arb) {
				kept = append(kept, arb)
			}
		}
		if len(kept) == 0 {
			delete(t, key)
			continue
		}
		t[key] = kept
	}
}
