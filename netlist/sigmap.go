// This file implements SigMap, the alias resolver that collapses
// electrically-equivalent signal bits into one canonical representative
// per equivalence class.

package netlist

import "fmt"

// SigMap resolves SigBits to canonical equivalence-class representatives.
// Two bits resolve to the same representative exactly when the module's
// internal connections make them the same net.
//
// Representative choice follows two rules: a constant bit always
// represents its class (a net tied to a constant is that constant), and
// otherwise the representative of the From side of the merge wins.
// Which wire bit represents a constant-free class is not observable
// downstream (only class membership is), but it stays stable for the
// lifetime of the SigMap.
//
// Canonical memoizes lookups (path compression), so a SigMap must not be
// shared across goroutines.
type SigMap struct {
	parent map[SigBit]SigBit
}

// NewSigMap builds a resolver seeded with all internal connections of m.
// A nil module yields an empty resolver that maps every bit to itself.
// Complexity: near O(total connection bits).
func NewSigMap(m *Module) *SigMap {
	sm := &SigMap{parent: make(map[SigBit]SigBit)}
	if m == nil {
		return sm
	}
	for _, conn := range m.conns {
		// Widths were validated by Connect; Add re-checks to stay safe
		// for hand-built connection lists.
		_ = sm.Add(conn.From, conn.To)
	}

	return sm
}

// Add merges the equivalence classes of from[i] and to[i] for every bit
// position. Merging two distinct constants is skipped: distinct constants
// are never electrically equal, and a class can contain at most one.
// Returns ErrWidthMismatch when the sides differ in bit count.
// Complexity: near O(len(from)).
func (sm *SigMap) Add(from, to SigSpec) error {
	if len(from) != len(to) {
		return fmt.Errorf("%w: %d vs %d bits", ErrWidthMismatch, len(from), len(to))
	}
	for i := range from {
		bf := sm.Canonical(from[i])
		bt := sm.Canonical(to[i])
		if bf == bt {
			continue
		}
		switch {
		case bf.IsConst() && bt.IsConst():
			// distinct constants: leave both classes untouched
		case bt.IsConst():
			sm.parent[bf] = bt
		case bf.IsConst():
			sm.parent[bt] = bf
		default:
			sm.parent[bt] = bf
		}
	}

	return nil
}

// Canonical returns the representative of b's equivalence class. Bits
// never mentioned in any connection represent themselves. Resolution is
// deterministic and idempotent.
// Complexity: amortized near O(1).
func (sm *SigMap) Canonical(b SigBit) SigBit {
	root := b
	for {
		p, ok := sm.parent[root]
		if !ok {
			break
		}
		root = p
	}
	// Point every bit on the walked chain directly at the root.
	for b != root {
		next := sm.parent[b]
		sm.parent[b] = root
		b = next
	}

	return root
}

// CanonicalSpec maps every bit of s through Canonical, preserving order.
// Complexity: near O(len(s)).
func (sm *SigMap) CanonicalSpec(s SigSpec) SigSpec {
	out := make(SigSpec, len(s))
	for i, b := range s {
		out[i] = sm.Canonical(b)
	}

	return out
}
