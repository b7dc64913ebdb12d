// Package bucket implements the Bucketed Priority Structure (BPS) of Duan et
// al.'s Lemma 3.3: a key→value map over ℝ≥0 supporting Insert,
// BatchPrepend and a bounded Pull, each amortized faster than a plain heap
// when pulled in batches of size M.
//
// The structure holds two ordered sequences of blocks — D0 (built by
// BatchPrepend, always holding the globally smallest values) followed by D1
// (built by Insert, ordered by each block's upper-value attribute and split
// when it grows past 2M entries). Concatenating every block of D0 then every
// block of D1, each internally ordered by value, yields the full key set in
// non-decreasing value order; Pull relies on exactly that property.
//
// Modeled on lvlath/dijkstra's container/heap-based runner: a small owning
// struct plus free functions operating on its slices. Decrease-key is eager:
// when a key arrives with a smaller value, its older entry is removed from
// the block that held it.
package bucket

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrBadBlockSize is returned by New when M is not positive.
var ErrBadBlockSize = errors.New("bucket: block size M must be positive")

// tol is the absolute/relative tolerance used when comparing accumulated
// path-weight sums for equality. Two float64 sums that are mathematically
// equal but reached via different edge orders can differ in their last bit;
// without a tolerant comparison the strict less-than checks below could
// treat them as distinct and let a larger value sneak into a slot a smaller,
// equal-valued key already legitimately holds.
const tol = 1e-9

func lessStrict(a, b float64) bool {
	return a < b && !scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

type pair struct {
	key   int
	value float64
}

type block struct {
	upper float64 // every value in pairs is ≤ upper
	pairs []pair  // kept sorted ascending by value
}

// BPS is one bucketed priority structure instance, local to a single BMSSP
// recursion frame (spec §5: never shared with child frames).
type BPS struct {
	m     int // block-size parameter
	bound float64

	d0 []*block // batch-prepended blocks, oldest-smallest first
	d1 []*block // insert-grown blocks, ordered by .upper ascending

	value map[int]float64 // current best value per live key
	owner map[int]*block  // which block currently holds the key
}

// New constructs an empty BPS with block size m and global upper bound B.
func New(m int, bound float64) (*BPS, error) {
	if m <= 0 {
		return nil, ErrBadBlockSize
	}
	return &BPS{
		m:     m,
		bound: bound,
		d1:    []*block{{upper: bound}},
		value: make(map[int]float64),
		owner: make(map[int]*block),
	}, nil
}

// Empty reports whether the key→value map is empty.
func (b *BPS) Empty() bool { return len(b.value) == 0 }

// Len reports the number of live keys.
func (b *BPS) Len() int { return len(b.value) }

// removeFromOwner deletes key from whichever block currently holds it and
// from both bookkeeping maps. It does not touch block-splitting state; a
// shrunk block is simply left smaller than 2m, which is always legal.
func (b *BPS) removeFromOwner(key int) {
	blk, ok := b.owner[key]
	if !ok {
		return
	}
	for i, p := range blk.pairs {
		if p.key == key {
			blk.pairs = append(blk.pairs[:i], blk.pairs[i+1:]...)
			break
		}
	}
	delete(b.owner, key)
	delete(b.value, key)
}

// Insert establishes key→value if value is below the global bound and below
// any previously recorded value for key; otherwise it is a no-op.
//
// Amortized cost: O(max(1, log(N/m))) per the paper; this implementation
// finds the target block via binary search over D1's upper bounds
// (O(log(len(D1)))) and performs an O(block size) sorted insert, splitting
// whenever a block exceeds 2m.
func (b *BPS) Insert(key int, value float64) {
	if value >= b.bound {
		return
	}
	if cur, ok := b.value[key]; ok {
		if !lessStrict(value, cur) {
			return
		}
		b.removeFromOwner(key)
	}

	if len(b.d1) == 0 {
		// Pull can drain D1 down to nothing; restore the catch-all block
		// whose upper bound is the structure's global bound.
		b.d1 = append(b.d1, &block{upper: b.bound})
	}

	// Binary search: first D1 block whose upper bound is ≥ value.
	idx := sort.Search(len(b.d1), func(i int) bool { return b.d1[i].upper >= value })
	if idx == len(b.d1) {
		// Defensive: should not happen since the last block's upper is
		// always b.bound and value < b.bound was already checked above.
		idx = len(b.d1) - 1
	}
	blk := b.d1[idx]

	pos := sort.Search(len(blk.pairs), func(i int) bool { return blk.pairs[i].value >= value })
	blk.pairs = append(blk.pairs, pair{})
	copy(blk.pairs[pos+1:], blk.pairs[pos:])
	blk.pairs[pos] = pair{key: key, value: value}

	b.value[key] = value
	b.owner[key] = blk

	if len(blk.pairs) > 2*b.m {
		b.splitD1(idx)
	}
}

// splitD1 splits b.d1[idx] at its median value into two blocks: a new left
// block covering the lower half (upper = median value) inserted just before
// the original block, which keeps its own upper bound and the upper half.
func (b *BPS) splitD1(idx int) {
	blk := b.d1[idx]
	mid := len(blk.pairs) / 2

	left := &block{
		upper: blk.pairs[mid-1].value,
		pairs: append([]pair(nil), blk.pairs[:mid]...),
	}
	blk.pairs = blk.pairs[mid:]

	for _, p := range left.pairs {
		b.owner[p.key] = left
	}

	b.d1 = append(b.d1, nil)
	copy(b.d1[idx+1:], b.d1[idx:])
	b.d1[idx] = left
}

// Pair is one (key, value) binding returned by BatchPrepend's caller and
// consumed internally; exported so driver code can build the input slice.
type Pair struct {
	Key   int
	Value float64
}

// BatchPrepend admits a batch of pairs whose values the caller asserts are
// all strictly below any value currently stored. Pairs are deduplicated on
// key (smallest value wins) and packed into ⌈len(pairs)/m⌉ new blocks placed
// at the head of D0, each internally sorted by value.
//
// Amortized cost: O(L · max(1, log(L/m))) for L input pairs.
func (b *BPS) BatchPrepend(pairs []Pair) {
	if len(pairs) == 0 {
		return
	}

	best := make(map[int]float64, len(pairs))
	for _, p := range pairs {
		if cur, ok := best[p.Key]; !ok || p.Value < cur {
			best[p.Key] = p.Value
		}
	}

	deduped := make([]pair, 0, len(best))
	for k, v := range best {
		deduped = append(deduped, pair{key: k, value: v})
	}
	sort.Slice(deduped, func(i, j int) bool { return deduped[i].value < deduped[j].value })

	// A key might already live in the structure at a larger value (e.g. it
	// was inserted into D1 earlier in this same level before being
	// re-relaxed below the next level's bound); invariant (i) requires it
	// to appear only once, at its smallest value.
	for _, p := range deduped {
		b.removeFromOwner(p.key)
	}

	nBlocks := (len(deduped) + b.m - 1) / b.m
	newBlocks := make([]*block, 0, nBlocks)
	for i := 0; i < len(deduped); i += b.m {
		end := i + b.m
		if end > len(deduped) {
			end = len(deduped)
		}
		chunk := append([]pair(nil), deduped[i:end]...)
		blk := &block{upper: chunk[len(chunk)-1].value, pairs: chunk}
		for _, p := range chunk {
			b.value[p.key] = p.value
			b.owner[p.key] = blk
		}
		newBlocks = append(newBlocks, blk)
	}

	b.d0 = append(newBlocks, b.d0...)
}

// Pull removes and returns up to count keys with the smallest values,
// together with a separator B': every returned key has value ≤ B', every
// key remaining in the structure has value ≥ B'. If the structure becomes
// empty, B' is the structure's original global bound.
//
// Amortized cost: O(count).
func (b *BPS) Pull(count int) ([]int, float64) {
	if count <= 0 || b.Empty() {
		return nil, b.bound
	}

	keys := make([]int, 0, count)
	remaining := count
	var lastValue float64
	haveLast := false

	drainFrom := func(blocks *[]*block) {
		for remaining > 0 && len(*blocks) > 0 {
			blk := (*blocks)[0]
			if len(blk.pairs) <= remaining {
				for _, p := range blk.pairs {
					keys = append(keys, p.key)
					lastValue, haveLast = p.value, true
					delete(b.value, p.key)
					delete(b.owner, p.key)
				}
				remaining -= len(blk.pairs)
				*blocks = (*blocks)[1:]
				continue
			}
			taken := blk.pairs[:remaining]
			for _, p := range taken {
				keys = append(keys, p.key)
				lastValue, haveLast = p.value, true
				delete(b.value, p.key)
				delete(b.owner, p.key)
			}
			blk.pairs = blk.pairs[remaining:]
			remaining = 0
		}
	}

	drainFrom(&b.d0)
	drainFrom(&b.d1)

	if b.Empty() {
		return keys, b.bound
	}
	if !haveLast {
		return keys, b.bound
	}
	return keys, lastValue
}
