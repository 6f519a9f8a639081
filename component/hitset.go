package component

// HitSet is a bitset of actor ids already struck by a single projectile instance
type HitSet struct {
	words []uint64
}

// Has reports whether id was recorded
func (h *HitSet) Has(id ActorID) bool {
	if id < 0 {
		return false
	}
	w := int(id) >> 6
	if w >= len(h.words) {
		return false
	}
	return h.words[w]&(1<<(uint(id)&63)) != 0
}

// Add records id, returns false if it was already present
func (h *HitSet) Add(id ActorID) bool {
	if id < 0 || h.Has(id) {
		return false
	}
	w := int(id) >> 6
	for len(h.words) <= w {
		h.words = append(h.words, 0)
	}
	h.words[w] |= 1 << (uint(id) & 63)
	return true
}

// Len returns the number of recorded ids
func (h *HitSet) Len() int {
	n := 0
	for _, w := range h.words {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy
func (h HitSet) Clone() HitSet {
	if len(h.words) == 0 {
		return HitSet{}
	}
	words := make([]uint64, len(h.words))
	copy(words, h.words)
	return HitSet{words: words}
}
