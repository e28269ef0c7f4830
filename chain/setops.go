package chain

// The set operations below compare keys only. Whenever a key is present on both sides, the value held by the
// receiver (or the left operand) is the one kept.

// UnionWith - Appends every key of other that is not already present, together with other's value
func (C *Chain[K, V]) UnionWith(other *Chain[K, V]) {
	for _, e := range other.Entries() {
		if !C.Has(e.Key) {
			C.Upsert(e.Key, e.Value)
		}
	}
}

// DifferenceWith - Removes every key that is present in other. Keys of other missing in the chain are ignored.
func (C *Chain[K, V]) DifferenceWith(other *Chain[K, V]) {
	for _, key := range other.Keys() {
		_, _ = C.Remove(key)
	}
}

// IntersectWith - Removes every key that is not present in other
func (C *Chain[K, V]) IntersectWith(other *Chain[K, V]) {
	var prev *node[K, V]
	n := C.head
	for n != nil {
		next := n.next
		if other.Has(n.key) {
			prev = n
		} else {
			if prev == nil {
				C.head = next
			} else {
				prev.next = next
			}
			n.next = nil
			C.size--
		}
		n = next
	}
}

// Equal - Returns true if both chains have the same size and every key maps to an equal value in both.
// Node order is not compared.
func (C *Chain[K, V]) Equal(other *Chain[K, V]) bool {
	if C.size != other.size {
		return false
	}

	for n := C.head; n != nil; n = n.next {
		o := other.find(n.key)
		if o == nil || o.value != n.value {
			return false
		}
	}

	return true
}

// Union - Returns a new chain holding all entries of a followed by the entries of b whose keys are not in a
func Union[K comparable, V comparable](a, b *Chain[K, V]) *Chain[K, V] {
	c := a.Clone()
	c.UnionWith(b)
	return c
}

// Difference - Returns a new chain holding the entries of a whose keys are not in b
func Difference[K comparable, V comparable](a, b *Chain[K, V]) *Chain[K, V] {
	c := a.Clone()
	c.DifferenceWith(b)
	return c
}

// Intersection - Returns a new chain holding the entries of a whose keys are also in b
func Intersection[K comparable, V comparable](a, b *Chain[K, V]) *Chain[K, V] {
	c := a.Clone()
	c.IntersectWith(b)
	return c
}
