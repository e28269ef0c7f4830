package chainhashmap

// The table level set operations mirror those of chain.Chain: keys are compared, and for a key present on
// both sides the receiver's value is kept.

// UnionWith - Inserts every key of other that is not already present, together with other's value
func (H *HashMap[K, V]) UnionWith(other *HashMap[K, V]) {
	for _, e := range other.Entries() {
		if !H.ContainsKey(e.Key) {
			H.Insert(e.Key, e.Value)
		}
	}
}

// DifferenceWith - Removes every key that is present in other
func (H *HashMap[K, V]) DifferenceWith(other *HashMap[K, V]) {
	for _, key := range other.Keys() {
		_, _ = H.Remove(key)
	}
}

// IntersectWith - Removes every key that is not present in other
func (H *HashMap[K, V]) IntersectWith(other *HashMap[K, V]) {
	for _, key := range H.Keys() {
		if !other.ContainsKey(key) {
			_, _ = H.Remove(key)
		}
	}
}

// Equal - Returns true if both hash maps hold the same number of entries and every key maps to an equal value
// in both. Capacity and threshold are not compared.
func (H *HashMap[K, V]) Equal(other *HashMap[K, V]) bool {
	if H.size != other.size {
		return false
	}

	for _, e := range H.Entries() {
		v, err := other.Get(e.Key)
		if err != nil || v != e.Value {
			return false
		}
	}

	return true
}
