package chainhashmap

import (
	"fmt"

	"github.com/gostonefire/chainhashmap/chain"
	"github.com/gostonefire/chainhashmap/hmerrors"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
)

// Insert - Updates the value of an existing key or adds the key if not already present.
// When a new key is added the load factor is checked against the load factor threshold, and the hash map is
// rehashed until it is below it again. A single insert can double the capacity more than once, e.g. capacity 1
// with threshold 0.1 ends up with 16 buckets after the first key. Updates never rehash.
//   - key is the key to insert or update
//   - value is the value to store along with the key
func (H *HashMap[K, V]) Insert(key K, value V) {
	if H.buckets[H.BucketIndex(key)].Upsert(key, value) != chain.Inserted {
		return
	}

	H.size++
	for H.reachesThreshold(H.size) {
		H.Rehash()
	}
}

// Get - Gets the value that corresponds to the given key.
//   - key is the key to look for
//
// It returns:
//   - value is the value stored for the key
//   - err is of type hmerrors.KeyNotFound if the key is not present
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	return H.buckets[H.BucketIndex(key)].Get(key)
}

// Ref - Returns a pointer to the value stored for the key so that it can be updated in place.
// The pointer stays valid until the key is removed, the hash map is cleared or rehashed.
//   - key is the key to look for
//
// It returns:
//   - value is a pointer to the stored value
//   - err is of type hmerrors.KeyNotFound if the key is not present
func (H *HashMap[K, V]) Ref(key K) (value *V, err error) {
	return H.buckets[H.BucketIndex(key)].Ref(key)
}

// Remove - Removes the key from the hash map and returns its value.
// If the key is not present the hash map is left untouched.
//   - key is the key to remove
//
// It returns:
//   - value is the value that was stored for the key
//   - err is of type hmerrors.KeyNotFound if the key is not present
func (H *HashMap[K, V]) Remove(key K) (value V, err error) {
	value, err = H.buckets[H.BucketIndex(key)].Remove(key)
	if err != nil {
		return
	}

	H.size--

	return
}

// ContainsKey - Returns true if the key is present
func (H *HashMap[K, V]) ContainsKey(key K) bool {
	return H.buckets[H.BucketIndex(key)].Has(key)
}

// ContainsValue - Returns true if any key maps to a value equal to the given value.
// This walks every bucket.
func (H *HashMap[K, V]) ContainsValue(value V) bool {
	for _, bucket := range H.buckets {
		if bucket.HasValue(value) {
			return true
		}
	}

	return false
}

// IsEmpty - Returns true if the hash map holds no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.size == 0
}

// Size - Returns the number of entries
func (H *HashMap[K, V]) Size() int {
	return H.size
}

// Capacity - Returns the current number of buckets
func (H *HashMap[K, V]) Capacity() int {
	return H.capacity
}

// LoadFactorThreshold - Returns the load factor threshold given at construction
func (H *HashMap[K, V]) LoadFactorThreshold() float64 {
	return H.loadFactorThreshold
}

// LoadFactor - Returns the current number of entries divided by the number of buckets
func (H *HashMap[K, V]) LoadFactor() float64 {
	return float64(H.size) / float64(H.capacity)
}

// Entries - Returns a snapshot of all entries, bucket by bucket and within a bucket in insertion order
func (H *HashMap[K, V]) Entries() []chain.Entry[K, V] {
	entries := make([]chain.Entry[K, V], 0, H.size)
	for _, bucket := range H.buckets {
		entries = append(entries, bucket.Entries()...)
	}

	return entries
}

// Keys - Returns a snapshot of all keys in the same order as Entries
func (H *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, H.size)
	for _, bucket := range H.buckets {
		keys = append(keys, bucket.Keys()...)
	}

	return keys
}

// Values - Returns a snapshot of all values in the same order as Entries
func (H *HashMap[K, V]) Values() []V {
	values := make([]V, 0, H.size)
	for _, bucket := range H.buckets {
		values = append(values, bucket.Values()...)
	}

	return values
}

// Clear - Removes all entries. Capacity and load factor threshold are kept.
func (H *HashMap[K, V]) Clear() {
	for _, bucket := range H.buckets {
		bucket.Clear()
	}
	H.size = 0

	H.logger.Debug().Int("capacity", H.capacity).Msg("hash map cleared")
}

// Rehash - Doubles the number of buckets and reinserts every entry, each one into the bucket given by its key
// under the new capacity. The old bucket array is dropped once all entries have been extracted from it.
func (H *HashMap[K, V]) Rehash() {
	entries := H.Entries()
	oldCapacity := H.capacity

	H.capacity = H.capacity * conf.GrowthFactor
	H.buckets = newBuckets[K, V](H.capacity)
	H.size = 0

	for _, e := range entries {
		if H.buckets[H.BucketIndex(e.Key)].Upsert(e.Key, e.Value) == chain.Inserted {
			H.size++
		}
	}

	H.logger.Debug().
		Int("oldCapacity", oldCapacity).
		Int("capacity", H.capacity).
		Int("entries", H.size).
		Msg("hash map rehashed")
}

// BucketIndex - Returns which bucket number that the given key results in, it is between 0 and Capacity - 1
//   - key is the key to locate
func (H *HashMap[K, V]) BucketIndex(key K) int {
	return hash.BucketIndex(hash.KeyHash(key), H.capacity)
}

// GetBucket - Returns an iterator over the entries of one bucket
//   - bucketNo is the identifier of a bucket, the number for a key can be retrieved by call to BucketIndex
//
// It returns:
//   - iter is a chain.Iterator walking the bucket in insertion order
//   - err is of type hmerrors.BucketOutOfRange if bucketNo is outside 0 to Capacity - 1
func (H *HashMap[K, V]) GetBucket(bucketNo int) (iter *chain.Iterator[K, V], err error) {
	if bucketNo < 0 || bucketNo >= H.capacity {
		err = hmerrors.NewBucketOutOfRange(
			fmt.Sprintf("bucket number %d is outside permitted range 0 to %d", bucketNo, H.capacity-1))
		return
	}

	iter = H.buckets[bucketNo].Iterator()

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	hashMapStat.Capacity = H.capacity
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int, H.capacity)
	}

	for i, bucket := range H.buckets {
		n := bucket.Size()
		hashMapStat.Records += n
		if n == 0 {
			hashMapStat.EmptyBuckets++
		}
		if n > hashMapStat.LongestChain {
			hashMapStat.LongestChain = n
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = n
		}
	}

	hashMapStat.LoadFactor = float64(hashMapStat.Records) / float64(H.capacity)

	return
}

// reachesThreshold - Returns true if holding the given number of entries would make the load factor reach
// the load factor threshold under the current capacity
func (H *HashMap[K, V]) reachesThreshold(entries int) bool {
	return float64(entries)/float64(H.capacity) >= H.loadFactorThreshold
}
