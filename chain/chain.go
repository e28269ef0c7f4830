package chain

import (
	"fmt"
	"strings"

	"github.com/gostonefire/chainhashmap/hmerrors"
)

// Result - Outcome of an Upsert
type Result int

const (
	// Updated - The key already existed and its value was replaced in place
	Updated Result = iota
	// Inserted - The key was new and a node was appended to the chain
	Inserted
)

// Entry - Represents one key/value pair extracted from a chain
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// node - One key/value pair in a chain, owned by the chain head or by its predecessor
type node[K comparable, V comparable] struct {
	key   K
	value V
	next  *node[K, V]
}

// Chain - A singly linked list of key/value nodes with unique keys, kept in insertion order.
// It represents the contents of one bucket in a hash map.
// The zero value is an empty chain ready to use.
type Chain[K comparable, V comparable] struct {
	size int
	head *node[K, V]
}

// New - Returns a pointer to a new empty Chain
func New[K comparable, V comparable]() *Chain[K, V] {
	return &Chain[K, V]{}
}

// Get - Gets the value that corresponds to the given key.
//   - key is the key to look for
//
// It returns:
//   - value is the value of the first node with a matching key
//   - err is of type hmerrors.KeyNotFound if no node has the key
func (C *Chain[K, V]) Get(key K) (value V, err error) {
	n := C.find(key)
	if n == nil {
		err = hmerrors.KeyNotFound{}
		return
	}

	value = n.value
	return
}

// Ref - Returns a pointer to the value stored for key, making it possible to update the value in place.
// The pointer is valid until the key is removed from the chain.
//   - key is the key to look for
//
// It returns:
//   - value is a pointer to the stored value
//   - err is of type hmerrors.KeyNotFound if no node has the key
func (C *Chain[K, V]) Ref(key K) (value *V, err error) {
	n := C.find(key)
	if n == nil {
		err = hmerrors.KeyNotFound{}
		return
	}

	value = &n.value
	return
}

// Has - Returns true if the chain holds the key
func (C *Chain[K, V]) Has(key K) bool {
	return C.find(key) != nil
}

// HasValue - Returns true if any node in the chain holds a value equal to the given value
func (C *Chain[K, V]) HasValue(value V) bool {
	for n := C.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}

	return false
}

// Upsert - Updates the value of an existing key in place or appends a new node at the tail if the key is not
// present.
//   - key is the key to update or insert
//   - value is the value to store
//
// It returns:
//   - result is Updated if the key existed, Inserted if a new node was appended
func (C *Chain[K, V]) Upsert(key K, value V) (result Result) {
	if C.head == nil {
		C.head = &node[K, V]{key: key, value: value}
		C.size++
		result = Inserted
		return
	}

	n := C.head
	for {
		if n.key == key {
			n.value = value
			result = Updated
			return
		}
		if n.next == nil {
			break
		}
		n = n.next
	}

	n.next = &node[K, V]{key: key, value: value}
	C.size++
	result = Inserted

	return
}

// Remove - Unlinks the node holding key and returns its value.
// An empty chain, or a chain where no node matches, is left unchanged.
//   - key is the key of the node to remove
//
// It returns:
//   - value is the value of the removed node
//   - err is of type hmerrors.KeyNotFound if no node has the key
func (C *Chain[K, V]) Remove(key K) (value V, err error) {
	var prev *node[K, V]
	for n := C.head; n != nil; prev, n = n, n.next {
		if n.key != key {
			continue
		}

		if prev == nil {
			C.head = n.next
		} else {
			prev.next = n.next
		}
		n.next = nil
		C.size--
		value = n.value
		return
	}

	err = hmerrors.KeyNotFound{}
	return
}

// Clear - Releases all nodes
func (C *Chain[K, V]) Clear() {
	C.head = nil
	C.size = 0
}

// Size - Returns the number of nodes in the chain
func (C *Chain[K, V]) Size() int {
	return C.size
}

// IsEmpty - Returns true if the chain holds no nodes
func (C *Chain[K, V]) IsEmpty() bool {
	return C.head == nil
}

// Keys - Returns a snapshot of all keys in insertion order
func (C *Chain[K, V]) Keys() []K {
	keys := make([]K, 0, C.size)
	for n := C.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}

	return keys
}

// Values - Returns a snapshot of all values in insertion order
func (C *Chain[K, V]) Values() []V {
	values := make([]V, 0, C.size)
	for n := C.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

// Entries - Returns a snapshot of all key/value pairs in insertion order
func (C *Chain[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, C.size)
	for n := C.head; n != nil; n = n.next {
		entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
	}

	return entries
}

// Clone - Returns a deep copy of the chain with the same nodes in the same order
func (C *Chain[K, V]) Clone() *Chain[K, V] {
	c := New[K, V]()
	var tail *node[K, V]
	for n := C.head; n != nil; n = n.next {
		nn := &node[K, V]{key: n.key, value: n.value}
		if tail == nil {
			c.head = nn
		} else {
			tail.next = nn
		}
		tail = nn
	}
	c.size = C.size

	return c
}

// String - Renders the chain as {K: key, V: value} pairs separated by comma
func (C *Chain[K, V]) String() string {
	var sb strings.Builder
	for n := C.head; n != nil; n = n.next {
		_, _ = fmt.Fprintf(&sb, "{K: %v, V: %v}", n.key, n.value)
		if n.next != nil {
			sb.WriteString(", ")
		}
	}

	return sb.String()
}

// find - Returns the first node holding key or nil
func (C *Chain[K, V]) find(key K) *node[K, V] {
	for n := C.head; n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}

	return nil
}
