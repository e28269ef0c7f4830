package chain

import (
	"github.com/gostonefire/chainhashmap/hmerrors"
)

// Iterator - Is used to iterate over the entries of a chain one by one, in insertion order.
// Modifying the chain while iterating gives undefined results.
type Iterator[K comparable, V comparable] struct {
	next *node[K, V]
}

// Iterator - Returns a pointer to a new Iterator positioned at the head of the chain
func (C *Chain[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{next: C.head}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.next != nil
}

// Next - Returns entry.
// It returns:
//   - entry is the next entry of the chain.
//   - err is of type hmerrors.KeyNotFound if there are no more entries when calling this function.
func (I *Iterator[K, V]) Next() (entry Entry[K, V], err error) {
	if I.next == nil {
		err = hmerrors.KeyNotFound{}
		return
	}

	entry = Entry[K, V]{Key: I.next.key, Value: I.next.value}
	I.next = I.next.next

	return
}
