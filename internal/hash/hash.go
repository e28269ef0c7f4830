// Package hash provides the default, NON-CRYPTOGRAPHIC, hash of hash map keys and the mapping
// of a hash value onto a bucket number.
package hash

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

// KeyHash - Returns the hash value of a comparable key.
// The hash is taken over exactly what == compares, so keys that are equal always give the same hash value:
//   - strings, booleans and numbers by value, with +0 and -0 hashing alike at any depth
//   - pointers, channels and unsafe pointers by address, the pointed to value is never visited
//   - interfaces by dynamic type and value
//   - structs field by field, unexported fields included, and arrays element by element
func KeyHash[K comparable](key K) uint64 {
	raw := any(key)
	if raw == nil {
		return 0
	}

	v := reflect.ValueOf(raw)
	switch v.Kind() {
	case reflect.String:
		return xxh3.HashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return hashUint64(1)
		}
		return hashUint64(0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashUint64(floatBits(v.Float()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return hashUint64(uint64(v.Pointer()))
	}

	w := walker{h: xxh3.New()}
	w.value(v)

	return w.h.Sum64()
}

// BucketIndex - Maps a hash value onto a bucket number between 0 and capacity - 1
func BucketIndex(hashValue uint64, capacity int) int {
	return int(hashValue % uint64(capacity))
}

// hashUint64 - Hashes the little endian encoding of u
func hashUint64(u uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	return xxh3.Hash(buf[:])
}

// floatBits - Returns the bits of f with -0 folded into +0
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// walker - Feeds the parts of a composite value that == compares into an xxh3 hasher
type walker struct {
	h   *xxh3.Hasher
	buf [8]byte
}

func (w *walker) uint64(u uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], u)
	_, _ = w.h.Write(w.buf[:])
}

func (w *walker) string(s string) {
	w.uint64(uint64(len(s)))
	_, _ = w.h.WriteString(s)
}

// value - Walks v. Only readers that work on values reached through unexported fields are used.
func (w *walker) value(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		w.string(v.String())
	case reflect.Bool:
		if v.Bool() {
			w.uint64(1)
		} else {
			w.uint64(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.uint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.uint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		w.uint64(floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		w.uint64(floatBits(real(c)))
		w.uint64(floatBits(imag(c)))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		w.uint64(uint64(v.Pointer()))
	case reflect.Interface:
		if v.IsNil() {
			w.uint64(0)
			return
		}
		e := v.Elem()
		w.string(e.Type().String())
		w.value(e)
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.value(v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			w.value(v.Field(i))
		}
	default:
		// func, map and slice are not comparable, == panics on them before the hash matters
	}
}
