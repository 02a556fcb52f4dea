package types

import (
	bin "github.com/gagliardetto/binary"
)

// MaxRecordsCount is the nominal capacity of small record maps.
const MaxRecordsCount = 20

// RecordHandler is an ordered map backed by parallel key and value slices.
// Iteration follows insertion order; inserting an existing key overwrites its
// value in place.
type RecordHandler[K comparable, V any] struct {
	keys   []K
	values []V
}

// NewRecordHandler creates an empty handler.
func NewRecordHandler[K comparable, V any]() *RecordHandler[K, V] {
	return &RecordHandler[K, V]{
		keys:   make([]K, 0, MaxRecordsCount),
		values: make([]V, 0, MaxRecordsCount),
	}
}

func (h *RecordHandler[K, V]) index(key K) int {
	for i, k := range h.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Insert adds or overwrites key.
func (h *RecordHandler[K, V]) Insert(key K, value V) {
	if i := h.index(key); i >= 0 {
		h.values[i] = value
		return
	}
	h.keys = append(h.keys, key)
	h.values = append(h.values, value)
}

// Get returns the value stored under key.
func (h *RecordHandler[K, V]) Get(key K) (V, bool) {
	if i := h.index(key); i >= 0 {
		return h.values[i], true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (h *RecordHandler[K, V]) Contains(key K) bool {
	return h.index(key) >= 0
}

// Drop removes key and returns its value.
func (h *RecordHandler[K, V]) Drop(key K) (V, bool) {
	i := h.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	value := h.values[i]
	h.keys = append(h.keys[:i], h.keys[i+1:]...)
	h.values = append(h.values[:i], h.values[i+1:]...)
	return value, true
}

// Len returns the number of records.
func (h *RecordHandler[K, V]) Len() int { return len(h.keys) }

// Keys returns the keys in insertion order.
func (h *RecordHandler[K, V]) Keys() []K { return append([]K(nil), h.keys...) }

// Values returns the values in insertion order.
func (h *RecordHandler[K, V]) Values() []V { return append([]V(nil), h.values...) }

// Range calls fn for every record until it returns false.
func (h *RecordHandler[K, V]) Range(fn func(K, V) bool) {
	for i := range h.keys {
		if !fn(h.keys[i], h.values[i]) {
			return
		}
	}
}

// MarshalRecords writes h as Vec<K> followed by Vec<V>.
func MarshalRecords[K comparable, V any](
	enc *bin.Encoder,
	h *RecordHandler[K, V],
	encodeKey func(*bin.Encoder, K) error,
	encodeValue func(*bin.Encoder, V) error,
) error {
	if err := enc.WriteLength(len(h.keys)); err != nil {
		return err
	}
	for _, k := range h.keys {
		if err := encodeKey(enc, k); err != nil {
			return err
		}
	}
	if err := enc.WriteLength(len(h.values)); err != nil {
		return err
	}
	for _, v := range h.values {
		if err := encodeValue(enc, v); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalRecords reads a handler written by MarshalRecords.
func UnmarshalRecords[K comparable, V any](
	dec *bin.Decoder,
	decodeKey func(*bin.Decoder) (K, error),
	decodeValue func(*bin.Decoder) (V, error),
) (*RecordHandler[K, V], error) {
	h := NewRecordHandler[K, V]()

	n, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		k, err := decodeKey(dec)
		if err != nil {
			return nil, err
		}
		h.keys = append(h.keys, k)
	}

	m, err := readLength(dec)
	if err != nil {
		return nil, err
	}
	if m != n {
		return nil, ErrInvalidAccountData.Wrapf("record handler has %d keys and %d values", n, m)
	}
	for i := 0; i < m; i++ {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		h.values = append(h.values, v)
	}
	return h, nil
}
