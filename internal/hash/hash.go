package hash

import (
	"bytes"
	"encoding/binary"
	"math"
	"reflect"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/hashfunc"
)

// Tags prefixed to key encodings so that keys of different kinds never encode the same
const (
	tagString byte = 's'
	tagBytes  byte = 'b'
	tagBool   byte = 't'
	tagInt    byte = 'i'
	tagUint   byte = 'u'
	tagFloat  byte = 'f'
)

// NewHasher - Returns the built-in hasher for the given algorithm.
// It returns an error of type adt.InvalidArgument for an unknown algorithm.
func NewHasher[K any](algorithm hashfunc.Algorithm) (hasher hashfunc.Hasher[K], err error) {
	switch algorithm {
	case hashfunc.CRC32:
		hasher = NewCRC32Hasher[K]()
	case hashfunc.XXHash64:
		hasher = NewXXHasher[K]()
	default:
		err = adt.NewInvalidArgument("unknown hash algorithm %d", algorithm)
	}

	return
}

// hashKey - Hashes key with sum over its encoding, or by its own Hash method if it is hashfunc.Hashable
func hashKey(key any, sum func([]byte) uint64) (h uint64, err error) {
	if hk, ok := key.(hashfunc.Hashable); ok {
		h = hk.Hash()
		return
	}

	buf, err := encodeKey(key)
	if err != nil {
		return
	}
	h = sum(buf)

	return
}

// equalKeys - Compares two keys the same way hashKey hashes them
func equalKeys(a, b any) (equal bool, err error) {
	if ha, ok := a.(hashfunc.Hashable); ok {
		equal = ha.Equal(b)
		return
	}
	if hb, ok := b.(hashfunc.Hashable); ok {
		equal = hb.Equal(a)
		return
	}

	// Plain strings are by far the most common key, skip the encoding
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			equal = sa == sb
			return
		}
	}

	ea, err := encodeKey(a)
	if err != nil {
		return
	}
	eb, err := encodeKey(b)
	if err != nil {
		return
	}
	equal = bytes.Equal(ea, eb)

	return
}

// encodeKey - Returns a tagged byte encoding of key.
// Supported kinds are strings, byte slices, booleans, integers and floats (including named types of those kinds).
// Any other kind results in an error of type adt.TypeMismatch.
func encodeKey(key any) (buf []byte, err error) {
	if s, ok := key.(string); ok {
		buf = make([]byte, 1, 1+len(s))
		buf[0] = tagString
		buf = append(buf, s...)
		return
	}

	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		buf = append([]byte{tagString}, v.String()...)

	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.Uint8 {
			err = adt.NewTypeMismatch("unhashable key type %T", key)
			return
		}
		buf = append([]byte{tagBytes}, v.Bytes()...)

	case reflect.Bool:
		buf = []byte{tagBool, 0}
		if v.Bool() {
			buf[1] = 1
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf = binary.LittleEndian.AppendUint64([]byte{tagInt}, uint64(v.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf = binary.LittleEndian.AppendUint64([]byte{tagUint}, v.Uint())

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f == 0 {
			f = 0 // -0 and +0 are the same key
		}
		buf = binary.LittleEndian.AppendUint64([]byte{tagFloat}, math.Float64bits(f))

	default:
		err = adt.NewTypeMismatch("unhashable key type %T", key)
	}

	return
}

// CloneKey - Returns key with its backing bytes copied if it is a byte slice, otherwise key itself.
// Stored keys must not change after their hash is cached.
func CloneKey[K any](key K) K {
	if b, ok := any(key).([]byte); ok {
		return any(bytes.Clone(b)).(K)
	}

	v := reflect.ValueOf(key)
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 && !v.IsNil() {
		return reflect.ValueOf(bytes.Clone(v.Bytes())).Convert(v.Type()).Interface().(K)
	}

	return key
}
