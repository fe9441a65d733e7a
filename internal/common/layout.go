package common

import (
	"reflect"
	"unsafe"
)

// IsFixedKind reports whether k is a fixed-size primitive kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPlain reports whether values of t are made only of fixed-size
// primitives, so any properly sized byte span can be read as a t without
// hiding pointers from the garbage collector.
func IsPlain(t reflect.Type) bool {
	switch k := t.Kind(); k {
	case reflect.Array:
		return IsPlain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !IsPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return IsFixedKind(k)
	}
}

// SpanFits reports whether n elements of size bytes, the first at off and
// the rest step bytes apart, lie inside a buffer of length bufLen.
func SpanFits(bufLen, off, n, step, size int) bool {
	if off < 0 || n < 0 || step <= 0 || size < 0 || off > bufLen {
		return false
	}
	if n == 0 {
		return true
	}
	// The first element must start inside the buffer even when size is 0.
	if off >= bufLen {
		return false
	}
	room := bufLen - off - size
	if room < 0 {
		return false
	}
	return n-1 <= room/step
}

// Aligned reports whether p and every step-byte offset from it are
// multiples of align.
func Aligned(p unsafe.Pointer, step int, align uintptr) bool {
	if align <= 1 {
		return true
	}
	return uintptr(p)%align == 0 && uintptr(step)%align == 0
}
