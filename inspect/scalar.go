package inspect

import (
	"math"
	"reflect"
)

// Scalar is the set of numeric field types with a scalar widget.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type scalarClass int

const (
	classInt scalarClass = iota
	classUint
	classFloat
)

func classOf(k reflect.Kind) scalarClass {
	switch k {
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	default:
		return classInt
	}
}

// clampInt limits v to the range of a signed integer of the given bit size.
func clampInt(v int64, bits int) int64 {
	if bits >= 64 {
		return v
	}

	hi := int64(1)<<(bits-1) - 1

	return min(max(v, -hi-1), hi)
}

// clampUint limits v to the range of an unsigned integer of the given bit size.
func clampUint(v uint64, bits int) uint64 {
	if bits >= 64 {
		return v
	}

	return min(v, uint64(1)<<bits-1)
}

// clampFloat limits finite values to the range of a float of the given bit size.
// Infinities and NaN pass through.
func clampFloat(v float64, bits int) float64 {
	if bits != 32 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}

	return min(max(v, -math.MaxFloat32), math.MaxFloat32)
}

// InputScalar draws a numeric input for value, widening it to the backend's
// 64-bit widget and narrowing the edit back. Edits outside T's range are
// clamped to it.
func InputScalar[T Scalar](ui UI, label string, value *T) bool {
	t := reflect.TypeFor[T]()

	switch classOf(t.Kind()) {
	case classFloat:
		v := float64(*value)
		if !ui.InputFloat(label, &v) {
			return false
		}
		*value = T(clampFloat(v, t.Bits()))

	case classUint:
		v := uint64(*value)
		if !ui.InputUint(label, &v) {
			return false
		}
		*value = T(clampUint(v, t.Bits()))

	default:
		v := int64(*value)
		if !ui.InputInt(label, &v) {
			return false
		}
		*value = T(clampInt(v, t.Bits()))
	}

	return true
}

// SliderScalar draws a range slider for value. Bounds are passed to the backend
// as given, including minVal > maxVal. The edit is clamped to T's range.
func SliderScalar[T Scalar](ui UI, label string, value *T, minVal, maxVal T) bool {
	t := reflect.TypeFor[T]()

	switch classOf(t.Kind()) {
	case classFloat:
		v := float64(*value)
		if !ui.SliderFloat(label, &v, float64(minVal), float64(maxVal)) {
			return false
		}
		*value = T(clampFloat(v, t.Bits()))

	case classUint:
		v := uint64(*value)
		if !ui.SliderUint(label, &v, uint64(minVal), uint64(maxVal)) {
			return false
		}
		*value = T(clampUint(v, t.Bits()))

	default:
		v := int64(*value)
		if !ui.SliderInt(label, &v, int64(minVal), int64(maxVal)) {
			return false
		}
		*value = T(clampInt(v, t.Bits()))
	}

	return true
}
