package gut

import (
	"errors"
	"math"
)

var (
	NotPositiveError   = errors.New("expected non-negative number")
	TypeError          = errors.New("invalid type")
	InexactResultError = errors.New("inexact result")
	OverflowError      = errors.New("overflow")
)

// ToUint64 converts any Go integer, or an integral float, to uint64.
func ToUint64(arg interface{}) (uint64, error) {
	switch v := arg.(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uintptr:
		return uint64(v), nil
	case int:
		return fromSigned(int64(v))
	case int8:
		return fromSigned(int64(v))
	case int16:
		return fromSigned(int64(v))
	case int32:
		return fromSigned(int64(v))
	case int64:
		return fromSigned(v)
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	default:
		return 0, TypeError
	}
}

func fromSigned(v int64) (uint64, error) {
	if v < 0 {
		return 0, NotPositiveError
	}
	return uint64(v), nil
}

func fromFloat(v float64) (uint64, error) {
	if v < 0 {
		return 0, NotPositiveError
	}
	if v >= math.MaxUint64 {
		return 0, OverflowError
	}
	if v != math.Trunc(v) {
		return 0, InexactResultError
	}
	return uint64(v), nil
}
