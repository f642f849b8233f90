// Copyright (c) 2017-2020 Matthias C. M. Troffaes
// SPDX-License-Identifier: MIT

package inipp

import "strconv"

// Scalar is the set of types Extract can produce.
type Scalar interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string
}

// Extract parses a stored string value as T. For every target type other
// than string, the value is trimmed of surrounding whitespace and must
// parse in its entirety: integers are base 10, and booleans accept the word
// forms recognized by strconv.ParseBool. For a string target the value is
// copied verbatim, untrimmed, and extraction always succeeds.
func Extract[T Scalar](value string) (T, bool) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *string:
		*p = value
	case *bool:
		*p, err = strconv.ParseBool(trimSpace(value))
	case *int:
		var n int64
		n, err = strconv.ParseInt(trimSpace(value), 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(trimSpace(value), 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(trimSpace(value), 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(trimSpace(value), 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(trimSpace(value), 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(trimSpace(value), 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(trimSpace(value), 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(trimSpace(value), 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(trimSpace(value), 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(trimSpace(value), 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(trimSpace(value), 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(trimSpace(value), 64)
	}
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}
