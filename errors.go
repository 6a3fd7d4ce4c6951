// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suffixtree

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
)

var (
	ErrInvalidSymbol = errors.New("symbol is not comparable with itself")
	ErrInvalidMode   = errors.New("unknown search mode")
	ErrInconsistent  = errors.New("suffix tree is inconsistent")
)

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
}

// needsSymbolCheck reports whether values of S can fail at run time as map
// keys or under ==. Interface kinds may hold slices, maps or funcs, and
// floating point kinds may hold NaN.
func needsSymbolCheck[S comparable]() bool {
	return mayMisbehave(reflect.TypeOf((*S)(nil)).Elem())
}

func mayMisbehave(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return mayMisbehave(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayMisbehave(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func checkSymbols[S comparable](seq []S) error {
	for i, s := range seq {
		if v := reflect.ValueOf(any(s)); v.IsValid() && !symbolOK(v) {
			return fmt.Errorf("%w: position %d holds %T", ErrInvalidSymbol, i, any(s))
		}
	}
	return nil
}

func symbolOK(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		return !cmplx.IsNaN(v.Complex())
	case reflect.Interface:
		return v.IsNil() || symbolOK(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !symbolOK(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !symbolOK(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return v.Comparable()
}
