// copier.go: by-value isolation strategy applied at every cache boundary
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "reflect"

// Copier isolates a value crossing a cache boundary (into the store on
// write, out of the store on read, event, or entry-adapter access).
type Copier interface {
	Copy(v interface{}) (interface{}, error)
}

// IdentityCopier returns the same reference it is given — store-by-reference
// semantics. Cheap, but callers can observe each other's in-place mutations
// through aliased values.
type IdentityCopier struct{}

// Copy implements Copier.
func (IdentityCopier) Copy(v interface{}) (interface{}, error) { return v, nil }

// cloner lets a value opt into custom deep-copy logic instead of the
// generic reflect-based traversal below — analogous to a user-supplied
// clone hook.
type cloner interface {
	CacheClone() interface{}
}

// DeepCopier produces a structurally isolated copy of the value, so that
// no mutation on either side of the boundary is visible to the other.
// Store-by-value semantics.
type DeepCopier struct{}

// Copy implements Copier. It fails with a serialization error when the
// value contains a kind that cannot be meaningfully cloned (channel,
// function, unsafe pointer).
func (DeepCopier) Copy(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if c, ok := v.(cloner); ok {
		return c.CacheClone(), nil
	}
	rv := reflect.ValueOf(v)
	copied, err := deepCopyValue(rv)
	if err != nil {
		return nil, NewErrSerialization(err)
	}
	return copied.Interface(), nil
}

func deepCopyValue(rv reflect.Value) (reflect.Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return rv, nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.Value{}, errUnsupportedKind(rv.Kind())
	case reflect.Ptr:
		if rv.IsNil() {
			return rv, nil
		}
		elemCopy, err := deepCopyValue(rv.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(elemCopy)
		return out, nil
	case reflect.Interface:
		if rv.IsNil() {
			return rv, nil
		}
		elemCopy, err := deepCopyValue(rv.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(elemCopy)
		return out, nil
	case reflect.Slice:
		if rv.IsNil() {
			return rv, nil
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elemCopy, err := deepCopyValue(rv.Index(i))
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(elemCopy)
		}
		return out, nil
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			elemCopy, err := deepCopyValue(rv.Index(i))
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(elemCopy)
		}
		return out, nil
	case reflect.Map:
		if rv.IsNil() {
			return rv, nil
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			kCopy, err := deepCopyValue(iter.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			vCopy, err := deepCopyValue(iter.Value())
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(kCopy, vCopy)
		}
		return out, nil
	case reflect.Struct:
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			if !field.CanInterface() {
				// Unexported field: best effort, copy the top-level value
				// as-is. Nested reference types inside it remain aliased;
				// this is a known limit of reflect-based deep copy without
				// unsafe field access.
				continue
			}
			fieldCopy, err := deepCopyValue(field)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(i).Set(fieldCopy)
		}
		return out, nil
	default:
		// Basic kinds (bool, numeric, string) are already copied by value
		// on assignment.
		return rv, nil
	}
}
