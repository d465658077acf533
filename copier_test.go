// copier_test.go: by-value isolation strategies.
//
// Copyright (c) 2026 Xanthos Authors
// Series: an AGILira-style library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

func TestIdentityCopier_ReturnsSameReference(t *testing.T) {
	type box struct{ N int }
	original := &box{N: 1}

	out, err := IdentityCopier{}.Copy(original)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if out.(*box) != original {
		t.Error("expected IdentityCopier to return the same pointer")
	}
}

func TestDeepCopier_IsolatesStructMutation(t *testing.T) {
	type box struct{ N int }
	original := &box{N: 1}

	out, err := DeepCopier{}.Copy(original)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	copied := out.(*box)

	original.N = 999
	if copied.N == 999 {
		t.Error("expected the deep copy to be isolated from mutation of the original")
	}
}

func TestDeepCopier_IsolatesSliceMutation(t *testing.T) {
	original := []int{1, 2, 3}

	out, err := DeepCopier{}.Copy(original)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	copied := out.([]int)

	original[0] = 999
	if copied[0] == 999 {
		t.Error("expected the deep copy's slice backing array to be isolated")
	}
}

func TestDeepCopier_IsolatesMapMutation(t *testing.T) {
	original := map[string]int{"a": 1}

	out, err := DeepCopier{}.Copy(original)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	copied := out.(map[string]int)

	original["a"] = 999
	if copied["a"] == 999 {
		t.Error("expected the deep copy's map to be isolated")
	}
}

func TestDeepCopier_NilValue(t *testing.T) {
	out, err := DeepCopier{}.Copy(nil)
	if err != nil || out != nil {
		t.Fatalf("expected nil, nil, got %v, %v", out, err)
	}
}

func TestDeepCopier_RejectsUnsupportedKind(t *testing.T) {
	_, err := DeepCopier{}.Copy(make(chan int))
	if err == nil {
		t.Fatal("expected an error copying a channel value")
	}
}

type cloneableBox struct {
	N int
}

func (b *cloneableBox) CacheClone() interface{} {
	return &cloneableBox{N: b.N}
}

func TestDeepCopier_UsesCustomClonerWhenAvailable(t *testing.T) {
	original := &cloneableBox{N: 1}

	out, err := DeepCopier{}.Copy(original)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	copied := out.(*cloneableBox)
	if copied == original {
		t.Error("expected CacheClone to produce a distinct value")
	}

	original.N = 999
	if copied.N == 999 {
		t.Error("expected the cloner's copy to be isolated from mutation")
	}
}
