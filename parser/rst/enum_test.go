//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package rst

import (
	"testing"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
)

func newTestParser(s string) *rstP {
	return &rstP{inp: input.NewInput([]byte(s))}
}

func TestRomanValue(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		lit string
		exp int
	}{
		{"", 0},
		{"i", 1},
		{"iv", 4},
		{"ix", 9},
		{"xiv", 14},
		{"xl", 40},
		{"mcmxcix", 1999},
		{"MMXXIV", 2024},
		{"iiii", 0},
		{"vv", 0},
		{"Iv", 0},
		{"abc", 0},
		{"1", 0},
	}
	for i, tc := range testcases {
		if got := romanValue(tc.lit); got != tc.exp {
			t.Errorf("%d: romanValue(%q) == %d, but got %d", i, tc.lit, tc.exp, got)
		}
	}
}

func TestMarkerValue(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		lit string
		typ ast.EnumType
		exp int
	}{
		{"1", ast.Arabic, 1},
		{"42", ast.Arabic, 42},
		{"x", ast.Arabic, 0},
		{"a", ast.LowerAlpha, 1},
		{"z", ast.LowerAlpha, 26},
		{"A", ast.LowerAlpha, 0},
		{"B", ast.UpperAlpha, 2},
		{"ab", ast.LowerAlpha, 0},
		{"iv", ast.LowerRoman, 4},
		{"IV", ast.LowerRoman, 0},
		{"IV", ast.UpperRoman, 4},
		{"j", ast.LowerRoman, 0},
	}
	for i, tc := range testcases {
		if got := markerValue(tc.lit, tc.typ); got != tc.exp {
			t.Errorf("%d: markerValue(%q, %d) == %d, but got %d", i, tc.lit, tc.typ, tc.exp, got)
		}
	}
}

func TestClassifyEnumMarker(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src   string
		ok    bool
		lit   string
		width int
	}{
		{"1. x", true, "1", 2},
		{"12) x", true, "12", 3},
		{"(3) x", true, "3", 3},
		{"#. x", true, "#", 2},
		{"iv. x", true, "iv", 3},
		{"(i) x", true, "i", 3},
		{"A. x", true, "A", 2},
		{"1.", true, "1", 2},
		{"(1. x", false, "", 0},
		{"1.x", false, "", 0},
		{"word. x", false, "", 0},
		{"aB. x", false, "", 0},
		{"x", false, "", 0},
	}
	for i, tc := range testcases {
		cp := newTestParser(tc.src)
		m, ok := cp.classifyEnumMarker()
		if ok != tc.ok {
			t.Errorf("%d: classify(%q) == %v, but got %v", i, tc.src, tc.ok, ok)
			continue
		}
		if !ok {
			continue
		}
		if m.literal != tc.lit || m.width != tc.width {
			t.Errorf("%d: classify(%q) == (%q,%d), but got (%q,%d)",
				i, tc.src, tc.lit, tc.width, m.literal, m.width)
		}
		if cp.inp.Pos != 0 {
			t.Errorf("%d: classify(%q) moved the cursor to %d", i, tc.src, cp.inp.Pos)
		}
	}
}
