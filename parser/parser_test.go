//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser_test

import (
	"testing"

	"codeberg.org/rstree/rstree/parser"

	_ "codeberg.org/rstree/rstree/parser/markdown"
	_ "codeberg.org/rstree/rstree/parser/plain"
	_ "codeberg.org/rstree/rstree/parser/rst"
)

func TestGet(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"rst", "rest", "restructuredtext", "markdown", "md", "txt", "plain", "text"} {
		if pi := parser.Get(name); pi == nil {
			t.Errorf("No parser for %q", name)
		}
	}
	// Unknown syntaxes fall back to the plain parser.
	if pi := parser.Get("unknown"); pi == nil || pi.Name != "txt" {
		t.Errorf("No fallback parser for unknown syntax: %v", pi)
	}
}

func TestIsASTParser(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		syntax string
		exp    bool
	}{
		{"rst", true},
		{"markdown", true},
		{"txt", false},
		{"unknown", false},
	}
	for i, tc := range testcases {
		if got := parser.IsASTParser(tc.syntax); got != tc.exp {
			t.Errorf("%d: IsASTParser(%q) == %v, but got %v", i, tc.syntax, tc.exp, got)
		}
	}
}

func TestGetSyntaxes(t *testing.T) {
	t.Parallel()
	syntaxes := parser.GetSyntaxes()
	found := map[string]bool{}
	for _, syntax := range syntaxes {
		found[syntax] = true
	}
	for _, name := range []string{"rst", "markdown", "txt"} {
		if !found[name] {
			t.Errorf("Syntax %q not part of %v", name, syntaxes)
		}
	}
}
