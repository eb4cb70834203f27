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
	"bytes"
	"strings"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/strfun"
)

// parseDefinitionList parses terms, each directly followed by an indented
// definition.
func (cp *rstP) parseDefinitionList() (ast.BlockNode, bool) {
	inp := cp.inp
	if !cp.atDefTerm() {
		return nil, false
	}
	dn := &ast.DefinitionListNode{}
	for {
		posC := inp.Pos
		inp.SkipToEOL()
		termLine := strfun.TrimSpaceRight(string(inp.Src[posC:inp.Pos]))
		inp.EatEOL()
		term, classifier := splitClassifier(termLine)
		var buf bytes.Buffer
		cp.collectHanging(&buf)
		item := ast.DefinitionItem{
			Term: parseSpans(term),
			Body: cp.parseRegion(buf.Bytes()),
		}
		if classifier != "" {
			item.Classifier = parseSpans(classifier)
		}
		dn.Items = append(dn.Items, item)
		posL := inp.Pos
		cp.skipBlankLines()
		if !cp.atDefTerm() {
			inp.SetPos(posL)
			break
		}
	}
	return dn, true
}

// atDefTerm reports whether the current line is a definition term: an
// unindented text line that is no block marker, directly followed by an
// indented non-blank line.
func (cp *rstP) atDefTerm() bool {
	inp := cp.inp
	if inp.Ch == ' ' || inp.Ch == '\t' || input.IsEOLEOS(inp.Ch) {
		return false
	}
	if cp.atMarkerLine() {
		return false
	}
	posL := inp.Pos
	inp.SkipToEOL()
	if inp.Ch == input.EOS {
		inp.SetPos(posL)
		return false
	}
	inp.EatEOL()
	cnt := inp.SkipSpace()
	ok := cnt > 0 && !input.IsEOLEOS(inp.Ch)
	inp.SetPos(posL)
	return ok
}

// splitClassifier splits a term line at the first " : " separator.
func splitClassifier(line string) (term, classifier string) {
	if i := strings.Index(line, " : "); i >= 0 {
		return strfun.TrimSpaceRight(line[:i]), strings.TrimSpace(line[i+3:])
	}
	return line, ""
}
