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

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
)

// parseBulletList parses a sequence of items that start with the same bullet
// character.
func (cp *rstP) parseBulletList() (ast.BlockNode, bool) {
	inp := cp.inp
	if !cp.atBulletMarker() {
		return nil, false
	}
	bullet := inp.Ch
	ln := &ast.BulletListNode{Bullet: bullet}
	for {
		posL := inp.Pos
		cp.skipBlankLines()
		if inp.Ch != bullet || !cp.atBulletMarker() {
			inp.SetPos(posL)
			break
		}
		inp.Next()
		ln.Items = append(ln.Items, cp.parseItemBody(1))
	}
	return ln, true
}

// parseItemBody collects the body of a list item. The cursor sits directly
// after the marker. The body is aligned with the text after the marker; if
// the marker line has no text, the indentation of the next line is used.
func (cp *rstP) parseItemBody(markerWidth int) ast.BlockSlice {
	inp := cp.inp
	var buf bytes.Buffer
	if input.IsEOLEOS(inp.Ch) {
		inp.EatEOL()
		cp.collectHanging(&buf)
		return cp.parseRegion(buf.Bytes())
	}
	s := inp.SkipSpace()
	col := markerWidth + s
	posC := inp.Pos
	inp.SkipToEOL()
	buf.Write(inp.Src[posC:inp.Pos])
	buf.WriteByte('\n')
	inp.EatEOL()
	cp.collectIndented(&buf, col)
	return cp.parseRegion(buf.Bytes())
}

// skimItemBody consumes a list item without building nodes. It is used for
// looking ahead at the next enumerator.
func (cp *rstP) skimItemBody(markerWidth int) {
	inp := cp.inp
	var buf bytes.Buffer
	if input.IsEOLEOS(inp.Ch) {
		inp.EatEOL()
		cp.collectHanging(&buf)
		return
	}
	s := inp.SkipSpace()
	col := markerWidth + s
	inp.SkipToEOL()
	inp.EatEOL()
	cp.collectIndented(&buf, col)
}
