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
	"codeberg.org/rstree/rstree/strfun"
)

// parseFieldList parses ":name: value" fields with hanging bodies.
func (cp *rstP) parseFieldList() (ast.BlockNode, bool) {
	inp := cp.inp
	fn := &ast.FieldListNode{}
	for {
		posL := inp.Pos
		cp.skipBlankLines()
		name, ok := cp.scanFieldMarker()
		if !ok {
			inp.SetPos(posL)
			break
		}
		var buf bytes.Buffer
		inp.SkipSpace()
		if !input.IsEOLEOS(inp.Ch) {
			posC := inp.Pos
			inp.SkipToEOL()
			buf.Write(inp.Src[posC:inp.Pos])
			buf.WriteByte('\n')
		}
		inp.EatEOL()
		cp.collectHanging(&buf)
		fn.Fields = append(fn.Fields, ast.Field{
			Name: parseSpans(name),
			Key:  strfun.NormalizeKey(name),
			Body: cp.parseRegion(buf.Bytes()),
		})
	}
	if len(fn.Fields) == 0 {
		return nil, false
	}
	return fn, true
}

// scanFieldMarker scans ":name:" followed by white space or end of line. The
// name must be non-empty and free of colons and line breaks. On success the
// cursor is placed after the closing colon, otherwise it is restored.
func (cp *rstP) scanFieldMarker() (string, bool) {
	inp := cp.inp
	if inp.Ch != ':' {
		return "", false
	}
	posL := inp.Pos
	inp.Next()
	posN := inp.Pos
	for {
		switch inp.Ch {
		case ':':
			if inp.Pos == posN {
				inp.SetPos(posL)
				return "", false
			}
			name := string(inp.Src[posN:inp.Pos])
			inp.Next()
			if inp.Ch == ' ' || inp.Ch == '\t' || input.IsEOLEOS(inp.Ch) {
				return name, true
			}
			inp.SetPos(posL)
			return "", false
		case input.EOS, '\n', '\r':
			inp.SetPos(posL)
			return "", false
		}
		inp.Next()
	}
}

// atFieldMarker reports whether the current line starts with a field marker.
// The cursor is not moved.
func (cp *rstP) atFieldMarker() bool {
	posL := cp.inp.Pos
	_, ok := cp.scanFieldMarker()
	cp.inp.SetPos(posL)
	return ok
}
