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
	"strings"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
)

// parseSpans splits text into text, space and soft break nodes. Leading and
// trailing white space is dropped, as is space before a line break.
func parseSpans(s string) ast.InlineSlice {
	inp := input.NewInput([]byte(s))
	var ins ast.InlineSlice
	for inp.Ch != input.EOS {
		switch inp.Ch {
		case ' ', '\t':
			cnt := inp.SkipSpace()
			if input.IsEOLEOS(inp.Ch) || len(ins) == 0 {
				continue
			}
			ins = append(ins, &ast.SpaceNode{Lexeme: strings.Repeat(" ", cnt)})
		case '\n', '\r':
			inp.EatEOL()
			if len(ins) == 0 {
				continue
			}
			ins = append(ins, &ast.BreakNode{})
		default:
			posL := inp.Pos
			for !input.IsEOLEOS(inp.Ch) && inp.Ch != ' ' && inp.Ch != '\t' {
				inp.Next()
			}
			ins = append(ins, &ast.TextNode{Text: string(inp.Src[posL:inp.Pos])})
		}
	}
	for len(ins) > 0 {
		switch n := ins[len(ins)-1].(type) {
		case *ast.SpaceNode:
			ins = ins[:len(ins)-1]
			continue
		case *ast.BreakNode:
			if !n.Hard {
				ins = ins[:len(ins)-1]
				continue
			}
		}
		break
	}
	return ins
}
