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
	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/strfun"
)

// parseLineBlock parses lines starting with a run of '|' characters. The
// indentation after the marker nests deeper lines under shallower ones.
func (cp *rstP) parseLineBlock() (ast.BlockNode, bool) {
	inp := cp.inp
	var lines []*ast.LineNode
	var indents []int
	for {
		posL := inp.Pos
		bars := 0
		for inp.Ch == '|' {
			bars++
			inp.Next()
		}
		if bars == 0 || (inp.Ch != ' ' && inp.Ch != '\t' && !input.IsEOLEOS(inp.Ch)) {
			inp.SetPos(posL)
			break
		}
		ind := inp.SkipSpace()
		posC := inp.Pos
		inp.SkipToEOL()
		text := strfun.TrimSpaceRight(string(inp.Src[posC:inp.Pos]))
		inp.EatEOL()
		inls := parseSpans(text)
		// Indented bar-less lines continue the previous line, joined with a
		// hard break.
		for {
			posK := inp.Pos
			cnt := inp.SkipSpace()
			if cnt == 0 || input.IsEOLEOS(inp.Ch) || inp.Ch == '|' {
				inp.SetPos(posK)
				break
			}
			posC2 := inp.Pos
			inp.SkipToEOL()
			cont := strfun.TrimSpaceRight(string(inp.Src[posC2:inp.Pos]))
			inp.EatEOL()
			inls = append(inls, &ast.BreakNode{Hard: true})
			inls = append(inls, parseSpans(cont)...)
		}
		lines = append(lines, &ast.LineNode{Inlines: inls})
		indents = append(indents, ind)
		if inp.Ch != '|' {
			break
		}
	}
	if len(lines) == 0 {
		return nil, false
	}
	return &ast.LineBlockNode{Lines: buildLineTree(lines, indents)}, true
}

// buildLineTree nests each line under the closest preceding line with a
// smaller indentation.
func buildLineTree(lines []*ast.LineNode, indents []int) []*ast.LineNode {
	type frame struct {
		indent   int
		children *[]*ast.LineNode
	}
	var root []*ast.LineNode
	stack := []frame{{indent: -1, children: &root}}
	for i, line := range lines {
		ind := indents[i]
		for len(stack) > 1 && stack[len(stack)-1].indent >= ind {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]
		*top.children = append(*top.children, line)
		stack = append(stack, frame{indent: ind, children: &line.Children})
	}
	return root
}
