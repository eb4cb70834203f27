//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package rst provides a parser for the list-oriented subset of
// reStructuredText.
package rst

import (
	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "rst",
		AltNames:     []string{"rest", "restructuredtext"},
		IsASTParser:  true,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
}

func parseBlocks(inp *input.Input) ast.BlockSlice {
	pp := &rstP{inp: inp}
	bs := pp.parseBlockSlice()
	postProcessBlocks(&bs)
	return bs
}

func parseInlines(inp *input.Input) ast.InlineSlice {
	return parseSpans(string(inp.Src[inp.Pos:]))
}

// rstP is the parser state for one indentation region.
type rstP struct {
	inp          *input.Input
	nestingLevel int
	literalNext  bool
}

// maxNestingLevel is the maximum depth of indented sub-regions.
const maxNestingLevel = 50

func (cp *rstP) parseBlockSlice() ast.BlockSlice {
	var bs ast.BlockSlice
	for cp.inp.Ch != input.EOS {
		if bn := cp.parseBlock(); bn != nil {
			bs = append(bs, bn)
		}
	}
	return bs
}

// parseRegion parses a dedented sub-region with a fresh parser. Markers in
// the region therefore always start in the first column.
func (cp *rstP) parseRegion(content []byte) ast.BlockSlice {
	if cp.nestingLevel >= maxNestingLevel {
		return ast.BlockSlice{&ast.InvalidNode{
			Message: "maximum nesting depth exceeded",
			Source:  content,
		}}
	}
	sub := &rstP{inp: input.NewInput(content), nestingLevel: cp.nestingLevel + 1}
	return sub.parseBlockSlice()
}
