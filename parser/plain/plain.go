//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package plain provides a parser for plain text data.
package plain

import (
	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "txt",
		AltNames:     []string{"plain", "text"},
		IsASTParser:  false,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
}

func parseBlocks(inp *input.Input) ast.BlockSlice {
	return ast.BlockSlice{
		&ast.LiteralBlockNode{Content: inp.ScanLineContent()},
	}
}

func parseInlines(inp *input.Input) ast.InlineSlice {
	inp.SkipToEOL()
	return ast.InlineSlice{&ast.TextNode{
		Text: string(inp.Src[0:inp.Pos]),
	}}
}
