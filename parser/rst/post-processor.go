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

import "codeberg.org/rstree/rstree/ast"

// postProcessBlocks resolves the tight/loose property of itemized lists. A
// list is loose when at least one item consists of more than one block; its
// single-paragraph items are then forced to render as explicit paragraphs.
// Blank lines between single-paragraph items keep a list tight.
func postProcessBlocks(bs *ast.BlockSlice) {
	pp := &postProcessor{}
	for _, bn := range *bs {
		ast.Walk(pp, bn)
	}
}

type postProcessor struct{}

func (pp *postProcessor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.BulletListNode:
		resolveLooseItems(n.Items)
	case *ast.EnumListNode:
		resolveLooseItems(n.Items)
	}
	return pp
}

func resolveLooseItems(items []ast.BlockSlice) {
	loose := false
	for i := range items {
		if len(items[i]) > 1 {
			loose = true
			break
		}
	}
	if !loose {
		return
	}
	for i := range items {
		if len(items[i]) != 1 {
			continue
		}
		if pn, ok := items[i][0].(*ast.ParaNode); ok {
			pn.Forced = true
		}
	}
}
