//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Visitor is a visitor for walking the AST.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the AST in depth-first order: it starts by calling
// v.Visit(node); node must not be nil. If the visitor returned by
// v.Visit(node) is not nil, Walk is invoked recursively with the returned
// visitor for each of the non-nil children of node, followed by a call of
// v.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	// Implementation note: inside walkChildren, one should call Walk.
	node.WalkChildren(v)
	v.Visit(nil)
}
