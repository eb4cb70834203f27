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

import "strings"

// Definitions of inline nodes.

// TextNode just contains some text.
type TextNode struct {
	Text string // The text itself.
}

func (*TextNode) inlineNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*TextNode) WalkChildren(Visitor) { /* No children*/ }

//--------------------------------------------------------------------------

// SpaceNode tracks inter-word space.
type SpaceNode struct {
	Lexeme string
}

func (*SpaceNode) inlineNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*SpaceNode) WalkChildren(Visitor) { /* No children*/ }

// Count returns the number of space runes.
func (sn *SpaceNode) Count() int { return strings.Count(sn.Lexeme, " ") }

//--------------------------------------------------------------------------

// BreakNode signals a new line that must / should be interpreted as a new
// line break (hard) or as a space (soft).
type BreakNode struct {
	Hard bool
}

func (*BreakNode) inlineNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*BreakNode) WalkChildren(Visitor) { /* No children*/ }
