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

// Definition of block nodes.

// ParaNode contains just a sequence of inline elements. If Forced is set, the
// paragraph must be rendered as an explicit paragraph element even when it is
// the only block of a list item.
type ParaNode struct {
	Inlines InlineSlice
	Forced  bool
}

func (*ParaNode) blockNode() { /* Just a marker */ }

// NewParaNode creates an empty ParaNode.
func NewParaNode() *ParaNode { return &ParaNode{} }

// CreateParaNode creates a parameter block from inline nodes.
func CreateParaNode(nodes ...InlineNode) *ParaNode { return &ParaNode{Inlines: nodes} }

// WalkChildren walks down the inline elements.
func (pn *ParaNode) WalkChildren(v Visitor) { pn.Inlines.WalkChildren(v) }

//--------------------------------------------------------------------------

// LiteralBlockNode contains uninterpreted text, to be presented verbatim.
type LiteralBlockNode struct {
	Content []byte
}

func (*LiteralBlockNode) blockNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*LiteralBlockNode) WalkChildren(Visitor) { /* No children*/ }

//--------------------------------------------------------------------------

// BlockQuoteNode contains blocks that are attributed to an outside source.
type BlockQuoteNode struct {
	Blocks BlockSlice
}

func (*BlockQuoteNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the quoted blocks.
func (bq *BlockQuoteNode) WalkChildren(v Visitor) { bq.Blocks.WalkChildren(v) }

//--------------------------------------------------------------------------

// CommentNode contains markup that is hidden from the rendered output.
type CommentNode struct {
	Content []byte
}

func (*CommentNode) blockNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*CommentNode) WalkChildren(Visitor) { /* No children*/ }

//--------------------------------------------------------------------------

// BulletListNode is a list of items introduced by the same bullet character.
type BulletListNode struct {
	Bullet rune
	Items  []BlockSlice
}

func (*BulletListNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the items.
func (ln *BulletListNode) WalkChildren(v Visitor) {
	for i := range ln.Items {
		ln.Items[i].WalkChildren(v)
	}
}

//--------------------------------------------------------------------------

// EnumType specifies the sequence of an enumerated list.
type EnumType int

// Supported enumeration sequences.
const (
	Arabic EnumType = iota // 1, 2, 3, ...
	LowerAlpha             // a, b, c, ...
	UpperAlpha             // A, B, C, ...
	LowerRoman             // i, ii, iii, ...
	UpperRoman             // I, II, III, ...
)

// EnumFormat combines the sequence type with the punctuation around the
// enumerator.
type EnumFormat struct {
	Type   EnumType
	Prefix byte // '(' or 0
	Suffix byte // '.' or ')'
}

// EnumListNode is a list of items counted by consecutive enumerators.
type EnumListNode struct {
	Format EnumFormat
	Start  int
	Items  []BlockSlice
}

func (*EnumListNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the items.
func (ln *EnumListNode) WalkChildren(v Visitor) {
	for i := range ln.Items {
		ln.Items[i].WalkChildren(v)
	}
}

//--------------------------------------------------------------------------

// DefinitionListNode is a list of terms, each with an associated definition.
type DefinitionListNode struct {
	Items []DefinitionItem
}

// DefinitionItem is one term with an optional classifier and its definition.
type DefinitionItem struct {
	Term       InlineSlice
	Classifier InlineSlice
	Body       BlockSlice
}

func (*DefinitionListNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the terms and their definitions.
func (dn *DefinitionListNode) WalkChildren(v Visitor) {
	for i := range dn.Items {
		dn.Items[i].Term.WalkChildren(v)
		dn.Items[i].Classifier.WalkChildren(v)
		dn.Items[i].Body.WalkChildren(v)
	}
}

//--------------------------------------------------------------------------

// FieldListNode is a list of name/value fields.
type FieldListNode struct {
	Fields []Field
}

// Field is one named field. Key is the case-folded, whitespace-normalized
// form of Name, usable for lookup.
type Field struct {
	Name InlineSlice
	Key  string
	Body BlockSlice
}

func (*FieldListNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the field names and bodies.
func (fn *FieldListNode) WalkChildren(v Visitor) {
	for i := range fn.Fields {
		fn.Fields[i].Name.WalkChildren(v)
		fn.Fields[i].Body.WalkChildren(v)
	}
}

//--------------------------------------------------------------------------

// OptionListNode describes command line options and their meaning.
type OptionListNode struct {
	Items []OptionItem
}

// OptionItem groups synonymous options with their common description.
type OptionItem struct {
	Options []ProgramOption
	Body    BlockSlice
}

// ProgramOption is one option synonym, e.g. "-o FILE" or "--output=FILE".
type ProgramOption struct {
	Name      string
	Argument  string
	Delimiter byte // ' ' or '=', 0 if no argument
}

func (*OptionListNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the option descriptions.
func (on *OptionListNode) WalkChildren(v Visitor) {
	for i := range on.Items {
		on.Items[i].Body.WalkChildren(v)
	}
}

//--------------------------------------------------------------------------

// LineBlockNode preserves line breaks and the relative indentation of its
// lines. Deeper indented lines are stored as children of the preceding
// shallower line.
type LineBlockNode struct {
	Lines []*LineNode
}

// LineNode is one line of a line block, with its nested deeper lines.
type LineNode struct {
	Inlines  InlineSlice
	Children []*LineNode
}

func (*LineBlockNode) blockNode() { /* Just a marker */ }

// WalkChildren walks down the lines, depth-first.
func (ln *LineBlockNode) WalkChildren(v Visitor) {
	for _, line := range ln.Lines {
		Walk(v, line)
	}
}

// WalkChildren walks the line content, then the nested lines.
func (ln *LineNode) WalkChildren(v Visitor) {
	ln.Inlines.WalkChildren(v)
	for _, child := range ln.Children {
		Walk(v, child)
	}
}

//--------------------------------------------------------------------------

// InvalidNode marks input that could not be parsed as the element it started
// out to be. Source keeps the offending raw input.
type InvalidNode struct {
	Message string
	Source  []byte
}

func (*InvalidNode) blockNode() { /* Just a marker */ }

// WalkChildren does nothing.
func (*InvalidNode) WalkChildren(Visitor) { /* No children*/ }
