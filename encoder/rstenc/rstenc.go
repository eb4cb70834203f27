//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package rstenc serializes the abstract syntax tree back into
// reStructuredText list markup.
package rstenc

import (
	"io"
	"strconv"
	"strings"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/encoder"
)

func init() {
	encoder.Register("rst", encoder.Info{
		Create: func() encoder.Encoder { return &rstEncoder{} },
	})
}

type rstEncoder struct{}

// WriteBlocks writes a block slice as reStructuredText.
func (*rstEncoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.writeBlocks(*bs, "")
	return v.b.Flush()
}

// WriteInlines writes the text of an inline slice.
func (*rstEncoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	v.b.WriteString(inlineText(*is, "\n"))
	return v.b.Flush()
}

type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

// writeBlocks writes the blocks, separated by blank lines. Every line is
// preceded by prefix.
func (v *visitor) writeBlocks(bs ast.BlockSlice, prefix string) {
	for i, bn := range bs {
		if i > 0 {
			v.b.WriteByte('\n')
		}
		v.writeBlock(bn, prefix)
	}
}

func (v *visitor) writeBlock(node ast.BlockNode, prefix string) {
	switch n := node.(type) {
	case *ast.ParaNode:
		v.b.WriteStrings(prefix, inlineText(n.Inlines, "\n"+prefix), "\n")
	case *ast.LiteralBlockNode:
		v.b.WriteStrings(prefix, "::\n\n")
		v.writeRawLines(n.Content, prefix+"   ")
	case *ast.BlockQuoteNode:
		v.writeBlocks(n.Blocks, prefix+"   ")
	case *ast.CommentNode:
		v.writeComment(n, prefix)
	case *ast.BulletListNode:
		marker := string(n.Bullet) + " "
		for i, item := range n.Items {
			if i > 0 {
				v.b.WriteByte('\n')
			}
			v.writeItem(marker, prefix, item)
		}
	case *ast.EnumListNode:
		for i, item := range n.Items {
			if i > 0 {
				v.b.WriteByte('\n')
			}
			v.writeItem(enumerator(n.Format, n.Start+i)+" ", prefix, item)
		}
	case *ast.DefinitionListNode:
		for i, item := range n.Items {
			if i > 0 {
				v.b.WriteByte('\n')
			}
			v.b.WriteStrings(prefix, inlineText(item.Term, " "))
			if len(item.Classifier) > 0 {
				v.b.WriteStrings(" : ", inlineText(item.Classifier, " "))
			}
			v.b.WriteByte('\n')
			v.writeBlocks(item.Body, prefix+"   ")
		}
	case *ast.FieldListNode:
		for _, field := range n.Fields {
			v.b.WriteStrings(prefix, ":", inlineText(field.Name, " "), ":\n")
			if len(field.Body) > 0 {
				v.writeBlocks(field.Body, prefix+"   ")
			}
		}
	case *ast.OptionListNode:
		for i, item := range n.Items {
			if i > 0 {
				v.b.WriteByte('\n')
			}
			v.b.WriteString(prefix)
			for j, opt := range item.Options {
				if j > 0 {
					v.b.WriteString(", ")
				}
				v.b.WriteString(opt.Name)
				if opt.Delimiter != 0 {
					v.b.WriteStrings(string(rune(opt.Delimiter)), opt.Argument)
				}
			}
			v.b.WriteByte('\n')
			v.writeBlocks(item.Body, prefix+"   ")
		}
	case *ast.LineBlockNode:
		v.writeLines(n.Lines, 0, prefix)
	case *ast.InvalidNode:
		v.b.Write(n.Source)
		v.b.WriteByte('\n')
	}
}

// writeItem writes one list item. A leading paragraph goes on the marker
// line; otherwise the marker stands alone and the body hangs below it.
func (v *visitor) writeItem(marker, prefix string, bs ast.BlockSlice) {
	childPrefix := prefix + strings.Repeat(" ", len(marker))
	if len(bs) == 0 {
		v.b.WriteStrings(prefix, strings.TrimRight(marker, " "), "\n")
		return
	}
	if pn, ok := bs[0].(*ast.ParaNode); ok {
		v.b.WriteStrings(prefix, marker, inlineText(pn.Inlines, "\n"+childPrefix), "\n")
		for _, bn := range bs[1:] {
			v.b.WriteByte('\n')
			v.writeBlock(bn, childPrefix)
		}
		return
	}
	v.b.WriteStrings(prefix, strings.TrimRight(marker, " "), "\n")
	v.writeBlocks(bs, childPrefix)
}

func (v *visitor) writeComment(n *ast.CommentNode, prefix string) {
	if len(n.Content) == 0 {
		v.b.WriteStrings(prefix, "..\n")
		return
	}
	lines := strings.Split(string(n.Content), "\n")
	v.b.WriteStrings(prefix, ".. ", lines[0], "\n")
	for _, line := range lines[1:] {
		if line == "" {
			v.b.WriteByte('\n')
			continue
		}
		v.b.WriteStrings(prefix, "   ", line, "\n")
	}
}

func (v *visitor) writeRawLines(content []byte, prefix string) {
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			v.b.WriteByte('\n')
			continue
		}
		v.b.WriteStrings(prefix, line, "\n")
	}
}

// writeLines writes line block lines. The indentation after the bar grows by
// two spaces per nesting depth.
func (v *visitor) writeLines(lines []*ast.LineNode, depth int, prefix string) {
	indent := strings.Repeat(" ", 1+2*depth)
	for _, line := range lines {
		if len(line.Inlines) == 0 {
			v.b.WriteStrings(prefix, "|\n")
		} else {
			v.b.WriteStrings(prefix, "|", indent,
				inlineText(line.Inlines, "\n"+prefix+"  "), "\n")
		}
		v.writeLines(line.Children, depth+1, prefix)
	}
}

// inlineText renders inlines, replacing break nodes with brk.
func inlineText(is ast.InlineSlice, brk string) string {
	var sb strings.Builder
	for _, in := range is {
		switch n := in.(type) {
		case *ast.TextNode:
			sb.WriteString(n.Text)
		case *ast.SpaceNode:
			sb.WriteString(n.Lexeme)
		case *ast.BreakNode:
			sb.WriteString(brk)
		}
	}
	return sb.String()
}

// enumerator renders the list marker of the given ordinal.
func enumerator(format ast.EnumFormat, val int) string {
	var literal string
	switch format.Type {
	case ast.LowerAlpha:
		literal = string(rune('a' + val - 1))
	case ast.UpperAlpha:
		literal = string(rune('A' + val - 1))
	case ast.LowerRoman:
		literal = strings.ToLower(toRoman(val))
	case ast.UpperRoman:
		literal = toRoman(val)
	default:
		literal = strconv.Itoa(val)
	}
	var sb strings.Builder
	if format.Prefix != 0 {
		sb.WriteByte(format.Prefix)
	}
	sb.WriteString(literal)
	sb.WriteByte(format.Suffix)
	return sb.String()
}

var romanUnits = []struct {
	val int
	lit string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(val int) string {
	var sb strings.Builder
	for _, u := range romanUnits {
		for val >= u.val {
			sb.WriteString(u.lit)
			val -= u.val
		}
	}
	return sb.String()
}
