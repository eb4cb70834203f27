//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/encoder"
)

func init() {
	encoder.Register("text", encoder.Info{
		Create: func() encoder.Encoder { return &textEncoder{} },
	})
}

type textEncoder struct{}

// WriteBlocks writes the content of a block slice to the writer.
func (*textEncoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.acceptBlockSlice(*bs)
	return v.b.Flush()
}

// WriteInlines writes an inline slice to the writer.
func (*textEncoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	for _, in := range *is {
		ast.Walk(v, in)
	}
	return v.b.Flush()
}

// visitor writes the plain text of the abstract syntax tree to an io.Writer.
type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.ParaNode:
		v.acceptInlineSlice(n.Inlines)
		return nil
	case *ast.LiteralBlockNode:
		v.b.Write(n.Content)
		return nil
	case *ast.CommentNode:
		return nil
	case *ast.BulletListNode:
		v.acceptItems(n.Items)
		return nil
	case *ast.EnumListNode:
		v.acceptItems(n.Items)
		return nil
	case *ast.DefinitionListNode:
		for i, item := range n.Items {
			v.writePosChar(i, '\n')
			v.acceptInlineSlice(item.Term)
			if len(item.Classifier) > 0 {
				v.b.WriteByte(' ')
				v.acceptInlineSlice(item.Classifier)
			}
			v.b.WriteByte('\n')
			v.acceptBlockSlice(item.Body)
		}
		return nil
	case *ast.FieldListNode:
		for i, field := range n.Fields {
			v.writePosChar(i, '\n')
			v.acceptInlineSlice(field.Name)
			v.b.WriteByte('\n')
			v.acceptBlockSlice(field.Body)
		}
		return nil
	case *ast.OptionListNode:
		for i, item := range n.Items {
			v.writePosChar(i, '\n')
			for j, opt := range item.Options {
				v.writePosChar(j, ' ')
				v.b.WriteString(opt.Name)
				if opt.Delimiter != 0 {
					v.b.WriteByte(opt.Delimiter)
					v.b.WriteString(opt.Argument)
				}
			}
			v.b.WriteByte('\n')
			v.acceptBlockSlice(item.Body)
		}
		return nil
	case *ast.LineBlockNode:
		v.acceptLines(n.Lines, true)
		return nil
	case *ast.InvalidNode:
		v.b.Write(n.Source)
		return nil
	case *ast.TextNode:
		v.b.WriteString(n.Text)
		return nil
	case *ast.SpaceNode:
		v.b.WriteByte(' ')
		return nil
	case *ast.BreakNode:
		v.b.WriteByte('\n')
		return nil
	}
	return v
}

func (v *visitor) acceptBlockSlice(bs ast.BlockSlice) {
	for i, bn := range bs {
		v.writePosChar(i, '\n')
		ast.Walk(v, bn)
	}
}

func (v *visitor) acceptInlineSlice(is ast.InlineSlice) {
	for _, in := range is {
		ast.Walk(v, in)
	}
}

func (v *visitor) acceptItems(items []ast.BlockSlice) {
	for i := range items {
		v.writePosChar(i, '\n')
		v.acceptBlockSlice(items[i])
	}
}

func (v *visitor) acceptLines(lines []*ast.LineNode, first bool) {
	for i, line := range lines {
		if !first || i > 0 {
			v.b.WriteByte('\n')
		}
		v.acceptInlineSlice(line.Inlines)
		v.acceptLines(line.Children, false)
	}
}

func (v *visitor) writePosChar(pos int, ch byte) {
	if pos > 0 {
		v.b.WriteByte(ch)
	}
}
