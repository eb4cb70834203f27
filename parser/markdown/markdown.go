//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown provides a parser for markdown.
package markdown

import (
	"bytes"
	"fmt"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "markdown",
		AltNames:     []string{"md"},
		IsASTParser:  true,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
}

func parseBlocks(inp *input.Input) ast.BlockSlice {
	p := parseMarkdown(inp)
	return p.acceptBlockSlice(p.docNode)
}

func parseInlines(inp *input.Input) ast.InlineSlice {
	p := parseMarkdown(inp)
	var ins ast.InlineSlice
	for child := p.docNode.FirstChild(); child != nil; child = child.NextSibling() {
		ins = append(ins, p.acceptChildren(child)...)
	}
	return ins
}

func parseMarkdown(inp *input.Input) *mdP {
	source := []byte(inp.Src[inp.Pos:])
	node := gm.DefaultParser().Parse(gmText.NewReader(source))
	return &mdP{source: source, docNode: node}
}

type mdP struct {
	source  []byte
	docNode gmAst.Node
}

func (p *mdP) acceptBlockSlice(docNode gmAst.Node) ast.BlockSlice {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("Expected document, but got node type %v", docNode.Type()))
	}
	result := make(ast.BlockSlice, 0, docNode.ChildCount())
	for child := docNode.FirstChild(); child != nil; child = child.NextSibling() {
		if block := p.acceptBlock(child); block != nil {
			result = append(result, block)
		}
	}
	return result
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.BlockNode {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("Expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph:
		return p.acceptParagraph(n)
	case *gmAst.TextBlock:
		return p.acceptTextBlock(n)
	case *gmAst.Heading:
		return p.acceptParagraph(n)
	case *gmAst.ThematicBreak:
		return nil
	case *gmAst.CodeBlock:
		return p.acceptRawBlock(n)
	case *gmAst.FencedCodeBlock:
		return p.acceptRawBlock(n)
	case *gmAst.Blockquote:
		return p.acceptBlockquote(n)
	case *gmAst.List:
		return p.acceptList(n)
	case *gmAst.HTMLBlock:
		return p.acceptRawBlock(n)
	}
	panic(fmt.Sprintf("Unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptParagraph(node gmAst.Node) ast.BlockNode {
	if ins := p.acceptChildren(node); len(ins) > 0 {
		return &ast.ParaNode{Inlines: ins}
	}
	return nil
}

func (p *mdP) acceptTextBlock(node *gmAst.TextBlock) ast.BlockNode {
	return p.acceptParagraph(node)
}

func (p *mdP) acceptRawBlock(node gmAst.Node) *ast.LiteralBlockNode {
	lines := node.Lines()
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 {
			if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
				line = line[0 : l-2]
			} else if line[l-1] == '\n' || line[l-1] == '\r' {
				line = line[0 : l-1]
			}
		}
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return &ast.LiteralBlockNode{Content: buf.Bytes()}
}

func (p *mdP) acceptBlockquote(node *gmAst.Blockquote) *ast.BlockQuoteNode {
	return &ast.BlockQuoteNode{Blocks: p.acceptItemSlice(node)}
}

func (p *mdP) acceptList(node *gmAst.List) ast.BlockNode {
	items := make([]ast.BlockSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*gmAst.ListItem)
		if !ok {
			panic(fmt.Sprintf("Expected list item node, but got %v", child.Kind()))
		}
		items = append(items, p.acceptItemSlice(item))
	}
	if node.IsOrdered() {
		return &ast.EnumListNode{
			Format: ast.EnumFormat{Type: ast.Arabic, Suffix: node.Marker},
			Start:  node.Start,
			Items:  items,
		}
	}
	return &ast.BulletListNode{Bullet: rune(node.Marker), Items: items}
}

func (p *mdP) acceptItemSlice(node gmAst.Node) ast.BlockSlice {
	result := make(ast.BlockSlice, 0, node.ChildCount())
	for elem := node.FirstChild(); elem != nil; elem = elem.NextSibling() {
		if item := p.acceptBlock(elem); item != nil {
			result = append(result, item)
		}
	}
	return result
}

func (p *mdP) acceptChildren(node gmAst.Node) ast.InlineSlice {
	result := make(ast.InlineSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if inlines := p.acceptInline(child); inlines != nil {
			result = append(result, inlines...)
		}
	}
	return result
}

// acceptInline flattens all markdown inline markup to plain text, space and
// break nodes.
func (p *mdP) acceptInline(node gmAst.Node) ast.InlineSlice {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("Expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return splitText(string(n.Value))
	case *gmAst.CodeSpan:
		return p.acceptChildren(n)
	case *gmAst.Emphasis:
		return p.acceptChildren(n)
	case *gmAst.Link:
		return p.acceptChildren(n)
	case *gmAst.Image:
		return p.acceptChildren(n)
	case *gmAst.AutoLink:
		return splitText(string(n.URL(p.source)))
	case *gmAst.RawHTML:
		return nil
	}
	panic(fmt.Sprintf("Unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) ast.InlineSlice {
	result := splitText(string(node.Segment.Value(p.source)))
	if node.HardLineBreak() {
		result = append(result, &ast.BreakNode{Hard: true})
	} else if node.SoftLineBreak() {
		result = append(result, &ast.BreakNode{Hard: false})
	}
	return result
}

// splitText transforms the text into a sequence of TextNode and SpaceNode.
func splitText(text string) ast.InlineSlice {
	if text == "" {
		return nil
	}
	result := make(ast.InlineSlice, 0, 1)
	state := 0 // 0=unknown,1=non-spaces,2=spaces
	lastPos := 0
	for pos, ch := range text {
		if ch == ' ' || ch == '\t' {
			if state == 1 {
				result = append(result, &ast.TextNode{Text: text[lastPos:pos]})
				lastPos = pos
			}
			state = 2
		} else {
			if state == 2 {
				result = append(result, &ast.SpaceNode{Lexeme: text[lastPos:pos]})
				lastPos = pos
			}
			state = 1
		}
	}
	switch state {
	case 1:
		result = append(result, &ast.TextNode{Text: text[lastPos:]})
	case 2:
		result = append(result, &ast.SpaceNode{Lexeme: text[lastPos:]})
	}
	return result
}
