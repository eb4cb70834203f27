//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package szenc

import (
	"fmt"

	"codeberg.org/t73fde/sxpf"

	"codeberg.org/rstree/rstree/ast"
)

// NewTransformer returns a new transformer to create s-expressions from AST
// nodes.
func NewTransformer() *Transformer {
	sf := sxpf.MakeMappedFactory()
	t := Transformer{
		sf:          sf,
		symBlock:    sf.MustMake("BLOCK"),
		symInline:   sf.MustMake("INLINE"),
		symPara:     sf.MustMake("PARA"),
		symLiteral:  sf.MustMake("LITERAL"),
		symQuote:    sf.MustMake("QUOTE"),
		symComment:  sf.MustMake("COMMENT"),
		symBullet:   sf.MustMake("BULLET-LIST"),
		symEnum:     sf.MustMake("ENUM-LIST"),
		symDefList:  sf.MustMake("DEFINITION-LIST"),
		symDef:      sf.MustMake("DEF"),
		symFldList:  sf.MustMake("FIELD-LIST"),
		symField:    sf.MustMake("FIELD"),
		symOptList:  sf.MustMake("OPTION-LIST"),
		symOptGroup: sf.MustMake("OPTION-GROUP"),
		symOption:   sf.MustMake("OPTION"),
		symLnBlock:  sf.MustMake("LINE-BLOCK"),
		symLine:     sf.MustMake("LINE"),
		symInvalid:  sf.MustMake("INVALID"),
		symText:     sf.MustMake("TEXT"),
		symSpace:    sf.MustMake("SPACE"),
		symSoft:     sf.MustMake("SOFT"),
		symHard:     sf.MustMake("HARD"),
		symUnknown:  sf.MustMake("UNKNOWN-NODE"),
	}
	t.mapEnumTypeS = map[ast.EnumType]*sxpf.Symbol{
		ast.Arabic:     sf.MustMake("ARABIC"),
		ast.LowerAlpha: sf.MustMake("LOWER-ALPHA"),
		ast.UpperAlpha: sf.MustMake("UPPER-ALPHA"),
		ast.LowerRoman: sf.MustMake("LOWER-ROMAN"),
		ast.UpperRoman: sf.MustMake("UPPER-ROMAN"),
	}
	return &t
}

type Transformer struct {
	sf           sxpf.SymbolFactory
	symBlock     *sxpf.Symbol
	symInline    *sxpf.Symbol
	symPara      *sxpf.Symbol
	symLiteral   *sxpf.Symbol
	symQuote     *sxpf.Symbol
	symComment   *sxpf.Symbol
	symBullet    *sxpf.Symbol
	symEnum      *sxpf.Symbol
	symDefList   *sxpf.Symbol
	symDef       *sxpf.Symbol
	symFldList   *sxpf.Symbol
	symField     *sxpf.Symbol
	symOptList   *sxpf.Symbol
	symOptGroup  *sxpf.Symbol
	symOption    *sxpf.Symbol
	symLnBlock   *sxpf.Symbol
	symLine      *sxpf.Symbol
	symInvalid   *sxpf.Symbol
	symText      *sxpf.Symbol
	symSpace     *sxpf.Symbol
	symSoft      *sxpf.Symbol
	symHard      *sxpf.Symbol
	symUnknown   *sxpf.Symbol
	mapEnumTypeS map[ast.EnumType]*sxpf.Symbol
}

func (t *Transformer) GetSz(node ast.Node) *sxpf.List {
	switch n := node.(type) {
	case *ast.BlockSlice:
		return t.getBlockSlice(*n).Cons(t.symBlock)
	case *ast.InlineSlice:
		return t.getInlineSlice(*n).Cons(t.symInline)
	case *ast.ParaNode:
		return t.getInlineSlice(n.Inlines).Cons(t.symPara)
	case *ast.LiteralBlockNode:
		return sxpf.MakeList(t.symLiteral, sxpf.MakeString(string(n.Content)))
	case *ast.BlockQuoteNode:
		return t.getBlockSlice(n.Blocks).Cons(t.symQuote)
	case *ast.CommentNode:
		return sxpf.MakeList(t.symComment, sxpf.MakeString(string(n.Content)))
	case *ast.BulletListNode:
		return t.getItems(n.Items).
			Cons(sxpf.MakeString(string(n.Bullet))).
			Cons(t.symBullet)
	case *ast.EnumListNode:
		return t.getItems(n.Items).
			Cons(sxpf.Int64(int64(n.Start))).
			Cons(sxpf.MakeString(byteString(n.Format.Suffix))).
			Cons(sxpf.MakeString(byteString(n.Format.Prefix))).
			Cons(t.mapEnumTypeS[n.Format.Type]).
			Cons(t.symEnum)
	case *ast.DefinitionListNode:
		return t.getDefinitionList(n)
	case *ast.FieldListNode:
		return t.getFieldList(n)
	case *ast.OptionListNode:
		return t.getOptionList(n)
	case *ast.LineBlockNode:
		return t.getLines(n.Lines).Cons(t.symLnBlock)
	case *ast.InvalidNode:
		return sxpf.MakeList(
			t.symInvalid,
			sxpf.MakeString(n.Message),
			sxpf.MakeString(string(n.Source)),
		)
	case *ast.TextNode:
		return sxpf.MakeList(t.symText, sxpf.MakeString(n.Text))
	case *ast.SpaceNode:
		if len(n.Lexeme) > 1 {
			return sxpf.MakeList(t.symSpace, sxpf.MakeString(n.Lexeme))
		}
		return sxpf.MakeList(t.symSpace)
	case *ast.BreakNode:
		if n.Hard {
			return sxpf.MakeList(t.symHard)
		}
		return sxpf.MakeList(t.symSoft)
	}
	return sxpf.MakeList(t.symUnknown, sxpf.MakeString(fmt.Sprintf("%T %v", node, node)))
}

func (t *Transformer) getBlockSlice(bs ast.BlockSlice) *sxpf.List {
	objs := make([]sxpf.Object, len(bs))
	for i, n := range bs {
		objs[i] = t.GetSz(n)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getInlineSlice(is ast.InlineSlice) *sxpf.List {
	objs := make([]sxpf.Object, len(is))
	for i, n := range is {
		objs[i] = t.GetSz(n)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getItems(items []ast.BlockSlice) *sxpf.List {
	objs := make([]sxpf.Object, len(items))
	for i := range items {
		objs[i] = t.getBlockSlice(items[i]).Cons(t.symBlock)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getDefinitionList(dn *ast.DefinitionListNode) *sxpf.List {
	objs := make([]sxpf.Object, len(dn.Items)+1)
	objs[0] = t.symDefList
	for i, item := range dn.Items {
		objs[i+1] = sxpf.MakeList(
			t.symDef,
			t.getInlineSlice(item.Term).Cons(t.symInline),
			t.getInlineSlice(item.Classifier).Cons(t.symInline),
			t.getBlockSlice(item.Body).Cons(t.symBlock),
		)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getFieldList(fn *ast.FieldListNode) *sxpf.List {
	objs := make([]sxpf.Object, len(fn.Fields)+1)
	objs[0] = t.symFldList
	for i, field := range fn.Fields {
		objs[i+1] = sxpf.MakeList(
			t.symField,
			sxpf.MakeString(field.Key),
			t.getInlineSlice(field.Name).Cons(t.symInline),
			t.getBlockSlice(field.Body).Cons(t.symBlock),
		)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getOptionList(on *ast.OptionListNode) *sxpf.List {
	objs := make([]sxpf.Object, len(on.Items)+1)
	objs[0] = t.symOptList
	for i, item := range on.Items {
		groupObjs := make([]sxpf.Object, len(item.Options)+2)
		groupObjs[0] = t.symOptGroup
		for j, opt := range item.Options {
			groupObjs[j+1] = sxpf.MakeList(
				t.symOption,
				sxpf.MakeString(opt.Name),
				sxpf.MakeString(opt.Argument),
				sxpf.MakeString(byteString(opt.Delimiter)),
			)
		}
		groupObjs[len(item.Options)+1] = t.getBlockSlice(item.Body).Cons(t.symBlock)
		objs[i+1] = sxpf.MakeList(groupObjs...)
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getLines(lines []*ast.LineNode) *sxpf.List {
	objs := make([]sxpf.Object, len(lines))
	for i, line := range lines {
		objs[i] = t.getLines(line.Children).
			Cons(t.getInlineSlice(line.Inlines).Cons(t.symInline)).
			Cons(t.symLine)
	}
	return sxpf.MakeList(objs...)
}

func byteString(b byte) string {
	if b == 0 {
		return ""
	}
	return string(rune(b))
}
