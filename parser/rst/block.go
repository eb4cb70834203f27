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

import (
	"bytes"
	"strings"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/strfun"
)

// parseBlock parses one block element. The cursor is at the start of a line.
// A nil result means the line(s) did not produce a block (e.g. a blank line).
func (cp *rstP) parseBlock() ast.BlockNode {
	inp := cp.inp
	if input.IsEOLEOS(inp.Ch) {
		if inp.Ch == input.EOS {
			return nil
		}
		// Blank lines do not cancel an announced literal block.
		inp.EatEOL()
		return nil
	}
	if inp.Ch == ' ' || inp.Ch == '\t' {
		if cp.literalNext {
			cp.literalNext = false
			return cp.parseLiteralBlock()
		}
		return cp.parseBlockQuote()
	}
	cp.literalNext = false

	switch inp.Ch {
	case '*':
		if bn, ok := cp.parseBulletList(); ok {
			return bn
		}
	case '+', '-':
		if bn, ok := cp.parseBulletList(); ok {
			return bn
		}
		if bn, ok := cp.parseOptionList(); ok {
			return bn
		}
	case '/':
		if bn, ok := cp.parseOptionList(); ok {
			return bn
		}
	case ':':
		if bn, ok := cp.parseFieldList(); ok {
			return bn
		}
	case '|':
		if bn, ok := cp.parseLineBlock(); ok {
			return bn
		}
	case '.':
		if bn, ok := cp.parseComment(); ok {
			return bn
		}
	}
	if m, ok := cp.classifyEnumMarker(); ok {
		if bn, ok2 := cp.parseEnumList(m); ok2 {
			return bn
		}
	}
	if bn, ok := cp.parseDefinitionList(); ok {
		return bn
	}
	return cp.parsePara()
}

//--------------------------------------------------------------------------
// Region collection helpers. All work line-wise, with the cursor at a line
// start, and leave the cursor at the first line that is not part of the
// collected region.

// peekIndent returns the indentation of the current line without moving the
// cursor.
func (cp *rstP) peekIndent() int {
	inp := cp.inp
	posL := inp.Pos
	cnt := inp.SkipSpace()
	inp.SetPos(posL)
	return cnt
}

// skipBlankLines consumes blank lines and returns their count.
func (cp *rstP) skipBlankLines() int {
	inp := cp.inp
	cnt := 0
	for {
		posL := inp.Pos
		inp.SkipSpace()
		if inp.Ch == '\n' || inp.Ch == '\r' {
			inp.EatEOL()
			cnt++
			continue
		}
		if inp.Ch != input.EOS {
			inp.SetPos(posL)
		}
		return cnt
	}
}

// collectIndented consumes all subsequent lines indented by at least col,
// dedents them by col and writes them to buf, one per line. Interleaved
// blank lines are kept only if more indented content follows.
func (cp *rstP) collectIndented(buf *bytes.Buffer, col int) {
	inp := cp.inp
	pending := 0
	for inp.Ch != input.EOS {
		posL := inp.Pos
		cnt := inp.SkipSpace()
		if input.IsEOLEOS(inp.Ch) {
			if inp.Ch == input.EOS {
				return
			}
			inp.EatEOL()
			pending++
			continue
		}
		if cnt < col {
			inp.SetPos(posL)
			return
		}
		for ; pending > 0; pending-- {
			buf.WriteByte('\n')
		}
		for i := col; i < cnt; i++ {
			buf.WriteByte(' ')
		}
		posC := inp.Pos
		inp.SkipToEOL()
		buf.Write(inp.Src[posC:inp.Pos])
		buf.WriteByte('\n')
		inp.EatEOL()
	}
}

// collectHanging consumes the indented region that follows the current
// position, using the indentation of its first non-blank line as the region
// indentation. Leading blank lines are skipped.
func (cp *rstP) collectHanging(buf *bytes.Buffer) {
	inp := cp.inp
	posL := inp.Pos
	skipped := 0
	for {
		posB := inp.Pos
		cnt := inp.SkipSpace()
		if input.IsEOLEOS(inp.Ch) {
			if inp.Ch == input.EOS {
				inp.SetPos(posL)
				return
			}
			inp.EatEOL()
			skipped++
			continue
		}
		if cnt == 0 {
			inp.SetPos(posL)
			return
		}
		inp.SetPos(posB)
		if buf.Len() > 0 {
			for ; skipped > 0; skipped-- {
				buf.WriteByte('\n')
			}
		}
		cp.collectIndented(buf, cnt)
		return
	}
}

//--------------------------------------------------------------------------

// parseLiteralBlock collects the indented block that a paragraph ending in
// "::" announced.
func (cp *rstP) parseLiteralBlock() ast.BlockNode {
	col := cp.peekIndent()
	var buf bytes.Buffer
	cp.collectIndented(&buf, col)
	content := buf.Bytes()
	if l := len(content); l > 0 && content[l-1] == '\n' {
		content = content[:l-1]
	}
	return &ast.LiteralBlockNode{Content: content}
}

// parseBlockQuote treats an unexpected indented region as a block quote.
func (cp *rstP) parseBlockQuote() ast.BlockNode {
	col := cp.peekIndent()
	var buf bytes.Buffer
	cp.collectIndented(&buf, col)
	return &ast.BlockQuoteNode{Blocks: cp.parseRegion(buf.Bytes())}
}

// parseComment parses ".." followed by white space and an optional hanging
// body.
func (cp *rstP) parseComment() (ast.BlockNode, bool) {
	inp := cp.inp
	posL := inp.Pos
	inp.Next()
	if inp.Ch != '.' {
		inp.SetPos(posL)
		return nil, false
	}
	inp.Next()
	if inp.Ch != ' ' && inp.Ch != '\t' && !input.IsEOLEOS(inp.Ch) {
		inp.SetPos(posL)
		return nil, false
	}
	var buf bytes.Buffer
	inp.SkipSpace()
	if !input.IsEOLEOS(inp.Ch) {
		posC := inp.Pos
		inp.SkipToEOL()
		buf.Write(inp.Src[posC:inp.Pos])
		buf.WriteByte('\n')
	}
	inp.EatEOL()
	cp.collectHanging(&buf)
	content := buf.Bytes()
	if l := len(content); l > 0 && content[l-1] == '\n' {
		content = content[:l-1]
	}
	return &ast.CommentNode{Content: content}, true
}

//--------------------------------------------------------------------------

// parsePara collects consecutive text lines into a paragraph. A trailing
// "::" announces a literal block for the next indented region.
func (cp *rstP) parsePara() ast.BlockNode {
	inp := cp.inp
	var sb strings.Builder
	for {
		posC := inp.Pos
		inp.SkipToEOL()
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(inp.Src[posC:inp.Pos])
		inp.EatEOL()
		if !cp.atParaContinuation() {
			break
		}
	}
	text := strfun.TrimSpaceRight(sb.String())
	if strings.HasSuffix(text, "::") {
		cp.literalNext = true
		rest := text[:len(text)-2]
		switch {
		case rest == "":
			return nil
		case strings.HasSuffix(rest, "\n"):
			text = rest[:len(rest)-1]
		case strings.HasSuffix(rest, " "), strings.HasSuffix(rest, "\t"):
			text = strfun.TrimSpaceRight(rest)
		default:
			text = rest + ":"
		}
	}
	inls := parseSpans(text)
	if len(inls) == 0 {
		return nil
	}
	return &ast.ParaNode{Inlines: inls}
}

// atParaContinuation reports whether the current line continues the open
// paragraph. Every list or comment marker interrupts a paragraph.
func (cp *rstP) atParaContinuation() bool {
	inp := cp.inp
	if input.IsEOLEOS(inp.Ch) || inp.Ch == ' ' || inp.Ch == '\t' {
		return false
	}
	return !cp.atMarkerLine()
}

// atMarkerLine reports whether the current line starts with some block
// marker. The cursor is not moved.
func (cp *rstP) atMarkerLine() bool {
	inp := cp.inp
	switch inp.Ch {
	case '*':
		return cp.atBulletMarker()
	case '+', '-':
		return cp.atBulletMarker() || cp.atOptionMarker()
	case '/':
		return cp.atOptionMarker()
	case ':':
		return cp.atFieldMarker()
	case '|':
		return cp.atLineBlockMarker()
	case '.':
		posL := inp.Pos
		inp.Next()
		ok := inp.Ch == '.'
		if ok {
			inp.Next()
			ok = inp.Ch == ' ' || inp.Ch == '\t' || input.IsEOLEOS(inp.Ch)
		}
		inp.SetPos(posL)
		return ok
	}
	_, ok := cp.classifyEnumMarker()
	return ok
}

func (cp *rstP) atBulletMarker() bool {
	inp := cp.inp
	switch inp.Ch {
	case '*', '+', '-':
		nxt := inp.Peek()
		return nxt == ' ' || nxt == '\t' || input.IsEOLEOS(nxt)
	}
	return false
}

func (cp *rstP) atLineBlockMarker() bool {
	inp := cp.inp
	posL := inp.Pos
	bars := 0
	for inp.Ch == '|' {
		bars++
		inp.Next()
	}
	ok := bars > 0 && (inp.Ch == ' ' || inp.Ch == '\t' || input.IsEOLEOS(inp.Ch))
	inp.SetPos(posL)
	return ok
}
