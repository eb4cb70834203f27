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

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
)

type optScan int

const (
	optNone    optScan = iota // no option marker at this position
	optOK                     // marker recognized
	optInvalid                // marker started, but is malformed
)

// parseOptionList parses groups of program options, each with a description.
// A malformed option marker yields an InvalidNode that keeps the raw line.
func (cp *rstP) parseOptionList() (ast.BlockNode, bool) {
	inp := cp.inp
	opts, res := cp.scanOptionGroup()
	switch res {
	case optNone:
		return nil, false
	case optInvalid:
		posL := inp.Pos
		inp.SkipToEOL()
		src := append([]byte(nil), inp.Src[posL:inp.Pos]...)
		inp.EatEOL()
		return &ast.InvalidNode{
			Message: "incomplete option marker: missing closing '>'",
			Source:  src,
		}, true
	}
	on := &ast.OptionListNode{}
	for {
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
		on.Items = append(on.Items, ast.OptionItem{
			Options: opts,
			Body:    cp.parseRegion(buf.Bytes()),
		})
		posL := inp.Pos
		cp.skipBlankLines()
		next, res2 := cp.scanOptionGroup()
		if res2 != optOK {
			inp.SetPos(posL)
			break
		}
		opts = next
	}
	return on, true
}

// scanOptionGroup scans a comma separated group of option synonyms at the
// start of a line. On optOK the cursor is placed after the marker, otherwise
// it is restored.
func (cp *rstP) scanOptionGroup() ([]ast.ProgramOption, optScan) {
	inp := cp.inp
	posL := inp.Pos
	var opts []ast.ProgramOption
	for {
		opt, res := cp.scanOption()
		if res != optOK {
			inp.SetPos(posL)
			return nil, res
		}
		opts = append(opts, opt)
		if inp.Ch == ',' && inp.Peek() == ' ' {
			inp.Next()
			inp.Next()
			continue
		}
		break
	}
	// The description either follows after at least two spaces or starts on
	// the next indented line.
	if input.IsEOLEOS(inp.Ch) {
		return opts, optOK
	}
	if inp.Ch == ' ' && inp.Peek() == ' ' {
		return opts, optOK
	}
	inp.SetPos(posL)
	return nil, optNone
}

// scanOption scans one option synonym: "-x", "+x", "--long", "/X", each with
// an optional argument.
func (cp *rstP) scanOption() (ast.ProgramOption, optScan) {
	inp := cp.inp
	var opt ast.ProgramOption
	posL := inp.Pos
	switch inp.Ch {
	case '-':
		inp.Next()
		if inp.Ch == '-' {
			inp.Next()
			if !isOptionNameStart(inp.Ch) {
				inp.SetPos(posL)
				return opt, optNone
			}
			for isOptionNameChar(inp.Ch) {
				inp.Next()
			}
		} else {
			if !isAlphanumeric(inp.Ch) {
				inp.SetPos(posL)
				return opt, optNone
			}
			inp.Next()
		}
	case '+':
		inp.Next()
		if !isAlphanumeric(inp.Ch) {
			inp.SetPos(posL)
			return opt, optNone
		}
		inp.Next()
	case '/':
		inp.Next()
		if !isOptionNameStart(inp.Ch) {
			inp.SetPos(posL)
			return opt, optNone
		}
		for isOptionNameChar(inp.Ch) {
			inp.Next()
		}
	default:
		return opt, optNone
	}
	opt.Name = string(inp.Src[posL:inp.Pos])

	switch inp.Ch {
	case '=':
		inp.Next()
		arg, res := cp.scanOptionArgument()
		if res != optOK {
			inp.SetPos(posL)
			return ast.ProgramOption{}, res
		}
		opt.Argument, opt.Delimiter = arg, '='
	case ' ':
		posS := inp.Pos
		inp.Next()
		if inp.Ch == ' ' || !isOptionArgumentStart(inp.Ch) {
			// Two spaces or no argument word: the description follows.
			inp.SetPos(posS)
			return opt, optOK
		}
		arg, res := cp.scanOptionArgument()
		if res != optOK {
			inp.SetPos(posL)
			return ast.ProgramOption{}, res
		}
		opt.Argument, opt.Delimiter = arg, ' '
	}
	return opt, optOK
}

// scanOptionArgument scans an argument word or a "<placeholder>". A
// placeholder without closing '>' on the same line is malformed.
func (cp *rstP) scanOptionArgument() (string, optScan) {
	inp := cp.inp
	if inp.Ch == '<' {
		posC := inp.Pos
		inp.Next()
		for inp.Ch != '>' {
			if input.IsEOLEOS(inp.Ch) {
				return "", optInvalid
			}
			inp.Next()
		}
		inp.Next()
		return string(inp.Src[posC:inp.Pos]), optOK
	}
	if !isAlphanumeric(inp.Ch) {
		return "", optNone
	}
	posC := inp.Pos
	for isOptionNameChar(inp.Ch) {
		inp.Next()
	}
	return string(inp.Src[posC:inp.Pos]), optOK
}

func isAlphanumeric(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}

func isOptionNameStart(ch rune) bool { return isAlphanumeric(ch) }

func isOptionArgumentStart(ch rune) bool { return isAlphanumeric(ch) || ch == '<' }

func isOptionNameChar(ch rune) bool {
	return isAlphanumeric(ch) || ch == '-' || ch == '_'
}

// atOptionMarker reports whether the current line starts an option group.
// The cursor is not moved. A malformed marker counts, since it also
// interrupts a paragraph.
func (cp *rstP) atOptionMarker() bool {
	posL := cp.inp.Pos
	_, res := cp.scanOptionGroup()
	cp.inp.SetPos(posL)
	return res != optNone
}
