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
	"regexp"
	"strconv"
	"strings"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
)

// enumMarker is one classified enumerator, e.g. "3.", "(iv)", "#)".
type enumMarker struct {
	literal string
	prefix  byte // '(' or 0
	suffix  byte // '.' or ')'
	width   int  // marker width in characters, without trailing space
}

func (m *enumMarker) isAuto() bool { return m.literal == "#" }

// classifyEnumMarker checks whether the current line starts with an
// enumerator. The cursor is always restored.
func (cp *rstP) classifyEnumMarker() (enumMarker, bool) {
	inp := cp.inp
	posL := inp.Pos
	defer inp.SetPos(posL)

	var m enumMarker
	if inp.Ch == '(' {
		m.prefix = '('
		inp.Next()
	}
	posT := inp.Pos
	switch {
	case inp.Ch == '#':
		inp.Next()
	case '0' <= inp.Ch && inp.Ch <= '9':
		for '0' <= inp.Ch && inp.Ch <= '9' {
			inp.Next()
		}
	case 'a' <= inp.Ch && inp.Ch <= 'z':
		for 'a' <= inp.Ch && inp.Ch <= 'z' {
			inp.Next()
		}
	case 'A' <= inp.Ch && inp.Ch <= 'Z':
		for 'A' <= inp.Ch && inp.Ch <= 'Z' {
			inp.Next()
		}
	default:
		return m, false
	}
	m.literal = string(inp.Src[posT:inp.Pos])
	if len(m.literal) > 1 && isAlphaLiteral(m.literal) && romanValue(m.literal) == 0 {
		// Multi-letter sequences are only enumerators when they are Roman
		// numerals.
		return m, false
	}
	switch inp.Ch {
	case '.':
		if m.prefix == '(' {
			return m, false
		}
		m.suffix = '.'
	case ')':
		m.suffix = ')'
	default:
		return m, false
	}
	inp.Next()
	if inp.Ch != ' ' && inp.Ch != '\t' && !input.IsEOLEOS(inp.Ch) {
		return m, false
	}
	m.width = inp.Pos - posL
	return m, true
}

func isAlphaLiteral(lit string) bool {
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		if !('a' <= ch && ch <= 'z') && !('A' <= ch && ch <= 'Z') {
			return false
		}
	}
	return len(lit) > 0
}

//--------------------------------------------------------------------------
// Roman numerals.

var romanRx = regexp.MustCompile(`^(?i)M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var romanDigits = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// romanValue returns the value of a Roman numeral, or 0 if lit is not one.
// Upper and lower case letters must not be mixed.
func romanValue(lit string) int {
	if lit == "" || !romanRx.MatchString(lit) {
		return 0
	}
	upper := strings.ToUpper(lit)
	if lit != upper && lit != strings.ToLower(lit) {
		return 0
	}
	val := 0
	for i := 0; i < len(upper); i++ {
		d := romanDigits[upper[i]]
		if i+1 < len(upper) && d < romanDigits[upper[i+1]] {
			val -= d
			continue
		}
		val += d
	}
	return val
}

// isAmbiguousLetter reports whether a single letter could start both an
// alphabetic and a Roman sequence.
func isAmbiguousLetter(lit string) bool {
	return len(lit) == 1 && strings.ContainsAny(lit, "ivxlcdmIVXLCDM")
}

//--------------------------------------------------------------------------
// Sequence resolution.

// markerValue returns the ordinal of the marker literal under the given
// sequence type, or 0 if the literal does not belong to the sequence.
func markerValue(lit string, typ ast.EnumType) int {
	switch typ {
	case ast.Arabic:
		if lit == "" || !isDigits(lit) {
			return 0
		}
		val, err := strconv.Atoi(lit)
		if err != nil {
			return 0
		}
		return val
	case ast.LowerAlpha:
		if len(lit) == 1 && 'a' <= lit[0] && lit[0] <= 'z' {
			return int(lit[0]-'a') + 1
		}
		return 0
	case ast.UpperAlpha:
		if len(lit) == 1 && 'A' <= lit[0] && lit[0] <= 'Z' {
			return int(lit[0]-'A') + 1
		}
		return 0
	case ast.LowerRoman:
		if lit != strings.ToLower(lit) {
			return 0
		}
		return romanValue(lit)
	case ast.UpperRoman:
		if lit != strings.ToUpper(lit) {
			return 0
		}
		return romanValue(lit)
	}
	return 0
}

func isDigits(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if lit[i] < '0' || lit[i] > '9' {
			return false
		}
	}
	return len(lit) > 0
}

// resolveEnumFormat determines sequence type and start value from the first
// enumerator of a list. A single ambiguous letter such as "i" or "v" is
// resolved by peeking at the following enumerator.
func (cp *rstP) resolveEnumFormat(first enumMarker) (ast.EnumFormat, int, bool) {
	format := ast.EnumFormat{Prefix: first.prefix, Suffix: first.suffix}
	lit := first.literal
	switch {
	case first.isAuto():
		format.Type = ast.Arabic
		return format, 1, true
	case isDigits(lit):
		format.Type = ast.Arabic
		start := markerValue(lit, ast.Arabic)
		if start < 1 {
			return format, 0, false
		}
		return format, start, true
	case isAmbiguousLetter(lit):
		format.Type = cp.peekSequenceType(first)
		return format, markerValue(lit, format.Type), true
	case len(lit) == 1:
		if 'a' <= lit[0] && lit[0] <= 'z' {
			format.Type = ast.LowerAlpha
		} else {
			format.Type = ast.UpperAlpha
		}
		return format, markerValue(lit, format.Type), true
	default:
		if lit == strings.ToLower(lit) {
			format.Type = ast.LowerRoman
		} else {
			format.Type = ast.UpperRoman
		}
		start := romanValue(lit)
		if start < 1 {
			return format, 0, false
		}
		return format, start, true
	}
}

// peekSequenceType decides between the Roman and the alphabetic reading of an
// ambiguous first enumerator by inspecting the enumerator of the second item.
func (cp *rstP) peekSequenceType(first enumMarker) ast.EnumType {
	lower := first.literal == strings.ToLower(first.literal)
	alpha, roman := ast.UpperAlpha, ast.UpperRoman
	if lower {
		alpha, roman = ast.LowerAlpha, ast.LowerRoman
	}

	inp := cp.inp
	posL := inp.Pos
	defer inp.SetPos(posL)
	inp.SetPos(posL + first.width)
	cp.skimItemBody(first.width)
	cp.skipBlankLines()
	second, ok := cp.classifyEnumMarker()
	if !ok || second.prefix != first.prefix || second.suffix != first.suffix {
		// No successor: "i" alone starts a Roman sequence, any other
		// ambiguous letter an alphabetic one.
		if romanValue(first.literal) == 1 {
			return roman
		}
		return alpha
	}
	if second.isAuto() {
		return alpha
	}
	expect := romanValue(first.literal) + 1
	if markerValue(second.literal, roman) == expect {
		return roman
	}
	return alpha
}

//--------------------------------------------------------------------------

// parseEnumList parses a run of items with consecutive enumerators of the
// same format. An enumerator that does not continue the sequence ends the
// list and starts a new block.
func (cp *rstP) parseEnumList(first enumMarker) (ast.BlockNode, bool) {
	format, start, ok := cp.resolveEnumFormat(first)
	if !ok {
		return nil, false
	}
	inp := cp.inp
	ln := &ast.EnumListNode{Format: format, Start: start}
	expect := start
	for {
		posL := inp.Pos
		cp.skipBlankLines()
		m, ok := cp.classifyEnumMarker()
		if !ok || m.prefix != format.Prefix || m.suffix != format.Suffix ||
			(!m.isAuto() && markerValue(m.literal, format.Type) != expect) {
			inp.SetPos(posL)
			break
		}
		inp.SetPos(inp.Pos + m.width)
		ln.Items = append(ln.Items, cp.parseItemBody(m.width))
		expect++
	}
	if len(ln.Items) == 0 {
		return nil, false
	}
	return ln, true
}
