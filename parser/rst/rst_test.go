//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package rst_test provides some tests for the reStructuredText parser.
package rst_test

import (
	"fmt"
	"strings"
	"testing"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/input"
	"codeberg.org/rstree/rstree/parser"

	_ "codeberg.org/rstree/rstree/parser/rst"
)

type TestCase struct{ source, want string }
type TestCases []TestCase

func checkTcs(t *testing.T, tcs TestCases) {
	t.Helper()

	for tcn, tc := range tcs {
		t.Run(fmt.Sprintf("TC=%02d,src=%q", tcn, tc.source), func(st *testing.T) {
			st.Helper()
			inp := input.NewInput([]byte(tc.source))
			bns := parser.ParseBlocks(inp, "rst")
			var tv TestVisitor
			ast.Walk(&tv, &bns)
			got := tv.String()
			if tc.want != got {
				st.Errorf("\nwant=%q\n got=%q", tc.want, got)
			}
		})
	}
}

func TestEOL(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"", ""},
		{"\n", ""},
		{"\r", ""},
		{"\r\n", ""},
		{"\n\n", ""},
	})
}

func TestPara(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"abcd", "(PARA abcd)"},
		{"ab cd", "(PARA ab SP cd)"},
		{"ab  cd", "(PARA ab SP2 cd)"},
		{"abcd ", "(PARA abcd)"},
		{"x\ny", "(PARA x SB y)"},
		{"z\n", "(PARA z)"},
		{"imp", "(PARA imp)"},
		{"one\n\ntwo", "(PARA one)(PARA two)"},
		{"a\nb\n\nc", "(PARA a SB b)(PARA c)"},
	})
}

func TestLiteralBlock(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"para::\n\n   code", "(PARA para:)(LIT code)"},
		{"para ::\n\n   code", "(PARA para)(LIT code)"},
		{"::\n\n   code", "(LIT code)"},
		{"p::\n\n   a\n\n   b", "(PARA p:)(LIT a\n\nb)"},
		{"p::\n\n   a\n      b", "(PARA p:)(LIT a\n   b)"},
		{"p::\n\nnot literal", "(PARA p:)(PARA not SP literal)"},
		{"p::\nq", "(PARA p:: SB q)"},
	})
}

func TestBlockQuote(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"   quoted", "(BQ (PARA quoted))"},
		{"para\n\n   quoted", "(PARA para)(BQ (PARA quoted))"},
		{"   a\n\n   b", "(BQ (PARA a)(PARA b))"},
		{"   a\n      deeper", "(BQ (PARA a)(BQ (PARA deeper)))"},
	})
}

func TestComment(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{".. note", "(COMMENT note)"},
		{".. note\n   more", "(COMMENT note\nmore)"},
		{"..\n   body", "(COMMENT body)"},
		{"...text", "(PARA ...text)"},
		{".. a\n\n   b", "(COMMENT a\n\nb)"},
	})
}

func TestBulletList(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"* aaa", "(UL {(PARA aaa)})"},
		{"* aaa\n* bbb", "(UL {(PARA aaa)} {(PARA bbb)})"},
		{"- aaa\n- bbb", "(UL {(PARA aaa)} {(PARA bbb)})"},
		{"+ aaa\n+ bbb", "(UL {(PARA aaa)} {(PARA bbb)})"},
		// Blank lines between single-paragraph items keep the list tight.
		{"* aaa\n\n* bbb\n\n* ccc", "(UL {(PARA aaa)} {(PARA bbb)} {(PARA ccc)})"},
		// A different bullet starts a new list.
		{"* aaa\n- bbb", "(UL {(PARA aaa)})(UL {(PARA bbb)})"},
		// Multi-line item bodies.
		{"* aaa\n  bbb", "(UL {(PARA aaa SB bbb)})"},
		// An item with two blocks makes the list loose.
		{"* aaa\n\n  bbb\n* ccc", "(UL {(PARA aaa)(PARA bbb)} {(FPARA ccc)})"},
		// Nested list inside an item.
		{"- outer\n\n  - inner", "(UL {(PARA outer)(UL {(PARA inner)})})"},
		{"*no list", "(PARA *no SP list)"},
		// Paragraph interrupted by a list marker.
		{"text\n* item", "(PARA text)(UL {(PARA item)})"},
	})
}

func TestEnumList(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"1. aaa", "(EL 1. 1 {(PARA aaa)})"},
		{"1. aaa\n2. bbb", "(EL 1. 1 {(PARA aaa)} {(PARA bbb)})"},
		{"3. aaa\n4. bbb", "(EL 1. 3 {(PARA aaa)} {(PARA bbb)})"},
		{"1) aaa\n2) bbb", "(EL 1) 1 {(PARA aaa)} {(PARA bbb)})"},
		{"(1) aaa\n(2) bbb", "(EL (1) 1 {(PARA aaa)} {(PARA bbb)})"},
		// A non-consecutive enumerator starts a new list.
		{"1. aaa\n3. bbb", "(EL 1. 1 {(PARA aaa)})(EL 1. 3 {(PARA bbb)})"},
		// A changed format starts a new list.
		{"1. aaa\n2) bbb", "(EL 1. 1 {(PARA aaa)})(EL 1) 2 {(PARA bbb)})"},
		// Auto enumerator.
		{"#. aaa\n#. bbb", "(EL 1. 1 {(PARA aaa)} {(PARA bbb)})"},
		{"1. aaa\n#. bbb", "(EL 1. 1 {(PARA aaa)} {(PARA bbb)})"},
		// Alphabetic sequences.
		{"a. aaa\nb. bbb", "(EL a. 1 {(PARA aaa)} {(PARA bbb)})"},
		{"A. aaa\nB. bbb", "(EL A. 1 {(PARA aaa)} {(PARA bbb)})"},
		// Roman sequences and their disambiguation.
		{"i. one\nii. two", "(EL i. 1 {(PARA one)} {(PARA two)})"},
		{"I. one\nII. two", "(EL I. 1 {(PARA one)} {(PARA two)})"},
		{"i. one\nj. two", "(EL a. 9 {(PARA one)} {(PARA two)})"},
		{"(iv) x\n(v) y", "(EL (i) 4 {(PARA x)} {(PARA y)})"},
		{"iv. x\nv. y", "(EL i. 4 {(PARA x)} {(PARA y)})"},
		{"x. aaa\ny. bbb", "(EL a. 24 {(PARA aaa)} {(PARA bbb)})"},
		// A lone "i." starts a Roman sequence.
		{"i. one", "(EL i. 1 {(PARA one)})"},
		{"v. one", "(EL a. 22 {(PARA one)})"},
		// Not an enumerator.
		{"word. text", "(PARA word. SP text)"},
		{"1.no-space", "(PARA 1.no-space)"},
		// Item bodies align after the marker.
		{"1. aaa\n   bbb", "(EL 1. 1 {(PARA aaa SB bbb)})"},
		{"9. a\n10. b", "(EL 1. 9 {(PARA a)} {(PARA b)})"},
	})
}

func TestDefinitionList(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"term\n   def", "(DL (DT term) (DD (PARA def)))"},
		{"term\n   def1\n\n   def2", "(DL (DT term) (DD (PARA def1)(PARA def2)))"},
		{
			"term1\n   def1\nterm2\n   def2",
			"(DL (DT term1) (DD (PARA def1)) (DT term2) (DD (PARA def2)))",
		},
		{
			"term1\n   def1\n\nterm2\n   def2",
			"(DL (DT term1) (DD (PARA def1)) (DT term2) (DD (PARA def2)))",
		},
		{
			"term : classifier\n   def",
			"(DL (DT term) (DC classifier) (DD (PARA def)))",
		},
		{
			"term\n   def\n\npara",
			"(DL (DT term) (DD (PARA def)))(PARA para)",
		},
		// Nested definition list inside a definition.
		{
			"t1\n   t2\n      d2",
			"(DL (DT t1) (DD (DL (DT t2) (DD (PARA d2)))))",
		},
	})
}

func TestFieldList(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{":author: Me", "(FL (FIELD author (FB (PARA Me))))"},
		{
			":author: Me\n:date: today",
			"(FL (FIELD author (FB (PARA Me))) (FIELD date (FB (PARA today))))",
		},
		{":empty:", "(FL (FIELD empty))"},
		{":name:\n   body", "(FL (FIELD name (FB (PARA body))))"},
		{
			":name: first\n   second",
			"(FL (FIELD name (FB (PARA first SB second))))",
		},
		// Field names are normalized for the key.
		{":My   Field: v", "(FL (FIELD my field (FB (PARA v))))"},
		{":no field", "(PARA :no SP field)"},
		{"::", ""},
		{
			":a: 1\n\n:b: 2",
			"(FL (FIELD a (FB (PARA 1))) (FIELD b (FB (PARA 2))))",
		},
	})
}

func TestOptionList(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"-a  All", "(OPTL (OI (OPT -a) (OD (PARA All))))"},
		{"-a\n   All", "(OPTL (OI (OPT -a) (OD (PARA All))))"},
		{
			"-a  All\n-b  Both",
			"(OPTL (OI (OPT -a) (OD (PARA All))) (OI (OPT -b) (OD (PARA Both))))",
		},
		{
			"-o FILE, --output=FILE  Set output",
			"(OPTL (OI (OPT -o FILE) (OPT --output=FILE) (OD (PARA Set SP output))))",
		},
		{"--long  Desc", "(OPTL (OI (OPT --long) (OD (PARA Desc))))"},
		{"+c  Compat", "(OPTL (OI (OPT +c) (OD (PARA Compat))))"},
		{"/V  DOS style", "(OPTL (OI (OPT /V) (OD (PARA DOS SP style))))"},
		{
			"-i <file>  Input",
			"(OPTL (OI (OPT -i <file>) (OD (PARA Input))))",
		},
		// Not an option list: single space before description.
		{"-a desc here", "(PARA -a SP desc SP here)"},
		// Malformed marker keeps the raw line.
		{
			"-x <unterminated",
			"(INVALID incomplete option marker: missing closing '>' {-x <unterminated})",
		},
		{
			"-a  All\n-x <bad",
			"(OPTL (OI (OPT -a) (OD (PARA All))))" +
				"(INVALID incomplete option marker: missing closing '>' {-x <bad})",
		},
	})
}

func TestLineBlock(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{"| one", "(LB (LINE one))"},
		{"| one\n| two", "(LB (LINE one) (LINE two))"},
		{
			"| L1\n|   L2\n|     L3\n|   L4\n| L5",
			"(LB (LINE L1 (LINE L2 (LINE L3)) (LINE L4)) (LINE L5))",
		},
		// An indented bar-less line continues the previous line.
		{"| first\n  second", "(LB (LINE first HB second))"},
		// Blank line ends the block.
		{"| one\n\n| two", "(LB (LINE one))(LB (LINE two))"},
		{"|", "(LB (LINE))"},
		{"|| deep", "(LB (LINE deep))"},
		// Doubled bars and single bars nest the same way.
		{
			"|| L1\n||   L2\n||     L3\n||   L4\n|| L5",
			"(LB (LINE L1 (LINE L2 (LINE L3)) (LINE L4)) (LINE L5))",
		},
		{"|no block", "(PARA |no SP block)"},
	})
}

func TestNestedStructure(t *testing.T) {
	t.Parallel()
	checkTcs(t, TestCases{
		{
			"1. first\n\n   * sub1\n   * sub2\n\n2. second",
			"(EL 1. 1 {(PARA first)(UL {(PARA sub1)} {(PARA sub2)})} {(FPARA second)})",
		},
		{
			"* item::\n\n     code",
			"(UL {(PARA item:)(LIT code)})",
		},
		{
			"term\n   * a\n   * b",
			"(DL (DT term) (DD (UL {(PARA a)} {(PARA b)})))",
		},
		{
			":opts:\n   -a  All",
			"(FL (FIELD opts (FB (OPTL (OI (OPT -a) (OD (PARA All)))))))",
		},
	})
}

// TestVisitor serializes the abstract syntax tree to a string.
type TestVisitor struct {
	sb strings.Builder
}

func (tv *TestVisitor) String() string { return tv.sb.String() }

func (tv *TestVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.ParaNode:
		if n.Forced {
			tv.sb.WriteString("(FPARA")
		} else {
			tv.sb.WriteString("(PARA")
		}
		tv.visitInlineSlice(n.Inlines)
		tv.sb.WriteByte(')')
	case *ast.LiteralBlockNode:
		tv.sb.WriteString("(LIT")
		if len(n.Content) > 0 {
			tv.sb.WriteByte(' ')
			tv.sb.Write(n.Content)
		}
		tv.sb.WriteByte(')')
	case *ast.BlockQuoteNode:
		tv.sb.WriteString("(BQ ")
		tv.visitBlockSlice(n.Blocks)
		tv.sb.WriteByte(')')
	case *ast.CommentNode:
		tv.sb.WriteString("(COMMENT")
		if len(n.Content) > 0 {
			tv.sb.WriteByte(' ')
			tv.sb.Write(n.Content)
		}
		tv.sb.WriteByte(')')
	case *ast.BulletListNode:
		tv.sb.WriteString("(UL")
		tv.visitItems(n.Items)
		tv.sb.WriteByte(')')
	case *ast.EnumListNode:
		fmt.Fprintf(&tv.sb, "(EL %s %d", formatString(n.Format), n.Start)
		tv.visitItems(n.Items)
		tv.sb.WriteByte(')')
	case *ast.DefinitionListNode:
		tv.sb.WriteString("(DL")
		for _, item := range n.Items {
			tv.sb.WriteString(" (DT")
			tv.visitInlineSlice(item.Term)
			tv.sb.WriteByte(')')
			if len(item.Classifier) > 0 {
				tv.sb.WriteString(" (DC")
				tv.visitInlineSlice(item.Classifier)
				tv.sb.WriteByte(')')
			}
			tv.sb.WriteString(" (DD ")
			tv.visitBlockSlice(item.Body)
			tv.sb.WriteByte(')')
		}
		tv.sb.WriteByte(')')
	case *ast.FieldListNode:
		tv.sb.WriteString("(FL")
		for _, field := range n.Fields {
			tv.sb.WriteString(" (FIELD ")
			tv.sb.WriteString(field.Key)
			if len(field.Body) > 0 {
				tv.sb.WriteString(" (FB ")
				tv.visitBlockSlice(field.Body)
				tv.sb.WriteByte(')')
			}
			tv.sb.WriteByte(')')
		}
		tv.sb.WriteByte(')')
	case *ast.OptionListNode:
		tv.sb.WriteString("(OPTL")
		for _, item := range n.Items {
			tv.sb.WriteString(" (OI")
			for _, opt := range item.Options {
				tv.sb.WriteString(" (OPT ")
				tv.sb.WriteString(opt.Name)
				if opt.Delimiter != 0 {
					tv.sb.WriteByte(opt.Delimiter)
					tv.sb.WriteString(opt.Argument)
				}
				tv.sb.WriteByte(')')
			}
			if len(item.Body) > 0 {
				tv.sb.WriteString(" (OD ")
				tv.visitBlockSlice(item.Body)
				tv.sb.WriteByte(')')
			}
			tv.sb.WriteByte(')')
		}
		tv.sb.WriteByte(')')
	case *ast.LineBlockNode:
		tv.sb.WriteString("(LB")
		tv.visitLines(n.Lines)
		tv.sb.WriteByte(')')
	case *ast.InvalidNode:
		fmt.Fprintf(&tv.sb, "(INVALID %s {%s})", n.Message, n.Source)
	case *ast.TextNode:
		tv.sb.WriteString(n.Text)
	case *ast.SpaceNode:
		if l := n.Count(); l == 1 {
			tv.sb.WriteString("SP")
		} else {
			fmt.Fprintf(&tv.sb, "SP%d", l)
		}
	case *ast.BreakNode:
		if n.Hard {
			tv.sb.WriteString("HB")
		} else {
			tv.sb.WriteString("SB")
		}
	default:
		return tv
	}
	return nil
}

func (tv *TestVisitor) visitBlockSlice(bs ast.BlockSlice) {
	for _, bn := range bs {
		ast.Walk(tv, bn)
	}
}

func (tv *TestVisitor) visitInlineSlice(is ast.InlineSlice) {
	for _, in := range is {
		tv.sb.WriteByte(' ')
		ast.Walk(tv, in)
	}
}

func (tv *TestVisitor) visitItems(items []ast.BlockSlice) {
	for _, item := range items {
		tv.sb.WriteString(" {")
		tv.visitBlockSlice(item)
		tv.sb.WriteByte('}')
	}
}

func (tv *TestVisitor) visitLines(lines []*ast.LineNode) {
	for _, line := range lines {
		tv.sb.WriteString(" (LINE")
		tv.visitInlineSlice(line.Inlines)
		tv.visitLines(line.Children)
		tv.sb.WriteByte(')')
	}
}

var typeChars = map[ast.EnumType]string{
	ast.Arabic:     "1",
	ast.LowerAlpha: "a",
	ast.UpperAlpha: "A",
	ast.LowerRoman: "i",
	ast.UpperRoman: "I",
}

func formatString(f ast.EnumFormat) string {
	var sb strings.Builder
	if f.Prefix != 0 {
		sb.WriteByte(f.Prefix)
	}
	sb.WriteString(typeChars[f.Type])
	sb.WriteByte(f.Suffix)
	return sb.String()
}
