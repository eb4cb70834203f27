//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package szenc encodes the abstract syntax tree into a s-expr.
package szenc

import (
	"io"

	"codeberg.org/rstree/rstree/ast"
	"codeberg.org/rstree/rstree/encoder"
)

func init() {
	encoder.Register("sz", encoder.Info{
		Create:  func() encoder.Encoder { return Create() },
		Default: true,
	})
}

// Create a S-expr encoder.
func Create() *Encoder {
	return &Encoder{trans: NewTransformer()}
}

type Encoder struct {
	trans *Transformer
}

// WriteBlocks writes a block slice to the writer.
func (enc *Encoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	return enc.trans.GetSz(bs).Print(w)
}

// WriteInlines writes an inline slice to the writer.
func (enc *Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	return enc.trans.GetSz(is).Print(w)
}
