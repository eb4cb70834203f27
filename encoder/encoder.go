//-----------------------------------------------------------------------------
// Copyright (c) 2023-present The rstree authors
//
// This file is part of rstree.
//
// rstree is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"fmt"
	"io"
	"sort"

	"codeberg.org/rstree/rstree/ast"
)

// Encoder is an interface that allows to encode different parts of a document.
type Encoder interface {
	WriteBlocks(io.Writer, *ast.BlockSlice) (int, error)
	WriteInlines(io.Writer, *ast.InlineSlice) (int, error)
}

// Create builds a new encoder with the given name, or nil if it is unknown.
func Create(name string) Encoder {
	if info, ok := registry[name]; ok {
		return info.Create()
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create  func() Encoder
	Default bool
}

var registry = map[string]Info{}
var defEncoding string

// Register the encoder for later retrieval.
func Register(name string, info Info) {
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", name))
	}
	if info.Default {
		if defEncoding != "" && defEncoding != name {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, name))
		}
		defEncoding = name
	}
	registry[name] = info
}

// GetEncodings returns all registered encodings, ordered by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() string { return defEncoding }
