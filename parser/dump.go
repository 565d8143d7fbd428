// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"io"

	"github.com/kr/pretty"

	"github.com/idlgo/webidl/ast"
)

// Dump writes a human-readable rendering of the tree to w. Intended for
// debugging.
func Dump(w io.Writer, node ast.Node) error {
	_, err := pretty.Fprintf(w, "%# v\n", node)
	return err
}

// DumpString returns a human-readable rendering of the tree.
func DumpString(node ast.Node) string {
	return pretty.Sprintf("%# v", node)
}
