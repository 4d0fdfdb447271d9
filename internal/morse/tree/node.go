// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     tree
// Description: Code tree node model
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package tree

import (
	"strings"
)

const (
	// RootMarker labels the root node
	RootMarker = "*"

	// AbsentToken denotes a missing branch, or a placeholder when used as a label
	AbsentToken = "-"
)

// Node is one position in the code tree. Left is reached by a dot,
// Right by a dash; nil means no branch.
type Node struct {
	Symbol string
	Left   *Node
	Right  *Node
}

// IsRoot reports whether n carries the root marker
func (n *Node) IsRoot() bool {
	return n != nil && n.Symbol == RootMarker
}

// IsPlaceholder reports whether n only holds deeper codes
func (n *Node) IsPlaceholder() bool {
	return n != nil && n.Symbol == AbsentToken
}

// IsLeaf reports whether n has no children
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Child follows one code step. It returns nil for a missing branch or a
// step that is neither '.' nor '-'.
func (n *Node) Child(step rune) *Node {
	if n == nil {
		return nil
	}
	switch step {
	case '.':
		return n.Left
	case '-':
		return n.Right
	default:
		return nil
	}
}

// String renders the subtree back into definition syntax
func (n *Node) String() string {
	var sb strings.Builder
	n.appendTo(&sb)
	return sb.String()
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n == nil {
		sb.WriteString(AbsentToken)
		return
	}
	if n.IsLeaf() {
		sb.WriteString(n.Symbol)
		return
	}

	sb.WriteByte('(')
	n.Left.appendTo(sb)
	sb.WriteByte(' ')
	sb.WriteString(n.Symbol)
	sb.WriteByte(' ')
	n.Right.appendTo(sb)
	sb.WriteByte(')')
}
