// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     tree
// Description: Tokenizer and recursive descent parser for tree definitions
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package tree

import (
	"strings"

	coreerr "github.com/msto63/morsetree/pkg/core/errors"
)

const (
	tokenOpen  = "("
	tokenClose = ")"
)

// Tokenize splits a definition into tokens. Parentheses are tokens of their
// own, spaces only separate, everything else accumulates.
func Tokenize(definition string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range definition {
		switch r {
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		case ' ':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Parse builds a tree from its definition. The root must be labeled with
// RootMarker and no other node may carry it. Tokens after the root node are
// ignored.
func Parse(definition string) (*Node, error) {
	p := parser{tokens: Tokenize(definition)}

	// tokens left after the root node are not an error
	root, _, err := p.node(0)
	if err != nil {
		return nil, err
	}

	if root == nil {
		return nil, invalidTree("tree has no root node")
	}
	if root.Symbol != RootMarker {
		return nil, invalidTree("root node is not labeled "+RootMarker).
			WithDetail("root", root.Symbol)
	}
	if n := countSymbol(root, RootMarker); n != 1 {
		return nil, invalidTree("root marker used more than once").
			WithDetail("count", n)
	}

	return root, nil
}

// MustParse is like Parse but panics on error. Intended for trusted,
// compiled-in definitions.
func MustParse(definition string) *Node {
	root, err := Parse(definition)
	if err != nil {
		panic(err)
	}
	return root
}

// parser walks an immutable token slice; every step returns the index of
// the first unconsumed token
type parser struct {
	tokens []string
}

func (p parser) node(i int) (*Node, int, error) {
	if i >= len(p.tokens) {
		return nil, i, nil
	}

	switch tok := p.tokens[i]; tok {
	case tokenOpen:
		left, next, err := p.node(i + 1)
		if err != nil {
			return nil, next, err
		}

		if next >= len(p.tokens) {
			return nil, next, invalidTree("missing node symbol").WithDetail("token", next)
		}
		symbol := p.tokens[next]

		right, next, err := p.node(next + 1)
		if err != nil {
			return nil, next, err
		}

		// the closing token is consumed whatever it is
		if next >= len(p.tokens) {
			return nil, next, invalidTree("missing closing parenthesis").WithDetail("token", next)
		}

		return &Node{Symbol: symbol, Left: left, Right: right}, next + 1, nil

	case AbsentToken:
		return nil, i + 1, nil

	case tokenClose:
		// an omitted right branch, as in "(A *)"; the parenthesis is left
		// for the enclosing node
		return nil, i, nil

	default:
		return &Node{Symbol: tok}, i + 1, nil
	}
}

func countSymbol(n *Node, symbol string) int {
	if n == nil {
		return 0
	}
	count := countSymbol(n.Left, symbol) + countSymbol(n.Right, symbol)
	if n.Symbol == symbol {
		count++
	}
	return count
}

func invalidTree(reason string) *coreerr.Error {
	return coreerr.New(coreerr.CodeInvalidTree, "invalid tree: "+reason)
}
