// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     codec
// Description: Encoding and decoding over a parsed code tree
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

// Package codec translates between plain text and dot/dash code using a
// parsed code tree.
package codec

import (
	"strings"

	"github.com/msto63/morsetree/internal/morse/tree"
)

const (
	Dot  = '.'
	Dash = '-'

	// LetterSeparator joins codes within a word
	LetterSeparator = " "

	// WordSeparator joins words; it must differ from LetterSeparator so
	// decoding can tell word boundaries from letter boundaries
	WordSeparator = "  "

	// Unknown replaces a code that does not lead to a character
	Unknown = "?"
)

// Encode translates text into code. Words are split on whitespace runs and
// uppercased; characters missing from the tree are dropped.
func Encode(text string, root *tree.Node) string {
	words := strings.Fields(text)
	encoded := make([]string, 0, len(words))

	for _, word := range words {
		var codes []string
		for _, r := range strings.ToUpper(word) {
			if code, ok := Lookup(root, string(r)); ok {
				codes = append(codes, code)
			}
		}
		encoded = append(encoded, strings.Join(codes, LetterSeparator))
	}

	return strings.Join(encoded, WordSeparator)
}

// Lookup finds the code of symbol by depth-first search, dot branch first.
// The root marker and placeholders have no code.
func Lookup(root *tree.Node, symbol string) (string, bool) {
	var path []byte
	if !search(root, symbol, &path) || len(path) == 0 {
		return "", false
	}
	return string(path), true
}

func search(n *tree.Node, symbol string, path *[]byte) bool {
	if n == nil {
		return false
	}
	if n.Symbol == symbol && !n.IsPlaceholder() {
		return true
	}

	*path = append(*path, Dot)
	if search(n.Left, symbol, path) {
		return true
	}
	(*path)[len(*path)-1] = Dash
	if search(n.Right, symbol, path) {
		return true
	}
	*path = (*path)[:len(*path)-1]

	return false
}

// Decode translates code into text. Words are separated by exactly two
// spaces, codes within a word by whitespace runs. A code that leaves the
// tree, ends on the root or on a placeholder decodes to "?".
func Decode(text string, root *tree.Node) string {
	var decoded []string

	for _, word := range strings.Split(text, WordSeparator) {
		var sb strings.Builder
		for _, code := range strings.Fields(word) {
			sb.WriteString(decodeSymbol(root, code))
		}
		if sb.Len() > 0 {
			decoded = append(decoded, sb.String())
		}
	}

	return strings.ReplaceAll(strings.Join(decoded, " "), tree.RootMarker, Unknown)
}

func decodeSymbol(root *tree.Node, code string) string {
	n := root
	for _, step := range code {
		if n = n.Child(step); n == nil {
			return Unknown
		}
	}
	if n == root || n.IsPlaceholder() {
		return Unknown
	}
	return n.Symbol
}
