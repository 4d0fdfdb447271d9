// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     tree
// Description: Lexical checks for tree definitions and tree files
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package tree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validate runs the lexical checks a tree definition has to pass before it
// is parsed: non-empty, balanced parentheses, every letter and digit used at
// most once, wrapped in parentheses, root marker present.
func Validate(definition string) error {
	if strings.TrimSpace(definition) == "" {
		return invalidTree("definition is empty")
	}

	if open, closed := strings.Count(definition, tokenOpen), strings.Count(definition, tokenClose); open != closed {
		return invalidTree("unbalanced parentheses").
			WithDetail("open", open).
			WithDetail("close", closed)
	}

	seen := make(map[rune]bool)
	for _, r := range definition {
		if !isCodeSymbol(r) {
			continue
		}
		if seen[r] {
			return invalidTree("symbol defined more than once").
				WithDetail("symbol", string(r))
		}
		seen[r] = true
	}

	if !strings.HasPrefix(definition, tokenOpen) || !strings.HasSuffix(definition, tokenClose) {
		return invalidTree("definition must be enclosed in parentheses")
	}

	if !strings.Contains(definition, RootMarker) {
		return invalidTree("root marker " + RootMarker + " is missing")
	}

	return nil
}

// ValidateFile checks the content of a tree file: after trimming surrounding
// whitespace it must be a single line that passes Validate. The line is
// returned for parsing.
func ValidateFile(content string) (string, error) {
	content = strings.TrimFunc(content, isFileSpace)

	lines := splitLines(content)
	if len(lines) != 1 {
		return "", invalidTree("tree file must contain exactly one line").
			WithDetail("lines", len(lines))
	}

	if err := Validate(lines[0]); err != nil {
		return "", err
	}
	return lines[0], nil
}

// splitLines splits at every line boundary: \n, \r, \r\n, \v, \f, the
// file, group and record separators, NEL and the Unicode line and
// paragraph separators
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var lines []string
	start := 0
	for i, r := range s {
		if isLineBreak(r) {
			lines = append(lines, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(lines, s[start:])
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// isFileSpace extends unicode.IsSpace with the ASCII separators 0x1c-0x1f
func isFileSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// isCodeSymbol reports whether r is a letter or digit that has to be unique
// within a tree
func isCodeSymbol(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
