// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     service
// Description: Tree source resolution and loading
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package service

import (
	"os"

	"github.com/msto63/morsetree/internal/morse/tree"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
	"github.com/msto63/morsetree/pkg/core/logging"
)

// LoadTree returns the code tree stored in path, or the built-in tree when
// path is empty. An unreadable file is a usage error; a file that fails
// validation or parsing is an invalid tree.
func LoadTree(path string, logger *logging.Logger) (*tree.Node, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	if path == "" {
		logger.Debug("Using built-in code tree")
		return tree.Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, coreerr.Wrap(err, "cannot read tree file").
			WithCode(coreerr.CodeUsage).
			WithDetail("path", path)
	}

	definition, err := tree.ValidateFile(string(content))
	if err != nil {
		logger.Warn("Tree file rejected", "path", path, "error", err)
		return nil, err
	}

	root, err := tree.Parse(definition)
	if err != nil {
		logger.Warn("Tree file rejected", "path", path, "error", err)
		return nil, err
	}

	logger.Debug("Loaded code tree", "path", path, "bytes", len(content))
	return root, nil
}
