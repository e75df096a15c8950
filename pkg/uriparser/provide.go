/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package uriparser

import "github.com/voedger/odata/pkg/edm"

// New returns parser over catalog.
//
// MaxDepth less or equal to zero is replaced by DefaultMaxDepth
func New(cat edm.ICatalog, cfg Config) *Parser {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return &Parser{cat: cat, cfg: cfg}
}

// No gated features enabled
func NewDefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}
