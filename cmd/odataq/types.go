/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

// Flags of parse command
type parseParams struct {
	SchemaFile string
	DBFile     string
	EntitySet  string
	TypeName   string
	Key        string
	Single     bool
	Cache      string
	CacheSize  int
	Features   []string
	MaxDepth   int
	Metrics    bool
}
