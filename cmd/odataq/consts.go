/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	optionAssign = "="
	optionKey    = "key"
	outputSep    = ": "
)
