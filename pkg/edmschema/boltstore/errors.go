/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import (
	"errors"
	"fmt"
)

var ErrBucketNotFound = errors.New("schema bucket not found")

func errBucketNotFound(name string) error {
	return fmt.Errorf("%w: «%s»", ErrBucketNotFound, name)
}
