/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import (
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/odata/pkg/edm"
)

// Opens schema store database. Database must be created by Create or Import
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, fileMode, &bolt.Options{ReadOnly: true, Timeout: bolt.DefaultOptions.Timeout})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.load(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Creates (or opens existing) schema database for writing and imports schemas
func Create(path string, schemas ...*edm.SchemaDef) error {
	db, err := bolt.Open(path, fileMode, bolt.DefaultOptions)
	if err != nil {
		return err
	}
	if err := Import(db, schemas...); err != nil {
		_ = db.Close()
		return err
	}
	return db.Close()
}
