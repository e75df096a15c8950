/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import (
	"encoding/json"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/edmschema"
)

// Validates schemas and writes their elements into database.
//
// Elements of the same namespaces imported earlier are overwritten.
func Import(db *bolt.DB, schemas ...*edm.SchemaDef) error {
	if _, err := edmschema.NewProvider(schemas...); err != nil {
		return err
	}

	err := db.Update(func(tx *bolt.Tx) error {
		if err := createBuckets(tx); err != nil {
			return err
		}
		for _, s := range schemas {
			if err := importSchema(tx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil && logger.IsVerbose() {
		logger.Verbose("schema store: imported", len(schemas), "schema(s) into", db.Path())
	}
	return err
}

func createBuckets(tx *bolt.Tx) error {
	for _, name := range allBuckets {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return err
		}
	}
	return nil
}

func importSchema(tx *bolt.Tx, s *edm.SchemaDef) error {
	put := func(bucket string, name string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return tx.Bucket([]byte(bucket)).Put([]byte(edm.NewQName(s.Namespace, name).String()), data)
	}

	if err := tx.Bucket([]byte(bucketNamespaces)).Put([]byte(s.Namespace), []byte{}); err != nil {
		return err
	}
	aliases := tx.Bucket([]byte(bucketAliases))
	if s.Alias != "" {
		if err := aliases.Put([]byte(s.Alias), []byte(s.Namespace)); err != nil {
			return err
		}
	}
	for _, r := range s.References {
		if r.Alias != "" {
			if err := aliases.Put([]byte(r.Alias), []byte(r.Namespace)); err != nil {
				return err
			}
		}
	}

	for _, t := range s.EntityTypes {
		if err := put(bucketEntityTypes, t.Name, t); err != nil {
			return err
		}
	}
	for _, t := range s.ComplexTypes {
		if err := put(bucketComplexTypes, t.Name, t); err != nil {
			return err
		}
	}
	for _, t := range s.EnumTypes {
		if err := put(bucketEnumTypes, t.Name, t); err != nil {
			return err
		}
	}
	for _, t := range s.TypeDefinitions {
		if err := put(bucketTypeDefinitions, t.Name, t); err != nil {
			return err
		}
	}
	for _, t := range s.Terms {
		if err := put(bucketTerms, t.Name, t); err != nil {
			return err
		}
	}
	for name, ops := range groupOperations(s.Actions) {
		if err := put(bucketActions, name, ops); err != nil {
			return err
		}
	}
	for name, ops := range groupOperations(s.Functions) {
		if err := put(bucketFunctions, name, ops); err != nil {
			return err
		}
	}
	if c := s.EntityContainer; c != nil {
		c.Namespace = s.Namespace
		if err := put(bucketContainers, c.Name, c); err != nil {
			return err
		}
		name := edm.NewQName(s.Namespace, c.Name).String()
		if err := tx.Bucket([]byte(bucketMeta)).Put([]byte(metaDefaultContainer), []byte(name)); err != nil {
			return err
		}
	}
	return nil
}

func groupOperations(ops []*edm.OperationDef) map[string][]*edm.OperationDef {
	res := make(map[string][]*edm.OperationDef)
	for _, op := range ops {
		res[op.Name] = append(res[op.Name], op)
	}
	return res
}
