/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import (
	"encoding/json"

	"github.com/untillpro/goutils/logger"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/odata/pkg/edm"
)

// Schema provider reading element definitions from bbolt database.
//
// Elements are read on each call, so catalog memoization is the only cache.
// Read errors are logged and treated as not found.
type Store struct {
	db         *bolt.DB
	aliases    map[string]string
	namespaces []string
}

func (s *Store) Aliases() map[string]string {
	res := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		res[k] = v
	}
	return res
}

func (s *Store) Namespaces() []string { return append([]string(nil), s.namespaces...) }

func (s *Store) EntityType(n edm.QName) *edm.EntityTypeDef {
	return get[edm.EntityTypeDef](s, bucketEntityTypes, n.String())
}

func (s *Store) ComplexType(n edm.QName) *edm.ComplexTypeDef {
	return get[edm.ComplexTypeDef](s, bucketComplexTypes, n.String())
}

func (s *Store) EnumType(n edm.QName) *edm.EnumTypeDef {
	return get[edm.EnumTypeDef](s, bucketEnumTypes, n.String())
}

func (s *Store) TypeDefinition(n edm.QName) *edm.TypeDefinitionDef {
	return get[edm.TypeDefinitionDef](s, bucketTypeDefinitions, n.String())
}

func (s *Store) Term(n edm.QName) *edm.TermDef {
	return get[edm.TermDef](s, bucketTerms, n.String())
}

func (s *Store) Actions(n edm.QName) []*edm.OperationDef {
	if ops := get[[]*edm.OperationDef](s, bucketActions, n.String()); ops != nil {
		return *ops
	}
	return nil
}

func (s *Store) Functions(n edm.QName) []*edm.OperationDef {
	if ops := get[[]*edm.OperationDef](s, bucketFunctions, n.String()); ops != nil {
		return *ops
	}
	return nil
}

func (s *Store) EntityContainer(n edm.QName) *edm.EntityContainerDef {
	if n.IsNull() {
		var name []byte
		if err := s.db.View(func(tx *bolt.Tx) error {
			if b := tx.Bucket([]byte(bucketMeta)); b != nil {
				name = append(name, b.Get([]byte(metaDefaultContainer))...)
			}
			return nil
		}); err != nil || len(name) == 0 {
			return nil
		}
		return get[edm.EntityContainerDef](s, bucketContainers, string(name))
	}
	return get[edm.EntityContainerDef](s, bucketContainers, n.String())
}

// Closes database
func (s *Store) Close() error {
	return s.db.Close()
}

// Reads and decodes value by key from bucket. Returns nil if key not found or value can not be read
func get[V any](s *Store, bucket, key string) *V {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return errBucketNotFound(bucket)
		}
		if v := b.Get([]byte(key)); v != nil {
			// value is valid only inside transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		logger.Error("schema store read", bucket, key, err)
		return nil
	}
	if data == nil {
		return nil
	}
	v := new(V)
	if err := json.Unmarshal(data, v); err != nil {
		logger.Error("schema store decode", bucket, key, err)
		return nil
	}
	return v
}

func (s *Store) load() error {
	s.aliases = make(map[string]string)
	return s.db.View(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketAliases, bucketNamespaces} {
			if tx.Bucket([]byte(name)) == nil {
				return errBucketNotFound(name)
			}
		}
		if err := tx.Bucket([]byte(bucketAliases)).ForEach(func(k, v []byte) error {
			s.aliases[string(k)] = string(v)
			return nil
		}); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketNamespaces)).ForEach(func(k, _ []byte) error {
			s.namespaces = append(s.namespaces, string(k))
			return nil
		})
	})
}
