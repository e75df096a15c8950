/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package boltstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/odata/pkg/edm"
	"github.com/voedger/odata/pkg/edmschema"
)

func readShop(t *testing.T) []*edm.SchemaDef {
	f, err := os.Open(filepath.Join("..", "testdata", "shop.yaml"))
	require.NoError(t, err)
	defer f.Close()
	schemas, err := edmschema.ReadYAML(f)
	require.NoError(t, err)
	return schemas
}

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.db")
	require.NoError(t, Create(path, readShop(t)...))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	t.Run("provider", func(t *testing.T) {
		require := require.New(t)
		require.Equal(map[string]string{"S": "Shop"}, s.Aliases())
		require.ElementsMatch([]string{"Shop", "Shop.Extra"}, s.Namespaces())

		item := s.EntityType(edm.NewQName("Shop", "Item"))
		require.NotNil(item)
		require.Equal("ID", item.Key[0].Name)
		require.Equal(40, *item.Properties[1].MaxLength)
		require.Nil(s.EntityType(edm.NewQName("Shop", "Nothing")))
		require.Nil(s.EntityType(edm.NewQName("S", "Item")), "provider names are canonical")

		require.NotNil(s.ComplexType(edm.NewQName("Shop.Extra", "Addr")))
		require.Len(s.EnumType(edm.NewQName("Shop", "Color")).Members, 2)
		require.Len(s.Functions(edm.NewQName("Shop", "Find")), 1)
		require.Nil(s.Actions(edm.NewQName("Shop", "Find")))

		ec := s.EntityContainer(edm.NullQName)
		require.NotNil(ec)
		require.Equal("Shop", ec.Namespace)
		require.Equal("Default", ec.Name)
		require.Equal(ec, s.EntityContainer(edm.NewQName("Shop", "Default")))
	})

	t.Run("catalog over store", func(t *testing.T) {
		require := require.New(t)
		cat := edm.NewCatalog(s, edm.NewDefaultCatalogParams())
		item := cat.EntityType(edm.NewQName("S", "Item"))
		require.NotNil(item)
		require.Same(item, cat.EntityContainer(edm.NullQName).EntitySet("Items").EntityType())
		require.Same(cat.EntityType(edm.NewQName("Shop", "Line")), item.NavigationProperty("Lines").Type())
		require.NotNil(cat.UnboundFunction(edm.NewQName("Shop", "Find"), []string{"a"}))
	})
}

func TestCreate_Errors(t *testing.T) {
	t.Run("invalid schemas are not imported", func(t *testing.T) {
		require := require.New(t)
		path := filepath.Join(t.TempDir(), "schema.db")
		err := Create(path, &edm.SchemaDef{Namespace: "A"}, &edm.SchemaDef{Namespace: "A"})
		require.ErrorIs(err, edm.ErrAlreadyExistsError)

		_, err = Open(path)
		require.ErrorIs(err, ErrBucketNotFound)
	})

	t.Run("reimport overwrites", func(t *testing.T) {
		require := require.New(t)
		path := filepath.Join(t.TempDir(), "schema.db")
		require.NoError(Create(path, readShop(t)...))
		require.NoError(Create(path, readShop(t)...))

		s, err := Open(path)
		require.NoError(err)
		defer s.Close()
		require.Len(s.Namespaces(), 2)
	})

	t.Run("open missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "absent.db"))
		require.Error(t, err)
	})

	t.Run("import into open database", func(t *testing.T) {
		require := require.New(t)
		db, err := bolt.Open(filepath.Join(t.TempDir(), "schema.db"), 0o600, nil)
		require.NoError(err)
		defer db.Close()
		require.NoError(Import(db, readShop(t)...))
		require.NoError(db.View(func(tx *bolt.Tx) error {
			require.NotNil(tx.Bucket([]byte(bucketEntityTypes)).Get([]byte("Shop.Item")))
			return nil
		}))
	})
}
