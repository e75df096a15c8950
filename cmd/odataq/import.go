/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edmschema"
	"github.com/voedger/odata/pkg/edmschema/boltstore"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <schema-file> <db-file>",
		Short: "import schema file into schema store database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importSchemas(args[0], args[1])
		},
	}
}

func importSchemas(schemaFile, dbFile string) error {
	schemas, err := edmschema.ReadFile(schemaFile)
	if err != nil {
		return err
	}
	if err := boltstore.Create(dbFile, schemas...); err != nil {
		return err
	}
	logger.Info("imported", len(schemas), "schema(s) from", schemaFile, "into", dbFile)
	return nil
}
