/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"os"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/odata/pkg/edm"
)

// Creates in-memory schema provider from schema definitions.
//
// Returns error if schemas have duplicate elements, cyclic base types, ambiguous overloads
// or more than one entity container.
func NewProvider(schemas ...*edm.SchemaDef) (edm.ISchemaProvider, error) {
	p := newProvider()
	for _, s := range schemas {
		if err := p.add(s); err != nil {
			return nil, err
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if logger.IsInfo() {
		logger.Info("schema provider loaded, namespaces:", p.namespaces)
	}
	return p, nil
}

// Reads schemas from file. File format is chosen by extension: «.xml» is CSDL, otherwise YAML
func ReadFile(path string) ([]*edm.SchemaDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isCSDLFile(path) {
		return ReadCSDL(f)
	}
	return ReadYAML(f)
}

// Loads schema provider from file, see ReadFile
func LoadFile(path string) (edm.ISchemaProvider, error) {
	schemas, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewProvider(schemas...)
}
