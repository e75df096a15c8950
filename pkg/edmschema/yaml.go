/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edmschema

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/voedger/odata/pkg/edm"
)

// YAML document with schemas
type yamlDocument struct {
	Schemas []*edm.SchemaDef `yaml:"schemas"`
}

// Reads schemas from YAML stream. Stream may contain several documents
func ReadYAML(r io.Reader) ([]*edm.SchemaDef, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var schemas []*edm.SchemaDef
	for {
		doc := yamlDocument{}
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", edm.ErrInvalidError, err)
		}
		schemas = append(schemas, doc.Schemas...)
	}
	return schemas, nil
}

// Loads schema provider from YAML stream
func LoadYAML(r io.Reader) (edm.ISchemaProvider, error) {
	schemas, err := ReadYAML(r)
	if err != nil {
		return nil, err
	}
	return NewProvider(schemas...)
}
